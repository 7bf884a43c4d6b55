package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lakhansingh/portfolio/internal/chatbot"
	"github.com/lakhansingh/portfolio/internal/config"
	"github.com/lakhansingh/portfolio/internal/contact"
	"github.com/lakhansingh/portfolio/internal/metrics"
	"github.com/lakhansingh/portfolio/internal/storage"
	"github.com/lakhansingh/portfolio/internal/web"
	"github.com/lakhansingh/portfolio/pkg/logger"
)

var version = "dev"

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Lakhan Singh's portfolio site and FAQ chatbot",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			return os.Setenv(config.EnvPrefix+"CONFIG", configPath)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (overrides "+config.EnvPrefix+"CONFIG)")
	rootCmd.AddCommand(serveCmd, askCmd, chatCmd, statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// --- serve ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio site, chatbot and admin area",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := logger.Init(); err != nil {
			return err
		}
		if err := logger.SetLevelString(cfg.LogLevel); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger.Named("portfolio"))
	},
}

func serve(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer store.Close()

	gin.SetMode(cfg.GinMode)
	srv, err := web.New(web.Dependencies{
		Config:    cfg,
		Store:     store,
		Responder: chatbot.New(),
		Mailer: contact.NewMailer(contact.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			To:       cfg.ToEmail,
		}, nil),
		Metrics: metrics.NewManager(metrics.WithHistogramBuckets(cfg.LatencyBuckets)),
		Logger:  log,
	})
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(gctx, "portfolio listening", logger.String("addr", cfg.Addr), logger.String("version", version))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info(context.Background(), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		runRetention(gctx, srv, cfg.CleanupInterval)
		return nil
	})
	return g.Wait()
}

// runRetention sweeps once at startup and then every interval until ctx ends.
// Failed sweeps are logged by the server and retried on the next tick.
func runRetention(ctx context.Context, srv *web.Server, interval time.Duration) {
	_, _ = srv.Cleanup(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = srv.Cleanup(ctx)
		}
	}
}
