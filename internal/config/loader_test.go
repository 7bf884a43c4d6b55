package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lakhansingh/portfolio/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnvVars(t)

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load()

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.GinMode, convey.ShouldEqual, "release")
				convey.So(cfg.RetentionDays, convey.ShouldEqual, 365)
				convey.So(cfg.CleanupInterval, convey.ShouldEqual, 24*time.Hour)
				convey.So(cfg.TypingDelayMS, convey.ShouldEqual, 800)
				convey.So(cfg.SMTPHost, convey.ShouldEqual, "smtp.gmail.com")
				convey.So(cfg.UsesDefaultAdminCredentials(), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			t.Setenv("PORTFOLIO_ADDR", ":9090")
			t.Setenv("PORTFOLIO_RETENTION_DAYS", "30")
			t.Setenv("PORTFOLIO_SMTP_USER", "bot@example.com")
			t.Setenv("PORTFOLIO_CLEANUP_INTERVAL", "90m")
			t.Setenv("PORTFOLIO_ADMIN_USERNAME", "lakhan")
			t.Setenv("PORTFOLIO_ADMIN_PASSWORD", "s3cret")

			cfg, err := config.Load()

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.RetentionDays, convey.ShouldEqual, 30)
				convey.So(cfg.Retention(), convey.ShouldEqual, 30*24*time.Hour)
				convey.So(cfg.SMTPUser, convey.ShouldEqual, "bot@example.com")
				convey.So(cfg.CleanupInterval, convey.ShouldEqual, 90*time.Minute)
				convey.So(cfg.UsesDefaultAdminCredentials(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When only the bare PORT variable is set", func() {
			t.Setenv("PORT", "3000")

			cfg, err := config.Load()

			convey.Convey("Then it should set the listen port", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":3000")
			})
		})

		convey.Convey("When PORT and PORTFOLIO_ADDR are both set", func() {
			t.Setenv("PORT", "3000")
			t.Setenv("PORTFOLIO_ADDR", "127.0.0.1:7000")

			cfg, err := config.Load()

			convey.Convey("Then PORTFOLIO_ADDR should win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, "127.0.0.1:7000")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			path := writeConfigFile(t, `
addr: ":9191"
data_dir: "/var/lib/portfolio"
typing_delay_ms: 0
log_level: debug
latency_buckets: [0.01, 0.1, 1]
`)
			t.Setenv("PORTFOLIO_CONFIG", path)
			t.Setenv("PORTFOLIO_LOG_LEVEL", "warn")

			cfg, err := config.Load()

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9191")
				convey.So(cfg.DataDir, convey.ShouldEqual, "/var/lib/portfolio")
				convey.So(cfg.TypingDelayMS, convey.ShouldEqual, 0)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.LatencyBuckets, convey.ShouldResemble, []float64{0.01, 0.1, 1})
			})
		})

		convey.Convey("When the config file does not exist", func() {
			t.Setenv("PORTFOLIO_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.Load()

			convey.Convey("Then it should fail with ErrLoadConfig", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a value fails validation", func() {
			t.Setenv("PORTFOLIO_RETENTION_DAYS", "0")

			_, err := config.Load()

			convey.Convey("Then it should fail with ErrInvalidConfig", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When latency buckets are out of order", func() {
			t.Setenv("PORTFOLIO_CONFIG", writeConfigFile(t, "latency_buckets: [0.5, 0.1]\n"))

			_, err := config.Load()

			convey.Convey("Then it should fail with ErrInvalidConfig", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When gin_mode is unknown", func() {
			t.Setenv("PORTFOLIO_GIN_MODE", "turbo")

			_, err := config.Load()

			convey.Convey("Then it should fail with ErrInvalidConfig", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func clearConfigEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT",
		"PORTFOLIO_CONFIG",
		"PORTFOLIO_ADDR",
		"PORTFOLIO_LOG_LEVEL",
		"PORTFOLIO_GIN_MODE",
		"PORTFOLIO_DATA_DIR",
		"PORTFOLIO_RETENTION_DAYS",
		"PORTFOLIO_CLEANUP_INTERVAL",
		"PORTFOLIO_ADMIN_USERNAME",
		"PORTFOLIO_ADMIN_PASSWORD",
		"PORTFOLIO_SMTP_USER",
		"PORTFOLIO_TYPING_DELAY_MS",
	} {
		if _, ok := os.LookupEnv(key); ok {
			t.Setenv(key, "")
			_ = os.Unsetenv(key)
		}
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}
