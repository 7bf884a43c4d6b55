package web

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lakhansingh/portfolio/internal/storage"
	"github.com/lakhansingh/portfolio/pkg/logger"
)

const (
	adminCookie       = "admin_token"
	adminCookieMaxAge = 3600 * 24
	adminListLimit    = 200
)

// adminAuth holds the per-process admin session token and the salt used to
// hash visitor IPs. Both change on restart.
type adminAuth struct {
	username    string
	password    string
	token       string
	hashingSalt string
}

func newAdminAuth(username, password string) (*adminAuth, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	salt, err := generateToken()
	if err != nil {
		return nil, err
	}
	return &adminAuth{username: username, password: password, token: token, hashingSalt: salt}, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating admin token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashIP returns a salted, truncated hash so raw addresses are never stored.
func (a *adminAuth) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + a.hashingSalt))
	return hex.EncodeToString(sum[:])[:16]
}

func (a *adminAuth) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// untrackedPrefixes are never recorded as page views.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin",
	"/favicon",
	"/privacy",
	"/metrics",
	"/healthz",
}

// trackVisitors records successful GET page views with a hashed IP.
// Requests carrying DNT: 1 are not recorded.
func (s *Server) trackVisitors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			return
		}

		err := s.store.RecordVisitor(c.Request.Context(), storage.Visitor{
			HashedIP:  s.admin.hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: s.now(),
		})
		if err != nil {
			s.log.Error(c.Request.Context(), "recording visitor", logger.Error(err))
			return
		}
		s.metrics.RecordVisitor()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":         "Privacy Policy",
			"retentionDays": s.cfg.RetentionDays,
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})
	r.POST("/admin/login", s.adminLogin)
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		s.log.Info(c.Request.Context(), "admin logout", logger.String("client", s.admin.hashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	g := r.Group("/admin")
	g.Use(s.admin.middleware())

	g.GET("/dashboard", s.adminDashboard)
	g.GET("/api/stats", s.adminStats)
	g.GET("/chats", s.adminChats)
	g.GET("/visitors", s.adminVisitors)
	g.GET("/contacts", s.adminContacts)
	g.DELETE("/chats/:id", s.adminDeleteChat)
	g.POST("/privacy/delete-visitor-data", s.adminCleanup)
	g.GET("/export/stats", s.adminExport)
}

func (s *Server) adminLogin(c *gin.Context) {
	client := s.admin.hashIP(c.ClientIP())
	if !s.admin.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
		s.log.Warn(c.Request.Context(), "failed admin login attempt", logger.String("client", client))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
		return
	}
	c.SetCookie(adminCookie, s.admin.token, adminCookieMaxAge, "/admin", "", false, true)
	s.log.Info(c.Request.Context(), "admin login successful", logger.String("client", client))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (s *Server) adminError(c *gin.Context, msg string, err error) {
	s.log.Error(c.Request.Context(), msg, logger.Error(err))
	c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
		"error": msg,
	})
}

func (s *Server) adminDashboard(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context(), s.now())
	if err != nil {
		s.adminError(c, "Failed to load statistics", err)
		return
	}
	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"stats": stats,
	})
}

func (s *Server) adminStats(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context(), s.now())
	if err != nil {
		s.log.Error(c.Request.Context(), "loading admin stats", logger.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Code: codeInternal, Message: "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// adminChats lists recent chat messages, or one session's transcript when
// the session query parameter is set.
func (s *Server) adminChats(c *gin.Context) {
	ctx := c.Request.Context()
	session := strings.TrimSpace(c.Query("session"))

	var (
		chats []storage.ChatMessage
		err   error
	)
	if session != "" {
		chats, err = s.store.SessionChats(ctx, session)
	} else {
		chats, err = s.store.RecentChats(ctx, adminListLimit)
	}
	if err != nil {
		s.adminError(c, "Failed to load chats", err)
		return
	}
	c.HTML(http.StatusOK, "admin-chats.html", gin.H{
		"chats":   chats,
		"session": session,
	})
}

func (s *Server) adminVisitors(c *gin.Context) {
	visitors, err := s.store.RecentVisitors(c.Request.Context(), adminListLimit)
	if err != nil {
		s.adminError(c, "Failed to load visitors", err)
		return
	}
	c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
		"visitors": visitors,
	})
}

func (s *Server) adminContacts(c *gin.Context) {
	contacts, err := s.store.RecentContacts(c.Request.Context(), adminListLimit)
	if err != nil {
		s.adminError(c, "Failed to load contact messages", err)
		return
	}
	c.HTML(http.StatusOK, "admin-contacts.html", gin.H{
		"contacts": contacts,
	})
}

func (s *Server) adminDeleteChat(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Code: codeBadRequest, Message: "invalid chat id"})
		return
	}

	if err := s.store.DeleteChat(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Code: codeNotFound, Message: "chat message not found"})
			return
		}
		s.log.Error(ctx, "deleting chat message", logger.Int64("id", id), logger.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Code: codeInternal, Message: "failed to delete chat message"})
		return
	}

	s.log.Info(ctx, "chat message deleted by admin",
		logger.Int64("id", id),
		logger.String("client", s.admin.hashIP(c.ClientIP())),
	)
	c.JSON(http.StatusOK, gin.H{"message": "Chat message deleted successfully"})
}

func (s *Server) adminCleanup(c *gin.Context) {
	res, err := s.Cleanup(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Code: codeInternal, Message: "privacy cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Privacy cleanup completed",
		"deleted": res,
	})
}

func (s *Server) adminExport(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context(), s.now())
	if err != nil {
		s.log.Error(c.Request.Context(), "exporting admin stats", logger.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Code: codeInternal, Message: "failed to load statistics"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	s.log.Info(c.Request.Context(), "admin stats exported", logger.String("client", s.admin.hashIP(c.ClientIP())))
	c.JSON(http.StatusOK, stats)
}
