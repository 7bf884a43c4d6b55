// Package web serves the portfolio page, its HTMX fragments, the chatbot
// endpoints and the admin area.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/lakhansingh/portfolio/internal/chatbot"
	"github.com/lakhansingh/portfolio/internal/config"
	"github.com/lakhansingh/portfolio/internal/contact"
	"github.com/lakhansingh/portfolio/internal/content"
	"github.com/lakhansingh/portfolio/internal/metrics"
	"github.com/lakhansingh/portfolio/internal/storage"
	"github.com/lakhansingh/portfolio/pkg/logger"
)

// Contact outcomes reported to metrics.
const (
	outcomeInvalid   = "invalid"
	outcomeDelivered = "delivered"
	outcomeStored    = "stored"
	outcomeFailed    = "failed"
)

// maxStoredQueryRunes bounds the transcript copy of a chat query. The
// responder always sees the full message.
const maxStoredQueryRunes = 2000

// Dependencies carries what the server needs to handle requests.
type Dependencies struct {
	Config    *config.Config
	Store     *storage.Store
	Responder *chatbot.Responder
	Mailer    *contact.Mailer
	Metrics   *metrics.Manager
	Logger    logger.Logger
}

// Server owns the gin engine and the request handlers.
type Server struct {
	cfg     *config.Config
	store   *storage.Store
	bot     *chatbot.Responder
	mailer  *contact.Mailer
	metrics *metrics.Manager
	log     logger.Logger
	admin   *adminAuth
	engine  *gin.Engine
	now     func() time.Time
}

// New wires the routes. gin's mode must be set by the caller.
func New(deps Dependencies) (*Server, error) {
	switch {
	case deps.Config == nil:
		return nil, fmt.Errorf("%w: config", ErrMissingDependency)
	case deps.Store == nil:
		return nil, fmt.Errorf("%w: store", ErrMissingDependency)
	case deps.Responder == nil:
		return nil, fmt.Errorf("%w: responder", ErrMissingDependency)
	case deps.Mailer == nil:
		return nil, fmt.Errorf("%w: mailer", ErrMissingDependency)
	case deps.Metrics == nil:
		return nil, fmt.Errorf("%w: metrics", ErrMissingDependency)
	case deps.Logger == nil:
		return nil, fmt.Errorf("%w: logger", ErrMissingDependency)
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	admin, err := newAdminAuth(deps.Config.AdminUsername, deps.Config.AdminPassword)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     deps.Config,
		store:   deps.Store,
		bot:     deps.Responder,
		mailer:  deps.Mailer,
		metrics: deps.Metrics,
		log:     deps.Logger.Named("web"),
		admin:   admin,
		now:     time.Now,
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.observe(), s.trackVisitors())
	r.SetHTMLTemplate(tmpl)

	r.Static("/images", "./images")
	r.StaticFS("/static", http.FS(staticRoot))

	r.GET("/", s.home)
	r.GET("/contact-form", s.contactForm)
	r.GET("/work-content", s.workContent)
	r.GET("/education-content", s.educationContent)
	r.POST("/contact", s.submitContact)
	r.POST("/chat", s.chatFragment)
	r.POST("/api/chat", s.chatJSON)
	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	s.setupAdminRoutes(r)
	s.engine = r

	ctx := context.Background()
	s.log.Info(ctx, "admin access available", logger.String("path", "/admin/login"))
	if deps.Config.UsesDefaultAdminCredentials() {
		s.log.Warn(ctx, "using default admin credentials; set PORTFOLIO_ADMIN_USERNAME and PORTFOLIO_ADMIN_PASSWORD")
	}
	if gin.Mode() == gin.DebugMode {
		s.log.Debug(ctx, "admin token", logger.String("token", admin.token))
	}
	return s, nil
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// observe logs each request and records its latency.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)
		s.metrics.RecordHTTPRequest(route, c.Request.Method, strconv.Itoa(status), elapsed.Seconds())

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Duration("latency", elapsed),
		}
		if status >= http.StatusInternalServerError {
			s.log.Error(c.Request.Context(), "request failed", fields...)
			return
		}
		s.log.Debug(c.Request.Context(), "request", fields...)
	}
}

// --- Pages ---

func (s *Server) home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"name":           content.Name,
		"tagline":        content.Tagline,
		"aboutMe":        content.AboutMe,
		"skills":         content.Skills,
		"interests":      content.Interests,
		"projects":       content.Projects,
		"contact":        content.ContactInfo,
		"sessionID":      uuid.NewString(),
		"typingDelayMS":  s.cfg.TypingDelayMS,
		"chatbotWelcome": chatbotWelcome,
	})
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

func (s *Server) workContent(c *gin.Context) {
	c.HTML(http.StatusOK, "work-content.html", gin.H{
		"entries": content.Experience,
	})
}

func (s *Server) educationContent(c *gin.Context) {
	c.HTML(http.StatusOK, "education-content.html", gin.H{
		"entries":        content.Education,
		"certifications": content.Certifications,
	})
}

func (s *Server) health(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		s.log.Error(c.Request.Context(), "health check failed", logger.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --- Contact ---

// contactForm is the contact form as posted by HTMX.
type contactForm struct {
	FullName string `form:"fullName" binding:"required,max=200"`
	Email    string `form:"email" binding:"required,email,max=320"`
	Message  string `form:"message" binding:"required,max=5000"`
}

// bindContact binds the form, trims it and validates what is left, so
// whitespace alone does not satisfy required.
func bindContact(c *gin.Context) (contact.Submission, error) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		return contact.Submission{}, err
	}
	form.FullName = strings.TrimSpace(form.FullName)
	form.Email = strings.TrimSpace(form.Email)
	form.Message = strings.TrimSpace(form.Message)
	if err := binding.Validator.ValidateStruct(&form); err != nil {
		return contact.Submission{}, err
	}

	sub := contact.Submission{Name: form.FullName, Email: form.Email, Message: form.Message}
	return sub, sub.Validate()
}

func (s *Server) submitContact(c *gin.Context) {
	ctx := c.Request.Context()
	sub, err := bindContact(c)
	if err != nil {
		s.metrics.RecordContact(outcomeInvalid)
		s.log.Debug(ctx, "contact form rejected", logger.Error(err))
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}

	id, storeErr := s.store.RecordContact(ctx, storage.ContactMessage{
		Name:      sub.Name,
		Email:     sub.Email,
		Message:   sub.Message,
		CreatedAt: s.now(),
	})
	if storeErr != nil {
		s.log.Error(ctx, "storing contact message", logger.Error(storeErr))
	}

	sendErr := s.mailer.Send(sub)
	switch {
	case sendErr == nil:
		s.metrics.RecordContact(outcomeDelivered)
		s.log.Info(ctx, "contact email sent", logger.String("name", sub.Name))
		if storeErr == nil {
			if err := s.store.MarkContactDelivered(ctx, id); err != nil {
				s.log.Error(ctx, "marking contact delivered", logger.Int64("id", id), logger.Error(err))
			}
		}
	case storeErr == nil:
		// Kept for the admin inbox even though mail is unavailable.
		s.metrics.RecordContact(outcomeStored)
		level := s.log.Error
		if errors.Is(sendErr, contact.ErrNotConfigured) {
			level = s.log.Warn
		}
		level(ctx, "contact email not sent, message stored", logger.Int64("id", id), logger.Error(sendErr))
	default:
		s.metrics.RecordContact(outcomeFailed)
		s.log.Error(ctx, "contact message lost", logger.Error(sendErr))
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}

// --- Chat ---

const chatbotWelcome = "Hi! I'm Lakhan's assistant. Ask me about his experience, skills, projects, education or how to get in touch."

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	SessionID string        `json:"session_id"`
	Topic     chatbot.Topic `json:"topic"`
	Response  string        `json:"response"`
}

// chatFragment answers the HTMX chat form with a user bubble and a bot bubble.
func (s *Server) chatFragment(c *gin.Context) {
	message := strings.TrimSpace(c.PostForm("message"))
	if message == "" {
		c.Status(http.StatusNoContent)
		return
	}

	sessionID := sessionOrNew(c.PostForm("session_id"))
	answer := s.answer(c.Request.Context(), sessionID, message)

	c.HTML(http.StatusOK, "chat-messages.html", gin.H{
		"userMessage":   message,
		"botMessage":    answer.Text,
		"topic":         answer.Topic,
		"sessionID":     sessionID,
		"typingDelayMS": s.cfg.TypingDelayMS,
	})
}

func (s *Server) chatJSON(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Code: codeBadRequest, Message: "request body must be JSON with a message field"})
		return
	}

	sessionID := sessionOrNew(req.SessionID)
	answer := s.answer(c.Request.Context(), sessionID, req.Message)
	c.JSON(http.StatusOK, chatResponse{
		SessionID: sessionID,
		Topic:     answer.Topic,
		Response:  answer.Text,
	})
}

// answer classifies message and records the exchange. A failed transcript
// write is logged and never reaches the visitor.
func (s *Server) answer(ctx context.Context, sessionID, message string) chatbot.Answer {
	answer := s.bot.Answer(message)
	s.metrics.RecordChat(string(answer.Topic), utf8.RuneCountInString(chatbot.Normalize(message)))

	_, err := s.store.RecordChat(ctx, storage.ChatMessage{
		SessionID: sessionID,
		Query:     truncateRunes(message, maxStoredQueryRunes),
		Topic:     string(answer.Topic),
		Response:  answer.Text,
		CreatedAt: s.now(),
	})
	if err != nil {
		s.log.Error(ctx, "recording chat message", logger.String("session_id", sessionID), logger.Error(err))
	}
	return answer
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// sessionOrNew keeps a well-formed session id and replaces anything else.
func sessionOrNew(id string) string {
	if parsed, err := uuid.Parse(strings.TrimSpace(id)); err == nil {
		return parsed.String()
	}
	return uuid.NewString()
}

// --- Retention ---

// Cleanup deletes visitor and chat rows older than the retention window.
func (s *Server) Cleanup(ctx context.Context) (storage.CleanupResult, error) {
	cutoff := s.now().Add(-s.cfg.Retention())
	res, err := s.store.Cleanup(ctx, cutoff)
	if err != nil {
		s.log.Error(ctx, "privacy cleanup failed", logger.Error(err))
		return res, err
	}
	s.metrics.RecordRetention("visitors", res.Visitors)
	s.metrics.RecordRetention("chat_messages", res.Chats)
	if res.Visitors > 0 || res.Chats > 0 {
		s.log.Info(ctx, "privacy cleanup removed old records",
			logger.Int64("visitors", res.Visitors),
			logger.Int64("chats", res.Chats),
			logger.Int("retention_days", s.cfg.RetentionDays),
		)
	}
	return res, nil
}
