// Package contact mails contact form submissions to the portfolio owner.
package contact

import (
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// Sentinel errors.
var (
	ErrInvalid       = errors.New("invalid contact submission")
	ErrNotConfigured = errors.New("SMTP credentials not configured")
)

// Submission is what a visitor sends through the contact form. Field
// presence and length are checked by the form binding before it gets here.
type Submission struct {
	Name    string
	Email   string
	Message string
}

// Validate rejects header fields that would break out of their line.
func (s Submission) Validate() error {
	if strings.ContainsAny(s.Name+s.Email, "\r\n") {
		return fmt.Errorf("%w: header fields must be a single line", ErrInvalid)
	}
	return nil
}

// SMTPConfig holds mail server settings.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string
}

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer delivers submissions over SMTP.
type Mailer struct {
	cfg  SMTPConfig
	send SendFunc
}

// NewMailer creates a Mailer. A nil send uses smtp.SendMail.
func NewMailer(cfg SMTPConfig, send SendFunc) *Mailer {
	if send == nil {
		send = smtp.SendMail
	}
	return &Mailer{cfg: cfg, send: send}
}

// Configured reports whether credentials are present.
func (m *Mailer) Configured() bool {
	return m.cfg.Username != "" && m.cfg.Password != ""
}

// Send mails s to the owner.
func (m *Mailer) Send(s Submission) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !m.Configured() {
		return ErrNotConfigured
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, auth, m.cfg.Username, []string{m.cfg.To}, m.Compose(s)); err != nil {
		return fmt.Errorf("sending contact email: %w", err)
	}
	return nil
}

// Compose renders the email for s.
func (m *Mailer) Compose(s Submission) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", s.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, s.Name, s.Email, s.Message)

	return []byte("To: " + m.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.Username + "\r\n" +
		"Reply-To: " + s.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
