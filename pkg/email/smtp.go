package email

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/dkhrunov/newsdigest/pkg/config"
)

// Sender delivers rendered emails. Implementations must be safe for
// concurrent use, the scheduler sends digests from multiple workers.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPSender delivers emails over SMTP with STARTTLS
type SMTPSender struct {
	cfg config.EmailConfig
}

// NewSMTPSender creates an SMTP sender from configuration
func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send delivers one email. The context is checked before dialing, the dial
// itself relies on the SMTP library timeout behavior.
func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	msg := s.buildMessage(to, subject, htmlBody)
	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// buildMessage assembles the RFC 5322 message with HTML content type
func (s *SMTPSender) buildMessage(to, subject, htmlBody string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", s.cfg.FromName), s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}

// LogSender is a no-delivery sender used when email is disabled. It logs the
// would-be delivery so digest runs remain observable in development.
type LogSender struct{}

// Send logs the delivery instead of performing it
func (l *LogSender) Send(_ context.Context, to, subject, _ string) error {
	lgr.Printf("[INFO] email delivery disabled, would send %q to %s", subject, to)
	return nil
}
