package email

import (
	"context"

	"banarts/internal/logger"

	"gopkg.in/gomail.v2"
)

// Message is one outgoing email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// NewSender returns an SMTP sender, or a logging no-op when cfg has no host.
func NewSender(cfg Config) Sender {
	if !cfg.Enabled() {
		return NopSender{}
	}
	return &SMTPSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

type SMTPSender struct {
	cfg    Config
	dialer *gomail.Dialer
}

func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.dialer.DialAndSend(s.build(msg))
}

func (s *SMTPSender) build(msg *Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromEmail, s.cfg.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)
	return m
}

// NopSender drops mail; used when SMTP is not configured.
type NopSender struct{}

func (NopSender) Send(ctx context.Context, msg *Message) error {
	logger.CtxDebug(ctx, "Email disabled, message dropped", "to", msg.To, "subject", msg.Subject)
	return nil
}
