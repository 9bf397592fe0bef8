package email

import (
	"context"
	"time"
)

// AccountMailer sends security notices about a user's account.
type AccountMailer struct {
	sender    Sender
	templates *TemplateManager
	now       func() time.Time
}

func NewAccountMailer(sender Sender, templates *TemplateManager, now func() time.Time) *AccountMailer {
	if now == nil {
		now = time.Now
	}
	return &AccountMailer{sender: sender, templates: templates, now: now}
}

func (m *AccountMailer) PasswordChanged(ctx context.Context, to, name string) error {
	return m.send(ctx, to, "Your BanArts password was changed", TemplatePasswordChanged, name)
}

func (m *AccountMailer) PasswordReset(ctx context.Context, to, name string) error {
	return m.send(ctx, to, "Your BanArts password was reset", TemplatePasswordReset, name)
}

func (m *AccountMailer) send(ctx context.Context, to, subject, template, name string) error {
	if name == "" {
		name = to
	}
	body, err := m.templates.Render(template, TemplateData{
		"Name": name,
		"When": m.now().UTC().Format("2006-01-02 15:04 MST"),
	})
	if err != nil {
		return err
	}
	return m.sender.Send(ctx, &Message{To: to, Subject: subject, HTMLBody: body})
}
