package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

// ErrMailerNotConfigured is returned when SMTP settings are incomplete.
var ErrMailerNotConfigured = errors.New("mailer not configured")

// chartAttachmentName is the filename of the chart attached to report emails.
const chartAttachmentName = "mood_chart.png"

// MailerConfig holds SMTP delivery settings. Credentials are passed in
// explicitly at construction time; the mailer reads no ambient state.
type MailerConfig struct {
	Host     string
	Port     int // implicit SSL port, default 465
	Username string
	Password string
	From     string
}

// Mailer delivers report emails over SMTP with implicit SSL.
type Mailer struct {
	client *mail.Client
	from   string
}

// NewMailer creates a mailer. Returns ErrMailerNotConfigured when host,
// sender, or credentials are missing so callers can disable delivery cleanly.
func NewMailer(cfg MailerConfig) (*Mailer, error) {
	if cfg.Host == "" || cfg.From == "" || cfg.Username == "" || cfg.Password == "" {
		return nil, ErrMailerNotConfigured
	}
	if cfg.Port == 0 {
		cfg.Port = 465
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}

	return &Mailer{client: client, from: cfg.From}, nil
}

// Send delivers an HTML report email with the chart attached.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string, chartPNG []byte) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if len(chartPNG) > 0 {
		if err := msg.AttachReader(chartAttachmentName, bytes.NewReader(chartPNG)); err != nil {
			return fmt.Errorf("attaching chart: %w", err)
		}
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending report email: %w", err)
	}
	return nil
}
