package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/honeynil/DepositWithdrawService/internal/models"
	gomail "github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends HTML mail through an authenticated STARTTLS relay.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, to string, msg models.MailMessage) error {
	if m.cfg.Username == "" {
		return fmt.Errorf("smtp credentials not configured")
	}

	message := gomail.NewMsg()
	if err := message.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid sender %q: %w", m.cfg.From, err)
	}
	if err := message.To(to); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	message.Subject(msg.Subject)
	message.SetBodyString(gomail.TypeTextHTML, msg.Body)

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		slog.Error("failed to send mail", "to", to, "subject", msg.Subject, "error", err)
		return err
	}

	slog.Info("mail sent", "to", to, "subject", msg.Subject)
	return nil
}
