package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rahulladumor/portfolio-api/internal/application/service"
	"github.com/rahulladumor/portfolio-api/internal/config"
)

type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPMailer(cfg config.Config) (service.Mailer, error) {
	if cfg.Email.SMTPHost == "" {
		return nil, fmt.Errorf("config SMTP host not found")
	}

	var auth smtp.Auth
	if cfg.Email.Username != "" {
		auth = smtp.PlainAuth("", cfg.Email.Username, cfg.Email.Password, cfg.Email.SMTPHost)
	}

	return &smtpMailer{
		addr: fmt.Sprintf("%s:%s", cfg.Email.SMTPHost, cfg.Email.SMTPPort),
		auth: auth,
		from: cfg.Email.From,
	}, nil
}

func (m *smtpMailer) Send(ctx context.Context, to []string, subject string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	msg.WriteString("From: " + m.from + "\r\n")
	msg.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, to, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
