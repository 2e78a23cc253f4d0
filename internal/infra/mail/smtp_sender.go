package mail

import (
	"context"
	"fmt"
	"log/slog"

	"regsvc/config"
	"regsvc/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// smtpSender delivers mail over SMTP using gomail.
type smtpSender struct {
	cfg     *config.SMTPConfig
	baseURL string
	logger  *slog.Logger
}

// NewSMTPSender returns the implementation as a service.MailSender.
func NewSMTPSender(cfg *config.SMTPConfig, baseURL string, logger *slog.Logger) service.MailSender {
	return &smtpSender{
		cfg:     cfg,
		baseURL: baseURL,
		logger:  logger,
	}
}

// SendVerificationEmail delivers the verification link to the given address.
func (s *smtpSender) SendVerificationEmail(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s/auth/verify?token=%s", s.baseURL, token)
	body := fmt.Sprintf("Click the link below to verify your email address:\r\n%s\r\n", link)

	return s.send(ctx, email, "Verify your email address", body)
}

// SendPasswordResetEmail delivers the reset link to the given address.
func (s *smtpSender) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s/auth/reset-password?token=%s", s.baseURL, token)
	body := fmt.Sprintf("Click the link below to reset your password:\r\n%s\r\n", link)

	return s.send(ctx, email, "Reset your password", body)
}

func (s *smtpSender) send(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		s.logger.ErrorContext(ctx, "Failed to send email",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to send email")
	}

	s.logger.DebugContext(ctx, "Email sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}
