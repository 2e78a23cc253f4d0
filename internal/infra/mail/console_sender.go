// Package mail provides MailSender implementations: a console sender that
// only logs the outbound message, and an SMTP sender for real delivery.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"regsvc/internal/domain/service"
)

// consoleSender logs the email instead of delivering it. It is the default
// transport for development and tests; swapping in the SMTP sender is a
// config change, not a code change.
type consoleSender struct {
	baseURL string
	logger  *slog.Logger
}

// NewConsoleSender returns the implementation as a service.MailSender.
func NewConsoleSender(baseURL string, logger *slog.Logger) service.MailSender {
	return &consoleSender{
		baseURL: baseURL,
		logger:  logger,
	}
}

// SendVerificationEmail logs the verification link that a real transport would deliver.
func (s *consoleSender) SendVerificationEmail(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s/auth/verify?token=%s", s.baseURL, token)

	s.logger.InfoContext(ctx, "Verification email",
		slog.String("to", email),
		slog.String("subject", "Verify your email address"),
		slog.String("link", link),
	)

	return nil
}

// SendPasswordResetEmail logs the reset link. No route consumes this yet.
func (s *consoleSender) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s/auth/reset-password?token=%s", s.baseURL, token)

	s.logger.InfoContext(ctx, "Password reset email",
		slog.String("to", email),
		slog.String("subject", "Reset your password"),
		slog.String("link", link),
	)

	return nil
}
