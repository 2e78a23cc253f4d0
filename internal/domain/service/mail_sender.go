package service

import "context"

// MailSender defines the outbound email contract. Sends are fire-and-forget
// from the domain's point of view: no delivery guarantee, no retries.
type MailSender interface {
	// SendVerificationEmail sends the verification link for the given token.
	SendVerificationEmail(ctx context.Context, email, token string) error

	// SendPasswordResetEmail sends a password reset link. No in-scope route
	// consumes this yet; the template exists for the future reset flow.
	SendPasswordResetEmail(ctx context.Context, email, token string) error
}
