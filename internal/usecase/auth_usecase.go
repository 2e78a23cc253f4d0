// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"regsvc/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// UserOutput is the sanitized user view returned to callers.
// It never carries the password hash.
type UserOutput struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	EmailVerified     bool      `json:"emailVerified"`
	VerificationToken *string   `json:"verificationToken"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// SignupOutput returns the newly created user's basic information.
type SignupOutput struct {
	User *UserOutput
}

// VerifyEmailOutput returns the verified user's basic information.
type VerifyEmailOutput struct {
	User *UserOutput
}

// ToUserOutput strips the password hash from a user entity.
func ToUserOutput(user *entity.User) *UserOutput {
	if user == nil {
		return nil
	}

	return &UserOutput{
		ID:                user.ID,
		Email:             user.Email,
		EmailVerified:     user.EmailVerified,
		VerificationToken: user.VerificationToken,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}

// AuthUsecase defines the interface for registration and verification operations.
// This is the contract that the delivery layer (e.g., HTTP handlers) will depend on.
type AuthUsecase interface {
	CreateUser(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	VerifyUserEmail(ctx context.Context, token string) (*VerifyEmailOutput, error)
}
