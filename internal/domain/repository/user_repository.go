// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"regsvc/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
// Implementations translate driver-level constraint errors into domain errors,
// so callers never inspect storage-specific error codes.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByVerificationToken retrieves the user holding the given verification token.
	FindByVerificationToken(ctx context.Context, token string) (*entity.User, error)

	// Create persists a new user entity to the storage. Email uniqueness is
	// enforced by the storage layer itself; a violation surfaces as the
	// conflict domain error regardless of any pre-check the caller did.
	Create(ctx context.Context, user *entity.User) error

	// MarkVerified atomically flips the user to verified and clears the
	// verification token. Returns ErrUserNotFound if the row no longer exists.
	MarkVerified(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
