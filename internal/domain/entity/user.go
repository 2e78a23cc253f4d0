// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the sole entity in the system, representing a registered account.
// PasswordHash never leaves the store/service boundary; delivery maps the
// entity to a response model that does not carry it.
type User struct {
	ID                uuid.UUID // The unique identifier for the user, generated at creation.
	Email             string    // The user's email address, unique and immutable after creation.
	PasswordHash      string    // The bcrypt hash of the user's password.
	EmailVerified     bool      // False at creation, flips to true exactly once on verification.
	VerificationToken *string   // Non-nil while unverified; cleared when verification succeeds.
	CreatedAt         time.Time // Timestamp of when this user account was created.
	UpdatedAt         time.Time // Timestamp of the last modification to this user's data.
}
