// Package validation contains the pure signup validation rules.
// Rules are checked in a fixed order and the first failure wins, so the
// caller always gets a single, specific message.
package validation

import (
	"regexp"

	domainerrors "regsvc/internal/domain/errors"
)

var (
	// One non-whitespace local part, exactly one '@', at least one '.' in the domain.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	letterPattern = regexp.MustCompile(`[a-zA-Z]`)
	numberPattern = regexp.MustCompile(`[0-9]`)
)

const minPasswordLength = 8

// IsValidEmail reports whether the email matches the accepted format.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword reports whether the password meets the strength rules:
// at least 8 characters, with at least one letter and one number.
func IsValidPassword(password string) bool {
	return len(password) >= minPasswordLength &&
		letterPattern.MatchString(password) &&
		numberPattern.MatchString(password)
}

// ValidateSignupData checks email and password against the signup rules.
// It returns a 400-tagged domain error for the first rule that fails, or
// nil when both values are acceptable. No side effects.
func ValidateSignupData(email, password string) error {
	if email == "" {
		return domainerrors.NewValidationError("Email is required")
	}

	if !emailPattern.MatchString(email) {
		return domainerrors.NewValidationError("Invalid email format")
	}

	if password == "" {
		return domainerrors.NewValidationError("Password is required")
	}

	if len(password) < minPasswordLength {
		return domainerrors.NewValidationError("Password must be at least 8 characters")
	}

	if !letterPattern.MatchString(password) || !numberPattern.MatchString(password) {
		return domainerrors.NewValidationError("Password must contain at least one letter and one number")
	}

	return nil
}
