package validation

import (
	"net/http"
	"testing"

	domainerrors "regsvc/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSignupData_Valid(t *testing.T) {
	valid := []struct {
		email    string
		password string
	}{
		{"test@example.com", "password1"},
		{"user.name+tag@sub.domain.org", "abcdefg8"},
		{"a@b.co", "1234567a"},
		{"UPPER@CASE.COM", "longEnoughPassword9"},
	}

	for _, tc := range valid {
		assert.NoError(t, ValidateSignupData(tc.email, tc.password), "email=%s password=%s", tc.email, tc.password)
	}
}

func TestValidateSignupData_RuleOrderAndMessages(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		password string
		message  string
	}{
		{"missing email", "", "password1", "Email is required"},
		{"missing email wins over missing password", "", "", "Email is required"},
		{"no at sign", "invalid-email", "password1", "Invalid email format"},
		{"no dot after at", "user@domain", "password1", "Invalid email format"},
		{"whitespace in local part", "us er@domain.com", "password1", "Invalid email format"},
		{"two at signs", "user@@domain.com", "password1", "Invalid email format"},
		{"bad email wins over bad password", "invalid-email", "short", "Invalid email format"},
		{"missing password", "test@example.com", "", "Password is required"},
		{"short password", "test@example.com", "pass1", "Password must be at least 8 characters"},
		{"no number", "test@example.com", "passwordonly", "Password must contain at least one letter and one number"},
		{"no letter", "test@example.com", "12345678", "Password must contain at least one letter and one number"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSignupData(tc.email, tc.password)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
			assert.Equal(t, tc.message, appErr.Message())
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("test@example.com"))
	assert.True(t, IsValidEmail("a@b.c"))
	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("plainaddress"))
	assert.False(t, IsValidEmail("user@nodot"))
	assert.False(t, IsValidEmail("spaced user@example.com"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("password1"))
	assert.False(t, IsValidPassword("short1a"))
	assert.False(t, IsValidPassword("allletters"))
	assert.False(t, IsValidPassword("123456789"))
}
