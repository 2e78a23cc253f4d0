// Package validator adapts go-playground's validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps a validator instance for echo.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the validator used for request binding.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Call sites decide how the validation
// error is rendered, so it is returned untouched.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
