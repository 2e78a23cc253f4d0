// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"regsvc/internal/delivery/http/response"
	domainerrors "regsvc/internal/domain/errors"
	"regsvc/internal/domain/validation"
	"regsvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for registration and verification handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignupRequest represents the request body for registering a user.
// The validate tags only bound the field sizes; the rule-specific messages
// come from the domain validation that runs after the shape check. The
// password cap matches the bcrypt input limit.
type SignupRequest struct {
	Email    string `json:"email" validate:"omitempty,max=320"`
	Password string `json:"password" validate:"omitempty,max=72"`
}

// Signup handles the user registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := validation.ValidateSignupData(req.Email, req.Password); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := h.uc.CreateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User,
		"User registered successfully. Please check your email to verify your account.")
}

// VerifyEmail handles the email verification request.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return errors.WithStack(domainerrors.ErrTokenRequired)
	}

	output, err := h.uc.VerifyUserEmail(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.User, "Email verified successfully")
}

// HealthCheck is a simple handler to check if the service is up.
// It does not touch the database.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
