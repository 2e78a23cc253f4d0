// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "regsvc/internal/delivery/context"
	"regsvc/internal/domain/entity"
	domainerrors "regsvc/internal/domain/errors"
	"regsvc/internal/domain/repository"
	"regsvc/internal/domain/service"
	"regsvc/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	tokenGen   service.VerificationTokenGenerator
	mailSender service.MailSender
	logger     *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	TokenGen   service.VerificationTokenGenerator
	MailSender service.MailSender
	Logger     *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		tokenGen:   params.TokenGen,
		mailSender: params.MailSender,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser orchestrates the signup flow: duplicate check, password hashing,
// token generation, persistence, and the verification email.
func (srv *authService) CreateUser(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting user signup", slog.String("email", input.Email))

	// 1. Pre-check by email. This is an optimization for the common case;
	// the unique index enforced at Create is the authoritative guard.
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Signup rejected, email already registered", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyExists, "signup failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Failed to check existing user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, "failed to check existing user")
	}

	// 2. Hash the password.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, "failed to hash password")
	}

	// 3. Generate the verification token.
	verificationToken := srv.tokenGen.Generate()

	// 4. Persist the new user, unverified with the token set.
	newUser := &entity.User{
		Email:             input.Email,
		PasswordHash:      passwordHash,
		EmailVerified:     false,
		VerificationToken: &verificationToken,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// Two concurrent signups for the same email race at the unique
		// index; the loser surfaces here as the same conflict error.
		if errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			srv.log(ctx).Warn("Signup lost duplicate-email race", slog.String("email", input.Email))

			return nil, errors.Wrap(err, "signup failed")
		}
		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, "failed to create user")
	}

	// 5. Send the verification email. The user record is already persisted;
	// a send failure is reported to the caller, not rolled back.
	if err := srv.mailSender.SendVerificationEmail(ctx, input.Email, verificationToken); err != nil {
		srv.log(ctx).Error("Failed to send verification email",
			slog.String("email", input.Email),
			slog.Any("userID", newUser.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, "failed to send verification email")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.SignupOutput{User: usecase.ToUserOutput(newUser)}, nil
}

// VerifyUserEmail consumes a verification token: it marks the matching user
// verified and clears the token so it can never be used again.
func (srv *authService) VerifyUserEmail(ctx context.Context, token string) (*usecase.VerifyEmailOutput, error) {
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrTokenRequired, "verification failed")
	}

	user, err := srv.userRepo.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidVerificationToken, "verification failed")
		}
		srv.log(ctx).Error("Failed to look up verification token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrVerificationFailed, "failed to look up verification token")
	}

	// Normally unreachable: the token is cleared when verification succeeds.
	// A concurrent double-verification can still land here, so the state is
	// reported rather than re-verified.
	if user.EmailVerified {
		srv.log(ctx).Warn("Verification attempted for already-verified user", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyVerified, "verification failed")
	}

	updatedUser, err := srv.userRepo.MarkVerified(ctx, user.ID)
	if err != nil {
		// Row vanished between lookup and update.
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidVerificationToken, "verification failed")
		}
		srv.log(ctx).Error("Failed to mark user verified", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrVerificationFailed, "failed to mark user verified")
	}

	srv.log(ctx).Info("Email verified", slog.Any("userID", updatedUser.ID))

	return &usecase.VerifyEmailOutput{User: usecase.ToUserOutput(updatedUser)}, nil
}
