package impl

import (
	"context"
	"testing"

	"regsvc/internal/domain/entity"
	domainerrors "regsvc/internal/domain/errors"
	"regsvc/internal/domain/repository"
	"regsvc/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *fakeUserRepo
	hasher   *fakeHasher
	tokenGen *fakeTokenGenerator
	mail     *fakeMailSender
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := newFakeUserRepo()
	hasher := &fakeHasher{}
	tokenGen := &fakeTokenGenerator{token: "test-verification-token"}
	mail := &fakeMailSender{}

	service := NewAuthService(AuthServiceParams{
		UserRepo:   userRepo,
		Hasher:     hasher,
		TokenGen:   tokenGen,
		MailSender: mail,
		Logger:     newDiscardLogger(),
	})

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokenGen: tokenGen,
		mail:     mail,
	}
}

func TestAuthService_CreateUser_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	output, err := fx.service.CreateUser(ctx, &usecase.SignupInput{
		Email:    "test@example.com",
		Password: "password1",
	})

	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.False(t, output.User.EmailVerified)
	require.NotNil(t, output.User.VerificationToken)
	assert.Equal(t, "test-verification-token", *output.User.VerificationToken)

	// The stored row carries the hash and the token.
	stored, err := fx.userRepo.FindByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed:password1", stored.PasswordHash)
	assert.False(t, stored.EmailVerified)
	require.NotNil(t, stored.VerificationToken)

	// The verification email was sent with the generated token.
	require.Len(t, fx.mail.sentTo, 1)
	assert.Equal(t, "test@example.com", fx.mail.sentTo[0])
	assert.Equal(t, "test-verification-token", fx.mail.sentTokens[0])
}

func TestAuthService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.SignupInput{Email: "test@example.com", Password: "password1"}

	_, err := fx.service.CreateUser(ctx, input)
	require.NoError(t, err)

	_, err = fx.service.CreateUser(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message(), "already exists")

	// The first row is untouched and remains the only one.
	assert.Len(t, fx.userRepo.users, 1)
	assert.Len(t, fx.mail.sentTo, 1)
}

func TestAuthService_CreateUser_DuplicateRaceAtStore(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	// Pre-check passes, but the store reports the unique violation: the
	// concurrent-signup race resolved against this caller.
	fx.userRepo.createErr = domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")

	_, err := fx.service.CreateUser(ctx, &usecase.SignupInput{
		Email:    "test@example.com",
		Password: "password1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	assert.Empty(t, fx.mail.sentTo)
}

func TestAuthService_CreateUser_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.createErr = errors.New("connection reset")

	_, err := fx.service.CreateUser(ctx, &usecase.SignupInput{
		Email:    "test@example.com",
		Password: "password1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserCreationFailed)
}

func TestAuthService_CreateUser_MailFailureKeepsUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.mail.sendErr = errors.New("smtp unreachable")

	_, err := fx.service.CreateUser(ctx, &usecase.SignupInput{
		Email:    "test@example.com",
		Password: "password1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserCreationFailed)

	// Accepted inconsistency: the user record survives the failed send.
	stored, err := fx.userRepo.FindByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.False(t, stored.EmailVerified)
}

func TestAuthService_VerifyUserEmail_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	signup, err := fx.service.CreateUser(ctx, &usecase.SignupInput{
		Email:    "test@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	output, err := fx.service.VerifyUserEmail(ctx, *signup.User.VerificationToken)
	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.True(t, output.User.EmailVerified)
	assert.Nil(t, output.User.VerificationToken)

	// Storage row flipped and the token is cleared.
	stored, err := fx.userRepo.FindByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.True(t, stored.EmailVerified)
	assert.Nil(t, stored.VerificationToken)
}

func TestAuthService_VerifyUserEmail_EmptyToken(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.VerifyUserEmail(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenRequired)
}

func TestAuthService_VerifyUserEmail_UnknownToken(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.VerifyUserEmail(context.Background(), "no-such-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidVerificationToken)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message(), "token")
}

func TestAuthService_VerifyUserEmail_SecondUseOfToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	signup, err := fx.service.CreateUser(ctx, &usecase.SignupInput{
		Email:    "test@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	token := *signup.User.VerificationToken

	_, err = fx.service.VerifyUserEmail(ctx, token)
	require.NoError(t, err)

	// The token was cleared on first use, so the second attempt no longer
	// matches any row.
	_, err = fx.service.VerifyUserEmail(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidVerificationToken)
}

func TestAuthService_VerifyUserEmail_AlreadyVerifiedRow(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	// A verified row that still holds a token is only reachable through a
	// concurrent double-verification; the branch reports the state anyway.
	staleToken := "stale-token"
	fx.userRepo.seed(&entity.User{
		Email:             "test@example.com",
		PasswordHash:      "hashed:password1",
		EmailVerified:     true,
		VerificationToken: &staleToken,
	})

	_, err := fx.service.VerifyUserEmail(ctx, staleToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyVerified)
}

func TestAuthService_VerifyUserEmail_RowVanishedBeforeUpdate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	token := "test-verification-token"
	fx.userRepo.seed(&entity.User{
		Email:             "test@example.com",
		PasswordHash:      "hashed:password1",
		VerificationToken: &token,
	})
	fx.userRepo.markVerifiedErr = repository.ErrUserNotFound

	_, err := fx.service.VerifyUserEmail(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidVerificationToken)
}
