package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"regsvc/internal/domain/entity"
	domainerrors "regsvc/internal/domain/errors"
	"regsvc/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository with injectable failures.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User

	findErr         error
	createErr       error
	markVerifiedErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if user, ok := r.users[id]; ok {
		copied := *user

		return &copied, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, user := range r.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByVerificationToken(_ context.Context, token string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, user := range r.users {
		if user.VerificationToken != nil && *user.VerificationToken == token {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) MarkVerified(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.markVerifiedErr != nil {
		return nil, r.markVerifiedErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	user.EmailVerified = true
	user.VerificationToken = nil
	user.UpdatedAt = time.Now()

	copied := *user

	return &copied, nil
}

// seed inserts a user directly, bypassing Create's uniqueness check.
func (r *fakeUserRepo) seed(user *entity.User) *entity.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	r.users[user.ID] = &copied

	return user
}

type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenGenerator struct {
	token string
}

func (g *fakeTokenGenerator) Generate() string {
	return g.token
}

// fakeMailSender records the verification emails it was asked to send.
type fakeMailSender struct {
	sendErr error

	sentTo     []string
	sentTokens []string
}

func (s *fakeMailSender) SendVerificationEmail(_ context.Context, email, token string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sentTo = append(s.sentTo, email)
	s.sentTokens = append(s.sentTokens, token)

	return nil
}

func (s *fakeMailSender) SendPasswordResetEmail(_ context.Context, _, _ string) error {
	return nil
}
