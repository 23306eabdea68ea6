package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ngboy11/school/internal/roster/domain"
	"github.com/ngboy11/school/internal/roster/store"
	"github.com/ngboy11/school/pkg/cryptox"
	"github.com/ngboy11/school/pkg/idx"
	"github.com/ngboy11/school/pkg/slogx"
)

var (
	ErrMissingFields = errors.New("missing fields")
	ErrEmailTaken    = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and password mismatch,
	// so login failures never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	Store store.Store
}

// Register creates a new user and returns it. The role is fixed at creation;
// there are no role changes or user updates after this point.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (domain.User, error) {
	l := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" || role == "" {
		return domain.User{}, ErrMissingFields
	}
	if !role.Valid() {
		return domain.User{}, ErrMissingFields
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	l.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()),
	)
	return user, nil
}

// Login validates credentials and returns the matching user.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}
