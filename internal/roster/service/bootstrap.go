package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ngboy11/school/internal/roster/domain"
	"github.com/ngboy11/school/internal/roster/store"
	"github.com/ngboy11/school/pkg/cryptox"
	"github.com/ngboy11/school/pkg/idx"
)

// Default administrator seeded on a fresh database. The credentials are
// deliberately well known so a new deployment is reachable; operators are
// expected to register a real admin and retire this one.
const (
	DefaultAdminName     = "Administrator"
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin123"
)

type BootstrapService struct {
	Store  store.Store
	Logger *slog.Logger
}

// SeedDefaultAdmin creates the default administrator when the users table is
// empty. Called once at startup; a populated table makes it a no-op. The
// emptiness check and the insert run in one transaction so two racing
// processes cannot both observe an empty table and seed twice.
func (s *BootstrapService) SeedDefaultAdmin(ctx context.Context) error {
	hash, err := cryptox.HashPassword(DefaultAdminPassword)
	if err != nil {
		return err
	}

	seeded := false
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return nil
		}

		admin := domain.User{
			ID:           idx.New().String(),
			Name:         DefaultAdminName,
			Email:        DefaultAdminEmail,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
		}
		if err := tx.Users().CreateUser(ctx, admin); err != nil {
			// A concurrent seed already won; nothing to do.
			if errors.Is(err, store.ErrAlreadyExists) {
				return nil
			}
			return err
		}

		seeded = true
		return nil
	})
	if err != nil {
		return err
	}

	if seeded {
		s.Logger.Warn("default admin created with a publicly known password, change it",
			slog.String("email", DefaultAdminEmail),
		)
	}
	return nil
}
