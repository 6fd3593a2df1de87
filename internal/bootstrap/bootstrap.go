package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/hbnb/hbnb-auth/internal/auth"
	"github.com/hbnb/hbnb-auth/internal/config"
	"github.com/hbnb/hbnb-auth/internal/models"
	"github.com/hbnb/hbnb-auth/internal/storage"
)

// EnsureAdmin creates the configured administrator account if no user
// holds its email yet. It reports whether a record was created, so
// rerunning the seed is a no-op rather than an error.
func EnsureAdmin(ctx context.Context, store storage.UserStore, hasher *auth.Hasher, cfg config.Config) (bool, error) {
	if _, err := store.FindByEmail(ctx, cfg.AdminEmail); err == nil {
		return false, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return false, fmt.Errorf("check existing admin: %w", err)
	}

	passwordHash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	_, err = store.CreateUser(ctx, models.User{
		Email:        cfg.AdminEmail,
		FirstName:    cfg.AdminFirstName,
		LastName:     cfg.AdminLastName,
		IsAdmin:      true,
		PasswordHash: passwordHash,
	})
	if err != nil {
		// Lost the race against a concurrent seed; the account exists.
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return false, nil
		}
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}
