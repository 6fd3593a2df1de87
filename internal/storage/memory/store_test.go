package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbnb/hbnb-auth/internal/models"
	"github.com/hbnb/hbnb-auth/internal/storage"
)

func TestStore_CreateAndFind(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, models.User{
		Email:        "Jane@Example.com",
		FirstName:    "Jane",
		LastName:     "Doe",
		PasswordHash: "$2a$04$fakehash",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "jane@example.com", created.Email)

	// Case-insensitive lookup.
	found, err := s.FindByEmail(ctx, "JANE@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	byID, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, byID.Email)
}

func TestStore_DuplicateEmail(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, models.User{Email: "dup@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, models.User{Email: "DUP@example.com", PasswordHash: "h"})
	require.ErrorIs(t, err, storage.ErrDuplicateEmail)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestStore_UpdateKeepsAdminFlag(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, models.User{Email: "a@example.com", IsAdmin: true, PasswordHash: "h"})
	require.NoError(t, err)

	updated, err := s.UpdateUser(ctx, models.User{
		ID:           created.ID,
		Email:        "a2@example.com",
		FirstName:    "A",
		LastName:     "B",
		PasswordHash: "h2",
	})
	require.NoError(t, err)
	assert.Equal(t, "a2@example.com", updated.Email)
	assert.True(t, updated.IsAdmin, "profile update must not drop the admin flag")
}

func TestStore_UpdateDuplicateEmail(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, models.User{Email: "first@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	second, err := s.CreateUser(ctx, models.User{Email: "second@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	second.Email = "First@Example.com"
	_, err = s.UpdateUser(ctx, second)
	require.ErrorIs(t, err, storage.ErrDuplicateEmail)
}

func TestStore_SetAdminAndDelete(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, models.User{Email: "u@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.False(t, created.IsAdmin)

	promoted, err := s.SetAdmin(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	require.NoError(t, s.DeleteUser(ctx, created.ID))
	require.ErrorIs(t, s.DeleteUser(ctx, created.ID), storage.ErrNotFound)

	_, err = s.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_NotFound(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	ctx := context.Background()

	_, err := s.FindByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.SetAdmin(ctx, "missing", true)
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.UpdateUser(ctx, models.User{ID: "missing"})
	require.ErrorIs(t, err, storage.ErrNotFound)
}
