package storage

import (
	"context"
	"errors"

	"github.com/hbnb/hbnb-auth/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail indicates the email is already registered. Email
// comparison is case-insensitive.
var ErrDuplicateEmail = errors.New("email already registered")

// UserStore captures the persistence operations the auth core and the
// user handlers need.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	SetAdmin(ctx context.Context, id string, isAdmin bool) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}
