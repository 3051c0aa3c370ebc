package storage

import (
	"context"

	"github.com/iudanet/solace/internal/models"
)

// UserStorage defines the interface for credential persistence.
type UserStorage interface {
	// CreateUser creates a new user and sets user.ID.
	// Returns ErrUserAlreadyExists if the username or email is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email (the login identifier).
	// Returns ErrUserNotFound if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by id.
	// Returns ErrUserNotFound if no such user exists.
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}
