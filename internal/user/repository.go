package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	User "github.com/gustydev/messenger-api/internal/user/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *User.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error)
	// GetUserByUsername matches case-insensitively
	GetUserByUsername(ctx context.Context, username string) (*User.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	ListUsers(ctx context.Context) ([]User.User, error)

	// UpdateUser writes only the listed columns
	UpdateUser(ctx context.Context, user *User.User, columns ...string) error
	UpdateStatus(ctx context.Context, userID uuid.UUID, status string, lastSeen *time.Time) error

	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
