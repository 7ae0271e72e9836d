package user

import (
	"context"

	"github.com/google/uuid"
)

type UserUsecase interface {
	// Register creates a user; username conflicts are case-insensitive
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)

	// Login verifies credentials and issues an access token
	Login(ctx context.Context, cmd LoginCommand) (*LoginResponse, error)

	// Resolve fetches the user behind a verified subject id
	Resolve(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	GetByUsername(ctx context.Context, username string) (*UserDTO, error)
	List(ctx context.Context) ([]*UserDTO, error)

	// UpdateProfile only lets users change their own account
	UpdateProfile(ctx context.Context, userID, actingUserID uuid.UUID, cmd UpdateProfileCommand) (*UserDTO, error)

	// Delete removes the account and cascades: authored messages, DM chats,
	// membership entries elsewhere
	Delete(ctx context.Context, userID, actingUserID uuid.UUID) error
}
