package user

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type RegisterCommand struct {
	Username        string
	Password        string
	ConfirmPassword string
	DisplayName     string // optional, defaults to Username
}

type LoginCommand struct {
	Username string
	Password string
}

// UpdateProfileCommand carries partial updates: nil means "leave unchanged".
// An explicit empty string is rejected by validation, never silently dropped.
// Avatar takes precedence over ProfilePicURL when both are present.
type UpdateProfileCommand struct {
	DisplayName   *string
	Bio           *string
	ProfilePicURL *string
	Avatar        *AvatarUpload
}

// AvatarUpload must carry image bytes; other content types are rejected.
type AvatarUpload struct {
	Data        []byte
	ContentType string
}

// Output DTOs
type UserDTO struct {
	ID            uuid.UUID  `json:"id"`
	Username      string     `json:"username"`
	DisplayName   string     `json:"displayName"`
	Status        string     `json:"status"`
	LastSeen      *time.Time `json:"lastSeen,omitempty"`
	Bio           string     `json:"bio,omitempty"`
	ProfilePicURL string     `json:"profilePicUrl,omitempty"`
	Joined        time.Time  `json:"joined"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	ExpiresIn   int      `json:"expires_in"`
	TokenType   string   `json:"token_type"`
	User        *UserDTO `json:"user"`
}
