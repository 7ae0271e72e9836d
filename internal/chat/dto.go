package chat

import (
	"time"

	"github.com/google/uuid"
)

// Input commands
type CreateGroupCommand struct {
	Title       string
	Description string
	Public      bool
}

type CreateDMCommand struct {
	RecipientID uuid.UUID
}

// UpdateChatCommand carries partial updates: nil means "leave unchanged".
type UpdateChatCommand struct {
	Title       *string
	Description *string
	Public      *bool
	PictureURL  *string
}

// Output DTOs
type ChatDTO struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	PictureURL  string      `json:"pictureUrl,omitempty"`
	Public      bool        `json:"public"`
	DM          bool        `json:"dm"`
	Created     time.Time   `json:"created"`
	Members     []MemberDTO `json:"members,omitempty"`
}

type MemberDTO struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username,omitempty"`
	IsAdmin  bool      `json:"isAdmin"`
	JoinedAt time.Time `json:"joinedAt"`
}
