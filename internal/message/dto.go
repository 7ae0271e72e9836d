package message

import (
	"time"

	"github.com/google/uuid"
)

// Input commands
type PostMessageCommand struct {
	Content    string
	Attachment *AttachmentUpload
}

type AttachmentUpload struct {
	Data        []byte
	ContentType string
}

// Output DTOs
type MessageDTO struct {
	ID             uuid.UUID  `json:"id"`
	Content        string     `json:"content,omitempty"`
	AttachmentURL  string     `json:"attachmentUrl,omitempty"`
	AttachmentType string     `json:"attachmentType,omitempty"`
	ChatID         uuid.UUID  `json:"chatId"`
	PostedByID     uuid.UUID  `json:"postedBy"`
	PostDate       time.Time  `json:"postDate"`
	EditedAt       *time.Time `json:"editedAt,omitempty"`
}
