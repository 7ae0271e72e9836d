package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageRead marks that a user has seen a message. Set-membership only,
// marking twice is a no-op.
type MessageRead struct {
	MessageID uuid.UUID `bun:",pk,type:uuid"`
	Message   *Message  `bun:"rel:belongs-to,join:message_id=id"`

	UserID uuid.UUID `bun:",pk,type:uuid"`

	ReadAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
