package model

import (
	"time"

	"github.com/google/uuid"

	chat "github.com/gustydev/messenger-api/internal/chat/model"
	user "github.com/gustydev/messenger-api/internal/user/model"
)

type Message struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Either Content or an attachment must be present, never neither
	Content        string `bun:",nullzero"`
	AttachmentURL  string `bun:",nullzero"`
	AttachmentType string `bun:",nullzero"`

	ChatID uuid.UUID  `bun:",notnull,type:uuid"`
	Chat   *chat.Chat `bun:"rel:belongs-to,join:chat_id=id"`

	PostedByID uuid.UUID  `bun:",notnull,type:uuid"`
	PostedBy   *user.User `bun:"rel:belongs-to,join:posted_by_id=id"`

	PostDate time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	EditedAt *time.Time `bun:",nullzero"`

	ReadBy []*MessageRead `bun:"rel:has-many,join:id=message_id"`
}
