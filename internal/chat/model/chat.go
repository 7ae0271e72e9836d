package model

import (
	"time"

	"github.com/google/uuid"
)

type Chat struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Title is required for group chats; DMs have none
	Title       string `bun:",nullzero"`
	Description string `bun:",nullzero"`
	PictureURL  string `bun:",nullzero"`

	Public bool `bun:",notnull,default:false"`
	DM     bool `bun:",notnull,default:false"`

	Created time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	Members []*ChatMember `bun:"rel:has-many,join:id=chat_id"`
}
