package model

import (
	"time"

	"github.com/google/uuid"

	user "github.com/gustydev/messenger-api/internal/user/model"
)

// ChatMember is one user's membership entry in one chat. Only the chat
// creation path may insert IsAdmin=true; auto-join always inserts false.
type ChatMember struct {
	ChatID uuid.UUID `bun:",pk,type:uuid"`
	Chat   *Chat     `bun:"rel:belongs-to,join:chat_id=id"`

	UserID uuid.UUID  `bun:",pk,type:uuid"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	IsAdmin bool `bun:",notnull,default:false"`

	JoinedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
