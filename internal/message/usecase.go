package message

import (
	"context"

	"github.com/google/uuid"
)

type MessageUsecase interface {
	// Post appends a message to the chat, auto-joining the poster to group
	// chats on their first message
	Post(ctx context.Context, chatID, authorID uuid.UUID, cmd PostMessageCommand) (*MessageDTO, error)

	Get(ctx context.Context, messageID uuid.UUID) (*MessageDTO, error)
	ListByChat(ctx context.Context, chatID uuid.UUID) ([]*MessageDTO, error)

	// MarkRead adds the user to the message's read set, idempotently
	MarkRead(ctx context.Context, messageID, userID uuid.UUID) error
}
