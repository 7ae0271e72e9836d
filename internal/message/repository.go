package message

import (
	"context"

	"github.com/google/uuid"

	"github.com/gustydev/messenger-api/internal/message/model"
)

type MessageRepository interface {
	CreateMessage(ctx context.Context, msg *model.Message) error
	GetMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error)
	ListByChat(ctx context.Context, chatID uuid.UUID) ([]model.Message, error)

	DeleteByAuthor(ctx context.Context, userID uuid.UUID) error
	DeleteByChat(ctx context.Context, chatID uuid.UUID) error
	DeleteByChats(ctx context.Context, chatIDs []uuid.UUID) error

	// MarkRead is add-to-set: marking twice leaves one row
	MarkRead(ctx context.Context, read *model.MessageRead) error
	ListReads(ctx context.Context, messageID uuid.UUID) ([]model.MessageRead, error)
}
