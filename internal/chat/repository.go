package chat

import (
	"context"

	"github.com/google/uuid"

	"github.com/gustydev/messenger-api/internal/chat/model"
)

type ChatRepository interface {
	// CreateChatWithMembers inserts the chat and its initial membership
	// entries in one transaction
	CreateChatWithMembers(ctx context.Context, chat *model.Chat, members []model.ChatMember) error

	GetChatByID(ctx context.Context, id uuid.UUID) (*model.Chat, error)
	ListChats(ctx context.Context) ([]model.Chat, error)
	ListMembers(ctx context.Context, chatID uuid.UUID) ([]model.ChatMember, error)
	GetMember(ctx context.Context, chatID, userID uuid.UUID) (*model.ChatMember, error)

	// AddMemberIfAbsent is add-to-set: concurrent inserts of the same
	// (chat, user) pair leave exactly one row
	AddMemberIfAbsent(ctx context.Context, member *model.ChatMember) error

	// FindDMByMembers looks up the DM chat whose membership set equals
	// {userA, userB}, in either order
	FindDMByMembers(ctx context.Context, userA, userB uuid.UUID) (*model.Chat, error)

	// UpdateChat writes only the listed columns
	UpdateChat(ctx context.Context, chat *model.Chat, columns ...string) error

	ListDMChatIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	DeleteChats(ctx context.Context, ids []uuid.UUID) error
	DeleteChat(ctx context.Context, id uuid.UUID) error
	RemoveMemberEverywhere(ctx context.Context, userID uuid.UUID) error
}
