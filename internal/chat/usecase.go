package chat

import (
	"context"

	"github.com/google/uuid"
)

type ChatUsecase interface {
	// CreateGroup makes the creator the sole member with admin rights
	CreateGroup(ctx context.Context, creatorID uuid.UUID, cmd CreateGroupCommand) (*ChatDTO, error)

	// CreateDM creates the unique direct-message chat for the pair;
	// a second attempt conflicts regardless of who initiates
	CreateDM(ctx context.Context, requesterID uuid.UUID, cmd CreateDMCommand) (*ChatDTO, error)

	// UpdateMetadata is admin-gated; absent fields keep their prior value
	UpdateMetadata(ctx context.Context, chatID, actingUserID uuid.UUID, cmd UpdateChatCommand) (*ChatDTO, error)

	Get(ctx context.Context, chatID uuid.UUID) (*ChatDTO, error)
	List(ctx context.Context) ([]*ChatDTO, error)
	ListMembers(ctx context.Context, chatID uuid.UUID) ([]MemberDTO, error)
}
