// Package consistency holds the cross-entity rules that chats, messages and
// users must never violate: DM uniqueness, auto-join-on-post, admin gating
// and the cascades that run when a user or chat is removed. They live here as
// explicit procedures instead of persistence hooks so the ordering and
// partial-failure semantics stay auditable.
package consistency

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/gustydev/messenger-api/internal/chat"
	chatmodel "github.com/gustydev/messenger-api/internal/chat/model"
	chatrepo "github.com/gustydev/messenger-api/internal/chat/repository"
	"github.com/gustydev/messenger-api/internal/message"
	usermodel "github.com/gustydev/messenger-api/internal/user/model"
	appErrors "github.com/gustydev/messenger-api/pkg/errors"
	"github.com/gustydev/messenger-api/pkg/logger"
)

type Engine struct {
	chats    chat.ChatRepository
	messages message.MessageRepository
	logger   logger.Logger
}

func NewEngine(chats chat.ChatRepository, messages message.MessageRepository, logger logger.Logger) *Engine {
	return &Engine{chats: chats, messages: messages, logger: logger}
}

// AutoJoinOnPost admits a poster into a chat they are writing to. DM
// membership is fixed at creation and never grows; group chats add the
// poster with admin=false. The insert is add-to-set, so any number of
// concurrent first posts leaves exactly one membership entry.
func (e *Engine) AutoJoinOnPost(ctx context.Context, c *chatmodel.Chat, posterID uuid.UUID) error {
	_, err := e.chats.GetMember(ctx, c.ID, posterID)
	if err == nil {
		return nil // already a member
	}
	if !errors.Is(err, chatrepo.ErrMemberNotFound) {
		e.logger.Error("membership lookup failed", "chat_id", c.ID, "user_id", posterID, "err", err)
		return appErrors.Internal("failed to check chat membership")
	}

	if c.DM {
		return appErrors.ErrNotInConversation
	}

	member := &chatmodel.ChatMember{
		ChatID:  c.ID,
		UserID:  posterID,
		IsAdmin: false,
	}
	if err := e.chats.AddMemberIfAbsent(ctx, member); err != nil {
		e.logger.Error("auto-join insert failed", "chat_id", c.ID, "user_id", posterID, "err", err)
		return appErrors.Internal("failed to join chat")
	}
	return nil
}

// RequireAdmin gates chat metadata mutation. Not being in the chat at all
// and being a plain member are distinct failures, both 403-class.
func (e *Engine) RequireAdmin(ctx context.Context, chatID, userID uuid.UUID) error {
	member, err := e.chats.GetMember(ctx, chatID, userID)
	if err != nil {
		if errors.Is(err, chatrepo.ErrMemberNotFound) {
			return appErrors.ErrNotChatMember
		}
		e.logger.Error("membership lookup failed", "chat_id", chatID, "user_id", userID, "err", err)
		return appErrors.Internal("failed to check chat membership")
	}
	if !member.IsAdmin {
		return appErrors.ErrNotChatAdmin
	}
	return nil
}

// CheckUniqueDM rejects self-DMs before searching, then enforces at most one
// DM per unordered user pair. The conflict names both parties.
func (e *Engine) CheckUniqueDM(ctx context.Context, requester, recipient *usermodel.User) error {
	if requester.ID == recipient.ID {
		return appErrors.ErrSelfDM
	}

	_, err := e.chats.FindDMByMembers(ctx, requester.ID, recipient.ID)
	if err == nil {
		return appErrors.ErrDMExists(requester.Username, recipient.Username)
	}
	if !errors.Is(err, chatrepo.ErrDMNotFound) {
		e.logger.Error("dm lookup failed", "requester", requester.ID, "recipient", recipient.ID, "err", err)
		return appErrors.Internal("failed to check for existing dm")
	}
	return nil
}

// PurgeUser runs the user-removal cascade in a fixed order: authored
// messages first, then DM chats (with their message history), then the
// user's membership entries in surviving group chats. The steps are not one
// transaction; if a later step fails the earlier deletions stay applied and
// the caller gets a retryable partial-failure error.
func (e *Engine) PurgeUser(ctx context.Context, userID uuid.UUID) error {
	if err := e.messages.DeleteByAuthor(ctx, userID); err != nil {
		e.logger.Error("cascade: deleting authored messages failed", "user_id", userID, "err", err)
		return appErrors.ErrUserDeleteIncomplete(err)
	}

	dmIDs, err := e.chats.ListDMChatIDs(ctx, userID)
	if err != nil {
		e.logger.Error("cascade: listing dm chats failed", "user_id", userID, "err", err)
		return appErrors.ErrUserDeleteIncomplete(err)
	}
	if err := e.messages.DeleteByChats(ctx, dmIDs); err != nil {
		e.logger.Error("cascade: deleting dm messages failed", "user_id", userID, "err", err)
		return appErrors.ErrUserDeleteIncomplete(err)
	}
	if err := e.chats.DeleteChats(ctx, dmIDs); err != nil {
		e.logger.Error("cascade: deleting dm chats failed", "user_id", userID, "err", err)
		return appErrors.ErrUserDeleteIncomplete(err)
	}

	if err := e.chats.RemoveMemberEverywhere(ctx, userID); err != nil {
		e.logger.Error("cascade: removing memberships failed", "user_id", userID, "err", err)
		return appErrors.ErrUserDeleteIncomplete(err)
	}

	return nil
}

// PurgeChat deletes a chat together with every message that references it.
func (e *Engine) PurgeChat(ctx context.Context, chatID uuid.UUID) error {
	if err := e.messages.DeleteByChat(ctx, chatID); err != nil {
		e.logger.Error("cascade: deleting chat messages failed", "chat_id", chatID, "err", err)
		return appErrors.ErrChatDeleteIncomplete(err)
	}
	if err := e.chats.DeleteChat(ctx, chatID); err != nil {
		e.logger.Error("cascade: deleting chat failed", "chat_id", chatID, "err", err)
		return appErrors.ErrChatDeleteIncomplete(err)
	}
	return nil
}
