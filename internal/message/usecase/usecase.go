package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"

	"github.com/gustydev/messenger-api/internal/blob"
	"github.com/gustydev/messenger-api/internal/chat"
	chatrepo "github.com/gustydev/messenger-api/internal/chat/repository"
	"github.com/gustydev/messenger-api/internal/consistency"
	"github.com/gustydev/messenger-api/internal/message"
	"github.com/gustydev/messenger-api/internal/message/model"
	msgrepo "github.com/gustydev/messenger-api/internal/message/repository"
	"github.com/gustydev/messenger-api/internal/presence"
	"github.com/gustydev/messenger-api/pkg/errors"
	"github.com/gustydev/messenger-api/pkg/logger"
)

const maxContentLen = 250

type MessageUsecase struct {
	repo   message.MessageRepository
	chats  chat.ChatRepository
	engine *consistency.Engine
	blobs  blob.Store
	pub    presence.Publisher
	logger logger.Logger
}

func NewMessageUsecase(repo message.MessageRepository, chats chat.ChatRepository, engine *consistency.Engine, blobs blob.Store, pub presence.Publisher, logger logger.Logger) *MessageUsecase {
	return &MessageUsecase{repo: repo, chats: chats, engine: engine, blobs: blobs, pub: pub, logger: logger}
}

func (uc *MessageUsecase) Post(ctx context.Context, chatID, authorID uuid.UUID, cmd message.PostMessageCommand) (*message.MessageDTO, error) {
	content := strings.TrimSpace(cmd.Content)
	if content == "" && cmd.Attachment == nil {
		return nil, errors.ErrEmptyMessage
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return nil, errors.ErrMessageTooLong
	}

	c, err := uc.chats.GetChatByID(ctx, chatID)
	if err != nil {
		if pkgErrors.Is(err, chatrepo.ErrChatNotFound) {
			return nil, errors.ErrChatNotFound
		}
		uc.logger.Error("database error fetching chat", "chat_id", chatID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	// Membership before anything is stored: DMs reject outsiders before
	// their attachment bytes land anywhere, group chats admit the poster
	// exactly once
	if err := uc.engine.AutoJoinOnPost(ctx, c, authorID); err != nil {
		return nil, err
	}

	msg := &model.Message{
		Content:    content,
		ChatID:     c.ID,
		PostedByID: authorID,
	}

	if cmd.Attachment != nil {
		url, err := uc.blobs.Store(ctx, cmd.Attachment.Data, cmd.Attachment.ContentType)
		if err != nil {
			return nil, err
		}
		msg.AttachmentURL = url
		msg.AttachmentType = cmd.Attachment.ContentType
	}

	if err := uc.repo.CreateMessage(ctx, msg); err != nil {
		uc.logger.Errorf("error while saving message in db: %v", err)
		return nil, errors.Internal("failed to post message")
	}

	uc.publishPosted(ctx, msg)

	return toDTO(msg), nil
}

func (uc *MessageUsecase) Get(ctx context.Context, messageID uuid.UUID) (*message.MessageDTO, error) {
	msg, err := uc.getMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}
	return toDTO(msg), nil
}

func (uc *MessageUsecase) ListByChat(ctx context.Context, chatID uuid.UUID) ([]*message.MessageDTO, error) {
	if _, err := uc.chats.GetChatByID(ctx, chatID); err != nil {
		if pkgErrors.Is(err, chatrepo.ErrChatNotFound) {
			return nil, errors.ErrChatNotFound
		}
		uc.logger.Error("database error fetching chat", "chat_id", chatID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	msgs, err := uc.repo.ListByChat(ctx, chatID)
	if err != nil {
		uc.logger.Error("database error listing messages", "chat_id", chatID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	dtos := make([]*message.MessageDTO, 0, len(msgs))
	for i := range msgs {
		dtos = append(dtos, toDTO(&msgs[i]))
	}
	return dtos, nil
}

func (uc *MessageUsecase) MarkRead(ctx context.Context, messageID, userID uuid.UUID) error {
	if _, err := uc.getMessage(ctx, messageID); err != nil {
		return err
	}

	read := &model.MessageRead{MessageID: messageID, UserID: userID}
	if err := uc.repo.MarkRead(ctx, read); err != nil {
		uc.logger.Errorf("error while marking message read: %v", err)
		return errors.Internal("failed to mark message as read")
	}
	return nil
}

func (uc *MessageUsecase) getMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error) {
	msg, err := uc.repo.GetMessageByID(ctx, messageID)
	if err != nil {
		if pkgErrors.Is(err, msgrepo.ErrMessageNotFound) {
			return nil, errors.ErrMessageNotFound
		}
		uc.logger.Error("database error fetching message", "message_id", messageID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return msg, nil
}

func (uc *MessageUsecase) publishPosted(ctx context.Context, msg *model.Message) {
	if uc.pub == nil {
		return
	}
	if err := uc.pub.Publish(ctx, presence.EventMessagePosted, toDTO(msg)); err != nil {
		uc.logger.Warn("message broadcast failed", "message_id", msg.ID, "err", err)
	}
}

func toDTO(msg *model.Message) *message.MessageDTO {
	return &message.MessageDTO{
		ID:             msg.ID,
		Content:        msg.Content,
		AttachmentURL:  msg.AttachmentURL,
		AttachmentType: msg.AttachmentType,
		ChatID:         msg.ChatID,
		PostedByID:     msg.PostedByID,
		PostDate:       msg.PostDate,
		EditedAt:       msg.EditedAt,
	}
}
