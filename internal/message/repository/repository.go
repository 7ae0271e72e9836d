package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/gustydev/messenger-api/internal/message/model"
	"github.com/gustydev/messenger-api/pkg/logger"
)

type MessageRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrMessageNotFound = errors.New("message not found")

func NewMessageRepository(db *bun.DB, logger logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *MessageRepository) CreateMessage(ctx context.Context, msg *model.Message) error {

	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.CreateMessage.Insert: ")
	}
	return nil
}

func (r *MessageRepository) GetMessageByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {

	msg := new(model.Message)
	err := r.db.NewSelect().Model(msg).Relation("ReadBy").Where("message.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "messageRepo.GetMessageByID.Scan: ")
	}
	return msg, nil
}

func (r *MessageRepository) ListByChat(ctx context.Context, chatID uuid.UUID) ([]model.Message, error) {
	var msgs []model.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Where("chat_id = ?", chatID).
		Order("post_date ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.ListByChat.Scan: ")
	}
	return msgs, nil
}

func (r *MessageRepository) DeleteByAuthor(ctx context.Context, userID uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*model.MessageRead)(nil)).
			Where("message_id IN (SELECT id FROM messages WHERE posted_by_id = ?)", userID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messageRepo.DeleteByAuthor.DeleteReads: ")
		}

		_, err = tx.NewDelete().
			Model((*model.Message)(nil)).
			Where("posted_by_id = ?", userID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messageRepo.DeleteByAuthor.Delete: ")
		}
		return nil
	})
}

func (r *MessageRepository) DeleteByChat(ctx context.Context, chatID uuid.UUID) error {
	return r.DeleteByChats(ctx, []uuid.UUID{chatID})
}

func (r *MessageRepository) DeleteByChats(ctx context.Context, chatIDs []uuid.UUID) error {
	if len(chatIDs) == 0 {
		return nil
	}
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*model.MessageRead)(nil)).
			Where("message_id IN (SELECT id FROM messages WHERE chat_id IN (?))", bun.In(chatIDs)).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messageRepo.DeleteByChats.DeleteReads: ")
		}

		_, err = tx.NewDelete().
			Model((*model.Message)(nil)).
			Where("chat_id IN (?)", bun.In(chatIDs)).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messageRepo.DeleteByChats.Delete: ")
		}
		return nil
	})
}

// MarkRead is idempotent: re-reading a message never duplicates the mark.
func (r *MessageRepository) MarkRead(ctx context.Context, read *model.MessageRead) error {
	_, err := r.db.NewInsert().
		Model(read).
		On("CONFLICT (message_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.MarkRead.Insert: ")
	}
	return nil
}

func (r *MessageRepository) ListReads(ctx context.Context, messageID uuid.UUID) ([]model.MessageRead, error) {
	var reads []model.MessageRead
	err := r.db.NewSelect().
		Model(&reads).
		Where("message_id = ?", messageID).
		Order("read_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.ListReads.Scan: ")
	}
	return reads, nil
}
