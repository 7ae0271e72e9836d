package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/gustydev/messenger-api/internal/chat/model"
	"github.com/gustydev/messenger-api/pkg/logger"
)

type ChatRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrChatNotFound   = errors.New("chat not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrDMNotFound     = errors.New("dm not found")
)

func NewChatRepository(db *bun.DB, logger logger.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ChatRepository) CreateChatWithMembers(ctx context.Context, chat *model.Chat, members []model.ChatMember) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(chat).Returning("*").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "chatRepo.CreateChatWithMembers.InsertChat: ")
		}

		for i := range members {
			members[i].ChatID = chat.ID
		}

		_, err = tx.NewInsert().Model(&members).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "chatRepo.CreateChatWithMembers.InsertMembers: ")
		}
		return nil
	})
}

func (r *ChatRepository) GetChatByID(ctx context.Context, id uuid.UUID) (*model.Chat, error) {

	chat := new(model.Chat)
	err := r.db.NewSelect().Model(chat).Relation("Members").Where("chat.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChatNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetChatByID.Scan: ")
	}
	return chat, nil
}

func (r *ChatRepository) ListChats(ctx context.Context) ([]model.Chat, error) {
	var chats []model.Chat
	err := r.db.NewSelect().Model(&chats).Order("created ASC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListChats.Scan: ")
	}
	return chats, nil
}

func (r *ChatRepository) ListMembers(ctx context.Context, chatID uuid.UUID) ([]model.ChatMember, error) {
	var members []model.ChatMember
	err := r.db.NewSelect().
		Model(&members).
		Relation("User").
		Where("chat_member.chat_id = ?", chatID).
		Order("chat_member.joined_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListMembers.Scan: ")
	}
	return members, nil
}

func (r *ChatRepository) GetMember(ctx context.Context, chatID, userID uuid.UUID) (*model.ChatMember, error) {
	member := new(model.ChatMember)
	err := r.db.NewSelect().
		Model(member).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetMember.Scan: ")
	}
	return member, nil
}

// AddMemberIfAbsent relies on the composite primary key: concurrent posts
// from the same new member race on the same row and all but one insert
// become no-ops.
func (r *ChatRepository) AddMemberIfAbsent(ctx context.Context, member *model.ChatMember) error {
	_, err := r.db.NewInsert().
		Model(member).
		On("CONFLICT (chat_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.AddMemberIfAbsent.Insert: ")
	}
	return nil
}

func (r *ChatRepository) FindDMByMembers(ctx context.Context, userA, userB uuid.UUID) (*model.Chat, error) {
	chat := new(model.Chat)
	err := r.db.NewSelect().
		Model(chat).
		Join("JOIN chat_members AS m1 ON m1.chat_id = chat.id AND m1.user_id = ?", userA).
		Join("JOIN chat_members AS m2 ON m2.chat_id = chat.id AND m2.user_id = ?", userB).
		Where("chat.dm = TRUE").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDMNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.FindDMByMembers.Scan: ")
	}
	return chat, nil
}

func (r *ChatRepository) UpdateChat(ctx context.Context, chat *model.Chat, columns ...string) error {
	res, err := r.db.NewUpdate().
		Model(chat).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.UpdateChat.Exec: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrChatNotFound
	}
	return nil
}

func (r *ChatRepository) ListDMChatIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.NewSelect().
		Model((*model.Chat)(nil)).
		Column("chat.id").
		Join("JOIN chat_members AS m ON m.chat_id = chat.id").
		Where("chat.dm = TRUE AND m.user_id = ?", userID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListDMChatIDs.Scan: ")
	}
	return ids, nil
}

func (r *ChatRepository) DeleteChats(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*model.ChatMember)(nil)).
			Where("chat_id IN (?)", bun.In(ids)).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "chatRepo.DeleteChats.DeleteMembers: ")
		}

		_, err = tx.NewDelete().
			Model((*model.Chat)(nil)).
			Where("id IN (?)", bun.In(ids)).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "chatRepo.DeleteChats.DeleteChats: ")
		}
		return nil
	})
}

func (r *ChatRepository) DeleteChat(ctx context.Context, id uuid.UUID) error {
	return r.DeleteChats(ctx, []uuid.UUID{id})
}

func (r *ChatRepository) RemoveMemberEverywhere(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*model.ChatMember)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.RemoveMemberEverywhere.Exec: ")
	}
	return nil
}
