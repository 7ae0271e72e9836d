package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"

	"github.com/gustydev/messenger-api/internal/chat"
	"github.com/gustydev/messenger-api/internal/chat/model"
	chatrepo "github.com/gustydev/messenger-api/internal/chat/repository"
	"github.com/gustydev/messenger-api/internal/consistency"
	"github.com/gustydev/messenger-api/internal/user"
	usermodel "github.com/gustydev/messenger-api/internal/user/model"
	userrepo "github.com/gustydev/messenger-api/internal/user/repository"
	"github.com/gustydev/messenger-api/pkg/errors"
	"github.com/gustydev/messenger-api/pkg/logger"
)

const (
	maxTitleLen       = 50
	maxDescriptionLen = 200
)

type ChatUsecase struct {
	repo   chat.ChatRepository
	users  user.UserRepository
	engine *consistency.Engine
	logger logger.Logger
}

func NewChatUsecase(repo chat.ChatRepository, users user.UserRepository, engine *consistency.Engine, logger logger.Logger) *ChatUsecase {
	return &ChatUsecase{repo: repo, users: users, engine: engine, logger: logger}
}

func validateTitle(title string) error {
	if title == "" {
		return errors.ErrMissingTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return errors.ErrTitleTooLong
	}
	return nil
}

func (uc *ChatUsecase) CreateGroup(ctx context.Context, creatorID uuid.UUID, cmd chat.CreateGroupCommand) (*chat.ChatDTO, error) {
	cmd.Title = strings.TrimSpace(cmd.Title)
	if err := validateTitle(cmd.Title); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(cmd.Description) > maxDescriptionLen {
		return nil, errors.ErrDescriptionTooLong
	}

	if _, err := uc.users.GetUserByID(ctx, creatorID); err != nil {
		if pkgErrors.Is(err, userrepo.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("database error fetching creator", "err", err)
		return nil, errors.Internal("internal server error")
	}

	c := &model.Chat{
		Title:       cmd.Title,
		Description: cmd.Description,
		Public:      cmd.Public,
	}
	// The only insert path allowed to set admin=true
	members := []model.ChatMember{{UserID: creatorID, IsAdmin: true}}

	if err := uc.repo.CreateChatWithMembers(ctx, c, members); err != nil {
		uc.logger.Errorf("error while creating chat: %v", err)
		return nil, errors.Internal("failed to create chat")
	}
	return uc.toDTO(ctx, c)
}

func (uc *ChatUsecase) CreateDM(ctx context.Context, requesterID uuid.UUID, cmd chat.CreateDMCommand) (*chat.ChatDTO, error) {
	requester, err := uc.getUser(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	recipient, err := uc.getUser(ctx, cmd.RecipientID)
	if err != nil {
		return nil, err
	}

	if err := uc.engine.CheckUniqueDM(ctx, requester, recipient); err != nil {
		return nil, err
	}

	c := &model.Chat{DM: true}
	members := []model.ChatMember{
		{UserID: requester.ID},
		{UserID: recipient.ID},
	}
	if err := uc.repo.CreateChatWithMembers(ctx, c, members); err != nil {
		uc.logger.Errorf("error while creating dm: %v", err)
		return nil, errors.Internal("failed to create dm")
	}
	return uc.toDTO(ctx, c)
}

func (uc *ChatUsecase) UpdateMetadata(ctx context.Context, chatID, actingUserID uuid.UUID, cmd chat.UpdateChatCommand) (*chat.ChatDTO, error) {
	c, err := uc.getChat(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if err := uc.engine.RequireAdmin(ctx, chatID, actingUserID); err != nil {
		return nil, err
	}

	// Partial update: only fields present in the command change. Present but
	// invalid fields are rejected, never silently ignored.
	var columns []string
	if cmd.Title != nil {
		title := strings.TrimSpace(*cmd.Title)
		if err := validateTitle(title); err != nil {
			return nil, err
		}
		c.Title = title
		columns = append(columns, "title")
	}
	if cmd.Description != nil {
		if utf8.RuneCountInString(*cmd.Description) > maxDescriptionLen {
			return nil, errors.ErrDescriptionTooLong
		}
		c.Description = *cmd.Description
		columns = append(columns, "description")
	}
	if cmd.Public != nil {
		c.Public = *cmd.Public
		columns = append(columns, "public")
	}
	if cmd.PictureURL != nil {
		c.PictureURL = *cmd.PictureURL
		columns = append(columns, "picture_url")
	}

	if len(columns) > 0 {
		if err := uc.repo.UpdateChat(ctx, c, columns...); err != nil {
			if pkgErrors.Is(err, chatrepo.ErrChatNotFound) {
				return nil, errors.ErrChatNotFound
			}
			uc.logger.Errorf("error while updating chat: %v", err)
			return nil, errors.Internal("failed to update chat")
		}
	}
	return uc.toDTO(ctx, c)
}

func (uc *ChatUsecase) Get(ctx context.Context, chatID uuid.UUID) (*chat.ChatDTO, error) {
	c, err := uc.getChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return uc.toDTO(ctx, c)
}

func (uc *ChatUsecase) List(ctx context.Context) ([]*chat.ChatDTO, error) {
	chats, err := uc.repo.ListChats(ctx)
	if err != nil {
		uc.logger.Error("database error listing chats", "err", err)
		return nil, errors.Internal("internal server error")
	}

	dtos := make([]*chat.ChatDTO, 0, len(chats))
	for i := range chats {
		dtos = append(dtos, baseDTO(&chats[i]))
	}
	return dtos, nil
}

func (uc *ChatUsecase) ListMembers(ctx context.Context, chatID uuid.UUID) ([]chat.MemberDTO, error) {
	if _, err := uc.getChat(ctx, chatID); err != nil {
		return nil, err
	}

	members, err := uc.repo.ListMembers(ctx, chatID)
	if err != nil {
		uc.logger.Error("database error listing members", "chat_id", chatID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toMemberDTOs(members), nil
}

func (uc *ChatUsecase) getChat(ctx context.Context, chatID uuid.UUID) (*model.Chat, error) {
	c, err := uc.repo.GetChatByID(ctx, chatID)
	if err != nil {
		if pkgErrors.Is(err, chatrepo.ErrChatNotFound) {
			return nil, errors.ErrChatNotFound
		}
		uc.logger.Error("database error fetching chat", "chat_id", chatID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return c, nil
}

func (uc *ChatUsecase) getUser(ctx context.Context, userID uuid.UUID) (*usermodel.User, error) {
	u, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		if pkgErrors.Is(err, userrepo.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("database error fetching user", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return u, nil
}

func (uc *ChatUsecase) toDTO(ctx context.Context, c *model.Chat) (*chat.ChatDTO, error) {
	dto := baseDTO(c)

	members, err := uc.repo.ListMembers(ctx, c.ID)
	if err != nil {
		uc.logger.Error("database error listing members", "chat_id", c.ID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	dto.Members = toMemberDTOs(members)
	return dto, nil
}

func baseDTO(c *model.Chat) *chat.ChatDTO {
	return &chat.ChatDTO{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		PictureURL:  c.PictureURL,
		Public:      c.Public,
		DM:          c.DM,
		Created:     c.Created,
	}
}

func toMemberDTOs(members []model.ChatMember) []chat.MemberDTO {
	dtos := make([]chat.MemberDTO, 0, len(members))
	for _, m := range members {
		dto := chat.MemberDTO{
			UserID:   m.UserID,
			IsAdmin:  m.IsAdmin,
			JoinedAt: m.JoinedAt,
		}
		if m.User != nil {
			dto.Username = m.User.Username
		}
		dtos = append(dtos, dto)
	}
	return dtos
}
