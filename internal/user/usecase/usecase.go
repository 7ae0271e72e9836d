package usecase

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/gustydev/messenger-api/config"
	"github.com/gustydev/messenger-api/internal/blob"
	"github.com/gustydev/messenger-api/internal/consistency"
	"github.com/gustydev/messenger-api/internal/presence"
	"github.com/gustydev/messenger-api/internal/user"
	models "github.com/gustydev/messenger-api/internal/user/model"
	"github.com/gustydev/messenger-api/internal/user/repository"
	"github.com/gustydev/messenger-api/pkg/errors"
	"github.com/gustydev/messenger-api/pkg/logger"
	"github.com/gustydev/messenger-api/pkg/utils"
)

const bcryptCost = 10

type UserUsecase struct {
	repo   user.UserRepository
	engine *consistency.Engine
	pub    presence.Publisher
	blobs  blob.Store
	logger logger.Logger
	config config.Config
}

func NewUserUsecase(repo user.UserRepository, engine *consistency.Engine, pub presence.Publisher, blobs blob.Store, logger logger.Logger, config config.Config) *UserUsecase {
	return &UserUsecase{repo: repo, engine: engine, pub: pub, blobs: blobs, logger: logger, config: config}
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{4,30}$`)

func validateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return errors.ErrInvalidUsername
	}
	return nil
}

func validateDisplayName(name string) error {
	if n := utf8.RuneCountInString(name); n < 2 || n > 30 {
		return errors.ErrInvalidDisplayName
	}
	return nil
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.UserDTO, error) {
	cmd.Username = strings.TrimSpace(cmd.Username)

	if err := validateUsername(cmd.Username); err != nil {
		return nil, err
	}
	if len(cmd.Password) < 8 {
		return nil, errors.ErrInvalidPassword
	}
	if cmd.ConfirmPassword != "" && cmd.ConfirmPassword != cmd.Password {
		return nil, errors.InvalidArg("passwords do not match")
	}

	displayName := strings.TrimSpace(cmd.DisplayName)
	if displayName == "" {
		displayName = cmd.Username
	}
	if err := validateDisplayName(displayName); err != nil {
		return nil, err
	}

	if exists, err := uc.repo.UsernameExists(ctx, cmd.Username); err != nil {
		uc.logger.Error("database error checking username", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcryptCost)
	if err != nil {
		uc.logger.Error("failed to hash password", "err", err)
		return nil, errors.Internal("internal server error")
	}

	u := &models.User{
		Username:    cmd.Username,
		Password:    string(hash),
		DisplayName: displayName,
		Status:      models.StatusOffline,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		// Losing the race against a concurrent registration of the same
		// name (any casing) is a conflict, not a server fault
		if pkgErrors.Is(err, repository.ErrDuplicateUsername) {
			return nil, errors.ErrUsernameTaken
		}
		uc.logger.Errorf("error while saving user in db: %v", err)
		return nil, errors.ErrRegistrationFailed(errors.Internal("database error"))
	}

	return toDTO(u), nil
}

func (uc *UserUsecase) Login(ctx context.Context, cmd user.LoginCommand) (*user.LoginResponse, error) {
	u, err := uc.repo.GetUserByUsername(ctx, cmd.Username)
	if err != nil {
		if pkgErrors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		uc.logger.Error("database error fetching user", "err", err)
		return nil, errors.Internal("internal server error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(cmd.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(u.ID, uc.config)
	if err != nil {
		uc.logger.Error("failed to sign token", "err", err)
		return nil, errors.Internal("error while creating token")
	}

	return &user.LoginResponse{
		AccessToken: token,
		ExpiresIn:   uc.config.JWT.ExpiredIn * 60,
		TokenType:   "Bearer",
		User:        toDTO(u),
	}, nil
}

func (uc *UserUsecase) Resolve(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	u, err := uc.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

func (uc *UserUsecase) GetByUsername(ctx context.Context, username string) (*user.UserDTO, error) {
	u, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if pkgErrors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("database error fetching user", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toDTO(u), nil
}

func (uc *UserUsecase) List(ctx context.Context) ([]*user.UserDTO, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.logger.Error("database error listing users", "err", err)
		return nil, errors.Internal("internal server error")
	}

	dtos := make([]*user.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, toDTO(&users[i]))
	}
	return dtos, nil
}

func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID, actingUserID uuid.UUID, cmd user.UpdateProfileCommand) (*user.UserDTO, error) {
	if userID != actingUserID {
		return nil, errors.ErrNotAccountOwner
	}

	u, err := uc.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Demo {
		return nil, errors.ErrDemoRestricted
	}

	var columns []string
	if cmd.DisplayName != nil {
		if err := validateDisplayName(*cmd.DisplayName); err != nil {
			return nil, err
		}
		u.DisplayName = *cmd.DisplayName
		columns = append(columns, "display_name")
	}
	if cmd.Bio != nil {
		if utf8.RuneCountInString(*cmd.Bio) > 200 {
			return nil, errors.InvalidArg("bio has a limit of 200 characters")
		}
		u.Bio = *cmd.Bio
		columns = append(columns, "bio")
	}
	if cmd.Avatar != nil {
		if !blob.IsImage(cmd.Avatar.ContentType) {
			return nil, errors.ErrNotAnImage
		}
		url, err := uc.blobs.Store(ctx, cmd.Avatar.Data, cmd.Avatar.ContentType)
		if err != nil {
			return nil, err
		}
		u.ProfilePicURL = url
		columns = append(columns, "profile_pic_url")
	} else if cmd.ProfilePicURL != nil {
		u.ProfilePicURL = *cmd.ProfilePicURL
		columns = append(columns, "profile_pic_url")
	}

	if len(columns) > 0 {
		if err := uc.repo.UpdateUser(ctx, u, columns...); err != nil {
			uc.logger.Errorf("error while updating profile in db: %v", err)
			return nil, errors.Internal("error while updating profile")
		}
		uc.publishProfile(ctx, u)
	}

	return toDTO(u), nil
}

func (uc *UserUsecase) Delete(ctx context.Context, userID, actingUserID uuid.UUID) error {
	if userID != actingUserID {
		return errors.ErrNotAccountOwner
	}

	u, err := uc.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if u.Demo {
		return errors.ErrDemoRestricted
	}

	// Cascade first: authored messages, DM chats, membership entries. Only
	// once cleanup succeeded does the user row itself go.
	if err := uc.engine.PurgeUser(ctx, userID); err != nil {
		return err
	}

	if err := uc.repo.DeleteUser(ctx, userID); err != nil {
		uc.logger.Error("failed to delete user row after cascade", "user_id", userID, "err", err)
		return errors.ErrUserDeleteIncomplete(err)
	}
	return nil
}

func (uc *UserUsecase) getUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if pkgErrors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("database error fetching user", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return u, nil
}

func (uc *UserUsecase) publishProfile(ctx context.Context, u *models.User) {
	if uc.pub == nil {
		return
	}
	if err := uc.pub.Publish(ctx, presence.EventProfileUpdated, toDTO(u)); err != nil {
		uc.logger.Warn("profile broadcast failed", "user_id", u.ID, "err", err)
	}
}

func toDTO(u *models.User) *user.UserDTO {
	return &user.UserDTO{
		ID:            u.ID,
		Username:      u.Username,
		DisplayName:   u.DisplayName,
		Status:        u.Status,
		LastSeen:      u.LastSeen,
		Bio:           u.Bio,
		ProfilePicURL: u.ProfilePicURL,
		Joined:        u.Joined,
	}
}
