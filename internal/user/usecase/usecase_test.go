package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gustydev/messenger-api/config"
	chatmocks "github.com/gustydev/messenger-api/internal/chat/mocks"
	"github.com/gustydev/messenger-api/internal/consistency"
	msgmocks "github.com/gustydev/messenger-api/internal/message/mocks"
	"github.com/gustydev/messenger-api/internal/user"
	"github.com/gustydev/messenger-api/internal/user/mocks"
	models "github.com/gustydev/messenger-api/internal/user/model"
	"github.com/gustydev/messenger-api/internal/user/repository"
	appErrors "github.com/gustydev/messenger-api/pkg/errors"
	"github.com/gustydev/messenger-api/pkg/logger"
	"github.com/gustydev/messenger-api/pkg/utils"
)

var testConfig = config.Config{
	JWT: config.JWT{Secret: "test-secret", ExpiredIn: 60},
}

type fakeBlobStore struct {
	url string
	err error

	calls          int
	gotContentType string
}

func (f *fakeBlobStore) Store(_ context.Context, _ []byte, contentType string) (string, error) {
	f.calls++
	f.gotContentType = contentType
	return f.url, f.err
}

func newTestUsecase(t *testing.T) (*UserUsecase, *mocks.MockUserRepository, *chatmocks.MockChatRepository, *msgmocks.MockMessageRepository) {
	return newTestUsecaseWithBlobs(t, &fakeBlobStore{})
}

func newTestUsecaseWithBlobs(t *testing.T, blobs *fakeBlobStore) (*UserUsecase, *mocks.MockUserRepository, *chatmocks.MockChatRepository, *msgmocks.MockMessageRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	chats := chatmocks.NewMockChatRepository(ctrl)
	messages := msgmocks.NewMockMessageRepository(ctrl)
	engine := consistency.NewEngine(chats, messages, logger.Logger{})
	uc := NewUserUsecase(repo, engine, nil, blobs, logger.Logger{}, testConfig)
	return uc, repo, chats, messages
}

func TestUserUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path - register with explicit display name", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().UsernameExists(ctx, "alice_01").Return(false, nil)
		repo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) error {
				assert.Equal(t, "alice_01", u.Username)
				assert.Equal(t, "Alice", u.DisplayName)
				assert.Equal(t, models.StatusOffline, u.Status)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("password123")))
				u.ID = uuid.New()
				return nil
			})

		dto, err := uc.Register(ctx, user.RegisterCommand{
			Username:        "alice_01",
			Password:        "password123",
			ConfirmPassword: "password123",
			DisplayName:     "Alice",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice_01", dto.Username)
		assert.Equal(t, "Alice", dto.DisplayName)
	})

	t.Run("happy path - display name defaults to username", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().UsernameExists(ctx, "bob_2024").Return(false, nil)
		repo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) error {
				assert.Equal(t, "bob_2024", u.DisplayName)
				return nil
			})

		_, err := uc.Register(ctx, user.RegisterCommand{
			Username: "bob_2024",
			Password: "password123",
		})
		require.NoError(t, err)
	})

	t.Run("sad path - username already taken", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().UsernameExists(ctx, "alice").Return(true, nil)

		_, err := uc.Register(ctx, user.RegisterCommand{Username: "alice", Password: "password123"})
		assert.Equal(t, appErrors.ErrUsernameTaken, err)
	})

	t.Run("sad path - username with forbidden characters", func(t *testing.T) {
		uc, _, _, _ := newTestUsecase(t)

		_, err := uc.Register(ctx, user.RegisterCommand{Username: "al ice!", Password: "password123"})
		assert.Equal(t, appErrors.ErrInvalidUsername, err)
	})

	t.Run("sad path - username too short", func(t *testing.T) {
		uc, _, _, _ := newTestUsecase(t)

		_, err := uc.Register(ctx, user.RegisterCommand{Username: "al", Password: "password123"})
		assert.Equal(t, appErrors.ErrInvalidUsername, err)
	})

	t.Run("sad path - password under eight characters", func(t *testing.T) {
		uc, _, _, _ := newTestUsecase(t)

		_, err := uc.Register(ctx, user.RegisterCommand{Username: "alice", Password: "short"})
		assert.Equal(t, appErrors.ErrInvalidPassword, err)
	})

	t.Run("sad path - password confirmation mismatch", func(t *testing.T) {
		uc, _, _, _ := newTestUsecase(t)

		_, err := uc.Register(ctx, user.RegisterCommand{
			Username:        "alice",
			Password:        "password123",
			ConfirmPassword: "password124",
		})
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.AsAppError(err).Code)
	})

	t.Run("sad path - losing the insert race is a conflict, not a server fault", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().UsernameExists(ctx, "Alice").Return(false, nil)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(repository.ErrDuplicateUsername)

		_, err := uc.Register(ctx, user.RegisterCommand{Username: "Alice", Password: "password123"})
		assert.Equal(t, appErrors.ErrUsernameTaken, err)
	})

	t.Run("sad path - insert failure reported as registration failure", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().UsernameExists(ctx, "alice").Return(false, nil)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := uc.Register(ctx, user.RegisterCommand{Username: "alice", Password: "password123"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "registration failed")
	})
}

func TestUserUsecase_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{ID: uuid.New(), Username: "alice", Password: string(hash)}

	t.Run("happy path - returns signed token for the user", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().GetUserByUsername(ctx, "alice").Return(stored, nil)

		resp, err := uc.Login(ctx, user.LoginCommand{Username: "alice", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, testConfig.JWT.ExpiredIn*60, resp.ExpiresIn)

		subject, err := utils.ParseJWTToken(resp.AccessToken, testConfig)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, subject)
	})

	t.Run("sad path - unknown username", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().GetUserByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := uc.Login(ctx, user.LoginCommand{Username: "ghost", Password: "password123"})
		assert.Equal(t, appErrors.ErrInvalidCredentials, err)
	})

	t.Run("sad path - wrong password gets the same error as unknown user", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().GetUserByUsername(ctx, "alice").Return(stored, nil)

		_, err := uc.Login(ctx, user.LoginCommand{Username: "alice", Password: "wrongpassword"})
		assert.Equal(t, appErrors.ErrInvalidCredentials, err)
	})
}

func TestUserUsecase_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("happy path - only provided fields change", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID, Username: "alice", DisplayName: "Alice"}, nil)
		repo.EXPECT().UpdateUser(ctx, gomock.Any(), "bio").Return(nil)

		bio := "hello there"
		dto, err := uc.UpdateProfile(ctx, userID, userID, user.UpdateProfileCommand{Bio: &bio})
		require.NoError(t, err)
		assert.Equal(t, "hello there", dto.Bio)
		assert.Equal(t, "Alice", dto.DisplayName)
	})

	t.Run("happy path - nothing provided means no write", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID, Username: "alice"}, nil)

		_, err := uc.UpdateProfile(ctx, userID, userID, user.UpdateProfileCommand{})
		require.NoError(t, err)
	})

	t.Run("happy path - avatar upload stores the image and records its url", func(t *testing.T) {
		blobs := &fakeBlobStore{url: "https://bucket.s3.amazonaws.com/avatar"}
		uc, repo, _, _ := newTestUsecaseWithBlobs(t, blobs)

		repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID, Username: "alice"}, nil)
		repo.EXPECT().UpdateUser(ctx, gomock.Any(), "profile_pic_url").Return(nil)

		dto, err := uc.UpdateProfile(ctx, userID, userID, user.UpdateProfileCommand{
			Avatar: &user.AvatarUpload{Data: []byte{1, 2, 3}, ContentType: "image/jpeg"},
		})
		require.NoError(t, err)
		assert.Equal(t, blobs.url, dto.ProfilePicURL)
		assert.Equal(t, "image/jpeg", blobs.gotContentType)
	})

	t.Run("sad path - non-image avatar is rejected before storage", func(t *testing.T) {
		blobs := &fakeBlobStore{}
		uc, repo, _, _ := newTestUsecaseWithBlobs(t, blobs)

		repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)

		_, err := uc.UpdateProfile(ctx, userID, userID, user.UpdateProfileCommand{
			Avatar: &user.AvatarUpload{Data: []byte{1, 2, 3}, ContentType: "application/pdf"},
		})
		assert.Equal(t, appErrors.ErrNotAnImage, err)
		assert.Zero(t, blobs.calls)
	})

	t.Run("sad path - only the account owner may update", func(t *testing.T) {
		uc, _, _, _ := newTestUsecase(t)

		_, err := uc.UpdateProfile(ctx, userID, uuid.New(), user.UpdateProfileCommand{})
		assert.Equal(t, appErrors.ErrNotAccountOwner, err)
	})

	t.Run("sad path - demo accounts are read-only", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID, Demo: true}, nil)

		name := "New Name"
		_, err := uc.UpdateProfile(ctx, userID, userID, user.UpdateProfileCommand{DisplayName: &name})
		assert.Equal(t, appErrors.ErrDemoRestricted, err)
	})

	t.Run("sad path - bio over limit", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)

		long := make([]byte, 201)
		for i := range long {
			long[i] = 'a'
		}
		bio := string(long)
		_, err := uc.UpdateProfile(ctx, userID, userID, user.UpdateProfileCommand{Bio: &bio})
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.AsAppError(err).Code)
	})

	t.Run("happy path - bio limit counts characters, not bytes", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		repo.EXPECT().UpdateUser(ctx, gomock.Any(), "bio").Return(nil)

		bio := strings.Repeat("é", 200)
		dto, err := uc.UpdateProfile(ctx, userID, userID, user.UpdateProfileCommand{Bio: &bio})
		require.NoError(t, err)
		assert.Equal(t, bio, dto.Bio)
	})
}

func TestUserUsecase_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	dmIDs := []uuid.UUID{uuid.New()}

	t.Run("happy path - cascade runs before the user row goes", func(t *testing.T) {
		uc, repo, chats, messages := newTestUsecase(t)

		repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		gomock.InOrder(
			messages.EXPECT().DeleteByAuthor(ctx, userID).Return(nil),
			chats.EXPECT().ListDMChatIDs(ctx, userID).Return(dmIDs, nil),
			messages.EXPECT().DeleteByChats(ctx, dmIDs).Return(nil),
			chats.EXPECT().DeleteChats(ctx, dmIDs).Return(nil),
			chats.EXPECT().RemoveMemberEverywhere(ctx, userID).Return(nil),
			repo.EXPECT().DeleteUser(ctx, userID).Return(nil),
		)

		require.NoError(t, uc.Delete(ctx, userID, userID))
	})

	t.Run("sad path - cascade failure keeps the user row", func(t *testing.T) {
		uc, repo, _, messages := newTestUsecase(t)

		repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		messages.EXPECT().DeleteByAuthor(ctx, userID).Return(errors.New("db down"))

		err := uc.Delete(ctx, userID, userID)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInternal, appErrors.AsAppError(err).Code)
	})

	t.Run("sad path - row delete failure after cascade reports incomplete", func(t *testing.T) {
		uc, repo, chats, messages := newTestUsecase(t)

		repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)
		messages.EXPECT().DeleteByAuthor(ctx, userID).Return(nil)
		chats.EXPECT().ListDMChatIDs(ctx, userID).Return(nil, nil)
		messages.EXPECT().DeleteByChats(ctx, gomock.Any()).Return(nil).AnyTimes()
		chats.EXPECT().DeleteChats(ctx, gomock.Any()).Return(nil).AnyTimes()
		chats.EXPECT().RemoveMemberEverywhere(ctx, userID).Return(nil)
		repo.EXPECT().DeleteUser(ctx, userID).Return(errors.New("db down"))

		err := uc.Delete(ctx, userID, userID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "user deletion incomplete")
	})

	t.Run("sad path - only the account owner may delete", func(t *testing.T) {
		uc, _, _, _ := newTestUsecase(t)

		err := uc.Delete(ctx, userID, uuid.New())
		assert.Equal(t, appErrors.ErrNotAccountOwner, err)
	})

	t.Run("sad path - demo accounts cannot be deleted", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID, Demo: true}, nil)

		err := uc.Delete(ctx, userID, userID)
		assert.Equal(t, appErrors.ErrDemoRestricted, err)
	})
}
