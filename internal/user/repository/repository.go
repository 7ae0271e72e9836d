package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	User "github.com/gustydev/messenger-api/internal/user/model"
	"github.com/gustydev/messenger-api/pkg/logger"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation
}

func NewUserRepository(db *bun.DB, logger logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *User.User) error {

	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return errors.Wrap(err, "userRepo.CreateUser.Insert: ")
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error) {

	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*User.User, error) {

	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("lower(username) = lower(?)", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByUsername.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*User.User)(nil)).
		Where("lower(username) = lower(?)", username).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.UsernameExists.Exists: ")
	}
	return exists, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]User.User, error) {
	var users []User.User
	err := r.db.NewSelect().Model(&users).Order("username ASC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.ListUsers.Scan: ")
	}
	return users, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *User.User, columns ...string) error {
	q := r.db.NewUpdate().
		Model(user).
		Column(columns...).
		Set("updated_at = ?", time.Now()).
		WherePK()

	res, err := q.Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateUser.Exec: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, status string, lastSeen *time.Time) error {
	q := r.db.NewUpdate().
		Model((*User.User)(nil)).
		Set("status = ?", status).
		Where("id = ?", userID)

	if lastSeen != nil {
		q = q.Set("last_seen = ?", *lastSeen)
	}

	_, err := q.Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateStatus.Exec: ")
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	res, err := r.db.NewDelete().Model((*User.User)(nil)).Where("id = ?", userID).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.DeleteUser.Exec: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}
