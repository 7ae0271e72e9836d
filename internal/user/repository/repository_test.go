package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	models "github.com/gustydev/messenger-api/internal/user/model"
	"github.com/gustydev/messenger-api/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("messenger"),
		postgres.WithUsername("messenger"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	if _, err := testDB.NewCreateTable().Model((*models.User)(nil)).IfNotExists().Exec(ctx); err != nil {
		testDB.Close()
		log.Fatalf("failed to create users table: %v", err)
	}
	if _, err := testDB.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_username_lower_idx ON users (lower(username))`); err != nil {
		testDB.Close()
		log.Fatalf("failed to create username index: %v", err)
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func cleanup(t *testing.T) {
	t.Helper()
	_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE users CASCADE`)
	require.NoError(t, err)
}

func Test_CreateUser(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })

	repo := NewUserRepository(testDB, logger.Logger{})
	u := models.User{Username: "alice", Password: "hash", DisplayName: "Alice"}

	require.NoError(t, repo.CreateUser(t.Context(), &u))
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, models.StatusOffline, u.Status)
	assert.False(t, u.Joined.IsZero())
}

func Test_CreateUser_DuplicateUsername(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })

	repo := NewUserRepository(testDB, logger.Logger{})
	u := models.User{Username: "alice", Password: "hash", DisplayName: "Alice"}
	require.NoError(t, repo.CreateUser(t.Context(), &u))

	dup := models.User{Username: "alice", Password: "hash", DisplayName: "Alice"}
	assert.ErrorIs(t, repo.CreateUser(t.Context(), &dup), ErrDuplicateUsername)

	caseVariant := models.User{Username: "ALICE", Password: "hash", DisplayName: "Alice"}
	assert.ErrorIs(t, repo.CreateUser(t.Context(), &caseVariant), ErrDuplicateUsername)
}

func Test_CreateUser_ConcurrentCaseVariants(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })

	repo := NewUserRepository(testDB, logger.Logger{})
	variants := []string{"alice", "Alice", "ALICE", "aLiCe"}

	var wg sync.WaitGroup
	errs := make([]error, len(variants))
	for i, name := range variants {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			u := models.User{Username: name, Password: "hash", DisplayName: "Alice"}
			errs[i] = repo.CreateUser(context.Background(), &u)
		}(i, name)
	}
	wg.Wait()

	var created int
	for _, err := range errs {
		if err == nil {
			created++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateUsername)
		}
	}
	assert.Equal(t, 1, created)

	count, err := testDB.NewSelect().Model((*models.User)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_GetUserByUsername_CaseInsensitive(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })

	repo := NewUserRepository(testDB, logger.Logger{})
	u := models.User{Username: "Alice_01", Password: "hash", DisplayName: "Alice"}
	require.NoError(t, repo.CreateUser(t.Context(), &u))

	fetched, err := repo.GetUserByUsername(t.Context(), "alice_01")
	require.NoError(t, err)
	assert.Equal(t, u.ID, fetched.ID)

	fetched, err = repo.GetUserByUsername(t.Context(), "ALICE_01")
	require.NoError(t, err)
	assert.Equal(t, u.ID, fetched.ID)

	_, err = repo.GetUserByUsername(t.Context(), "bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func Test_UsernameExists_CaseInsensitive(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })

	repo := NewUserRepository(testDB, logger.Logger{})
	u := models.User{Username: "alice", Password: "hash", DisplayName: "Alice"}
	require.NoError(t, repo.CreateUser(t.Context(), &u))

	exists, err := repo.UsernameExists(t.Context(), "ALICE")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UsernameExists(t.Context(), "bob")
	require.NoError(t, err)
	assert.False(t, exists)
}

func Test_UpdateUser_PartialColumns(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })

	repo := NewUserRepository(testDB, logger.Logger{})
	u := models.User{Username: "alice", Password: "hash", DisplayName: "Alice", Bio: "old"}
	require.NoError(t, repo.CreateUser(t.Context(), &u))

	u.Bio = "new bio"
	u.DisplayName = "should not change"
	require.NoError(t, repo.UpdateUser(t.Context(), &u, "bio"))

	fetched, err := repo.GetUserByID(t.Context(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new bio", fetched.Bio)
	assert.Equal(t, "Alice", fetched.DisplayName)
}

func Test_UpdateStatus(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })

	repo := NewUserRepository(testDB, logger.Logger{})
	u := models.User{Username: "alice", Password: "hash", DisplayName: "Alice"}
	require.NoError(t, repo.CreateUser(t.Context(), &u))

	require.NoError(t, repo.UpdateStatus(t.Context(), u.ID, models.StatusOnline, nil))
	fetched, err := repo.GetUserByID(t.Context(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, fetched.Status)
	assert.Nil(t, fetched.LastSeen)

	now := time.Now().UTC()
	require.NoError(t, repo.UpdateStatus(t.Context(), u.ID, models.StatusOffline, &now))
	fetched, err = repo.GetUserByID(t.Context(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffline, fetched.Status)
	require.NotNil(t, fetched.LastSeen)
}

func Test_DeleteUser(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })

	repo := NewUserRepository(testDB, logger.Logger{})
	u := models.User{Username: "alice", Password: "hash", DisplayName: "Alice"}
	require.NoError(t, repo.CreateUser(t.Context(), &u))

	require.NoError(t, repo.DeleteUser(t.Context(), u.ID))
	_, err := repo.GetUserByID(t.Context(), u.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, repo.DeleteUser(t.Context(), u.ID), ErrUserNotFound)
}
