package adapters

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/auth/usecase"
	"blog_backend/internal/platform/db"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.OpenSQLite(":memory:")
	require.NoError(t, err, "failed to initialize test database")

	err = gdb.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return gdb
}

func TestNewUserGorm(t *testing.T) {
	gdb := setupTestDB(t)

	repo := NewUserGorm(gdb)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		user := &entity.User{
			Name:     "Test",
			Email:    "test@example.com",
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotEqual(t, uuid.Nil, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		user1 := &entity.User{Name: "a", Email: "duplicate@example.com", Password: "password1"}
		require.NoError(t, repo.Create(context.Background(), user1), "failed to create first user")

		// Create second user with the same email
		user2 := &entity.User{Name: "b", Email: "duplicate@example.com", Password: "password2"}
		err := repo.Create(context.Background(), user2)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})

	t.Run("nil user error", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		err := repo.Create(context.Background(), nil)

		assert.Error(t, err, "should return error for nil user")
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		expected := &entity.User{Name: "Find", Email: "find@example.com", Password: "hashed_password"}
		require.NoError(t, repo.Create(context.Background(), expected), "failed to create test data")

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		require.NoError(t, err, "failed to find user")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Name, found.Name, "name does not match")
		assert.Equal(t, expected.Password, found.Password, "password does not match")
	})

	t.Run("email not found error", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserGorm_FindByID(t *testing.T) {
	t.Run("find user by ID successfully", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		expected := &entity.User{Name: "ID", Email: "id@example.com", Password: "hashed_password"}
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByID(context.Background(), expected.ID)

		require.NoError(t, err)
		assert.Equal(t, expected.Email, found.Email)
	})

	t.Run("ID not found error", func(t *testing.T) {
		repo := NewUserGorm(setupTestDB(t))

		found, err := repo.FindByID(context.Background(), uuid.New())

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
