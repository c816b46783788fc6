package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/paisable/paisable/internal/models"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	user, err := repo.Save(ctx, userID, "alice@example.com", "hashed-password")
	assert.NoError(t, err)

	assert.Equal(t, userID, user.UserID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.PasswordHash)
	assert.Equal(t, models.DefaultCurrency, user.DefaultCurrency)
	assert.False(t, user.IsSetupComplete)
}

func TestUserWriteRepository_CompleteSetup(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	_, err := writeRepo.Save(ctx, userID, "bob@example.com", "hash")
	assert.NoError(t, err)

	t.Run("stores the currency and flips the flag", func(t *testing.T) {
		err := writeRepo.CompleteSetup(ctx, userID, "EUR")
		assert.NoError(t, err)

		user, err := readRepo.GetByID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, "EUR", user.DefaultCurrency)
		assert.True(t, user.IsSetupComplete)
	})

	t.Run("unknown user yields sql.ErrNoRows", func(t *testing.T) {
		err := writeRepo.CompleteSetup(ctx, uuid.New(), "EUR")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, uuid.New(), "charlie@example.com", "hash")
	assert.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "charlie@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie@example.com", user.Email)
	})

	t.Run("missing user is nil, not an error", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	_, err := writeRepo.Save(ctx, userID, "dave@example.com", "hash")
	assert.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
	})

	t.Run("missing user is nil, not an error", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
