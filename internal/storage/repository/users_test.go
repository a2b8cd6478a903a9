package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/account-service/internal/models"
)

func TestStorage_CreateAndGetUser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	created := mustCreateUser(t, storage, "user@example.com", models.StatusNew, nil)
	require.NotZero(t, created.ID)

	byEmail, err := storage.GetUserByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, models.StatusNew, byEmail.Status)
	assert.Nil(t, byEmail.DeletionDate)
	assert.WithinDuration(t, created.RegistrationDate, byEmail.RegistrationDate, time.Second)

	byID, err := storage.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", byID.Email)
}

func TestStorage_GetUser_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	_, err := storage.GetUserByEmail(ctx, "ghost@example.com")
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	_, err = storage.GetUserByID(ctx, 9999)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestStorage_ExistsByEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	mustCreateUser(t, storage, "user@example.com", models.StatusNew, nil)

	exists, err := storage.ExistsByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = storage.ExistsByEmail(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStorage_CreateUser_DuplicateEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	mustCreateUser(t, storage, "user@example.com", models.StatusNew, nil)

	_, err := storage.CreateUser(context.Background(), models.User{
		Email:            "user@example.com",
		Name:             "other",
		PasswordHash:     "hash",
		Status:           models.StatusNew,
		RegistrationDate: time.Now().UTC(),
	})
	assert.Error(t, err)
}

func TestStorage_UpdateUser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	u := mustCreateUser(t, storage, "user@example.com", models.StatusNew, nil)

	deletionDate := time.Now().UTC().Truncate(time.Microsecond)
	u.Name = "renamed"
	u.Status = models.StatusDeleted
	u.DeletionDate = &deletionDate
	require.NoError(t, storage.UpdateUser(ctx, u))

	got, err := storage.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, models.StatusDeleted, got.Status)
	require.NotNil(t, got.DeletionDate)
	assert.WithinDuration(t, deletionDate, *got.DeletionDate, time.Second)

	// Очистка даты удаления при восстановлении
	u.Status = models.StatusActive
	u.DeletionDate = nil
	require.NoError(t, storage.UpdateUser(ctx, u))

	got, err = storage.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.Nil(t, got.DeletionDate)
}

func TestStorage_UpdateUser_Missing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	err := storage.UpdateUser(context.Background(), models.User{
		ID:           9999,
		Name:         "ghost",
		PasswordHash: "hash",
		Status:       models.StatusActive,
	})
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestStorage_ListUsersByStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	mustCreateUser(t, storage, "a@example.com", models.StatusNew, nil)
	mustCreateUser(t, storage, "b@example.com", models.StatusActive, nil)
	mustCreateUser(t, storage, "c@example.com", models.StatusActive, nil)

	active, err := storage.ListUsersByStatus(ctx, models.StatusActive)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	deleted, err := storage.ListUsersByStatus(ctx, models.StatusDeleted)
	require.NoError(t, err)
	assert.Empty(t, deleted)
}

func TestStorage_RemoveUsersDeletedBefore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	oldDeletion := time.Now().UTC().AddDate(0, 0, -40)
	freshDeletion := time.Now().UTC().AddDate(0, 0, -5)

	expired := mustCreateUser(t, storage, "expired@example.com", models.StatusDeleted, &oldDeletion)
	fresh := mustCreateUser(t, storage, "fresh@example.com", models.StatusDeleted, &freshDeletion)
	active := mustCreateUser(t, storage, "active@example.com", models.StatusActive, nil)

	cutoff := time.Now().UTC().AddDate(0, 0, -30)
	removed, err := storage.RemoveUsersDeletedBefore(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = storage.GetUserByID(ctx, expired.ID)
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	_, err = storage.GetUserByID(ctx, fresh.ID)
	assert.NoError(t, err)
	_, err = storage.GetUserByID(ctx, active.ID)
	assert.NoError(t, err)
}

func TestStorage_ContextCancelled(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.GetUserByEmail(ctx, "user@example.com")
	assert.True(t, errors.Is(err, context.Canceled))
}
