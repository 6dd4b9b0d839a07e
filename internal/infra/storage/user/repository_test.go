package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/infra/storage/storagetest"
	"github.com/m04kA/LimpMe-BookingService/internal/infra/storage/user"
)

func TestRepository_CreateAndFind(t *testing.T) {
	db := storagetest.OpenPostgres(t)
	repo := user.NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{Email: "Ana@Example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ana@example.com", created.Email)

	byEmail, err := repo.GetByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestRepository_Create_DuplicateEmail(t *testing.T) {
	db := storagetest.OpenPostgres(t)
	repo := user.NewRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Email: "ana@example.com", PasswordHash: "a"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Email: "ANA@example.com", PasswordHash: "b"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}
