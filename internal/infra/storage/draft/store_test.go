package draft

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/infra/storage/storagetest"
)

type store interface {
	Get(ctx context.Context, userID string) (*domain.Draft, error)
	Save(ctx context.Context, userID string, d *domain.Draft) error
	Delete(ctx context.Context, userID string) error
}

func sampleDraft() *domain.Draft {
	return &domain.Draft{
		City:         "São José",
		Neighborhood: "Kobrasol",
		Date:         time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		Time:         "14:00",
		Step:         domain.StepDateTime,
		RescheduleOf: "b-1",
	}
}

func testStore(t *testing.T, s store) {
	ctx := context.Background()

	_, err := s.Get(ctx, "u-1")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	require.NoError(t, s.Save(ctx, "u-1", sampleDraft()))

	got, err := s.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, sampleDraft(), got)

	_, err = s.Get(ctx, "u-2")
	assert.ErrorIs(t, err, ErrDraftNotFound, "drafts are per user")

	require.NoError(t, s.Delete(ctx, "u-1"))
	_, err = s.Get(ctx, "u-1")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	assert.NoError(t, s.Delete(ctx, "u-1"), "deleting a missing draft is not an error")
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore(time.Hour))
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	d := sampleDraft()
	require.NoError(t, s.Save(ctx, "u-1", d))
	d.City = "Palhoça"

	got, err := s.Get(ctx, "u-1")
	require.NoError(t, err)
	got.Time = "08:00"

	again, err := s.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "São José", again.City)
	assert.Equal(t, "14:00", again.Time)
}

func TestMemoryStore_Expires(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	current := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	require.NoError(t, s.Save(context.Background(), "u-1", sampleDraft()))

	current = current.Add(2 * time.Minute)
	_, err := s.Get(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRedisStore(t *testing.T) {
	client := storagetest.OpenRedis(t)
	testStore(t, NewRedisStore(client, time.Hour))

	require.NoError(t, NewRedisStore(client, time.Hour).Save(context.Background(), "u-9", sampleDraft()))
	ttl, err := client.TTL(context.Background(), keyPrefix+"u-9").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)
}
