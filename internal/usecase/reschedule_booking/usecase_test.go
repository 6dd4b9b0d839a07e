package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/LimpMe-BookingService/internal/infra/storage/booking"
	draftStore "github.com/m04kA/LimpMe-BookingService/internal/infra/storage/draft"
	"github.com/m04kA/LimpMe-BookingService/pkg/clock"
)

// 2026-10-15, Thursday
var now = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

type fakeRepo map[string]*domain.Booking

func (r fakeRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(repo fakeRepo) (*UseCase, *draftStore.MemoryStore) {
	drafts := draftStore.NewMemoryStore(time.Hour)
	return NewUseCase(repo, drafts, clock.Fixed{T: now}, nopLogger{}), drafts
}

func upcoming() *domain.Booking {
	return &domain.Booking{
		ID:             "b-1",
		UserID:         "ana",
		TechnicianName: "João Santos",
		City:           "São José",
		Neighborhood:   "Kobrasol",
		BookingDate:    time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		BookingTime:    "14:00",
		Status:         domain.StatusScheduled,
	}
}

func TestExecute_SeedsDraft(t *testing.T) {
	original := upcoming()
	repo := fakeRepo{"b-1": original}
	uc, drafts := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), "ana", "b-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PathSelectLocation, resp.Redirect)

	saved, err := drafts.Get(context.Background(), "ana")
	require.NoError(t, err)
	assert.Equal(t, "São José", saved.City)
	assert.Equal(t, "Kobrasol", saved.Neighborhood)
	assert.Equal(t, original.BookingDate, saved.Date)
	assert.Equal(t, "14:00", saved.Time)
	assert.Equal(t, "João Santos", saved.TechnicianName)
	assert.Equal(t, "b-1", saved.RescheduleOf)
	assert.Equal(t, domain.StepLocation, saved.Step)

	assert.Equal(t, domain.StatusScheduled, repo["b-1"].Status, "original is untouched")
}

func TestExecute_Rejects(t *testing.T) {
	cancelled := upcoming()
	cancelled.ID = "b-2"
	cancelled.Status = domain.StatusCancelled

	past := upcoming()
	past.ID = "b-3"
	past.BookingDate = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	repo := fakeRepo{"b-1": upcoming(), "b-2": cancelled, "b-3": past}
	uc, drafts := newUseCase(repo)

	_, err := uc.Execute(context.Background(), "bia", "b-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = uc.Execute(context.Background(), "ana", "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = uc.Execute(context.Background(), "ana", "b-2")
	assert.ErrorIs(t, err, ErrNotReschedulable)

	_, err = uc.Execute(context.Background(), "ana", "b-3")
	assert.ErrorIs(t, err, ErrNotReschedulable)

	_, err = drafts.Get(context.Background(), "ana")
	assert.ErrorIs(t, err, draftStore.ErrDraftNotFound)
}
