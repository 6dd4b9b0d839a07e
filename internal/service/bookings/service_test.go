package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/LimpMe-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/LimpMe-BookingService/pkg/clock"
)

// 2026-10-15, Thursday
var now = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC)
}

type fakeRepo struct {
	bookings map[string]*domain.Booking
	order    []string
	updates  int
	listErr  error
}

func newFakeRepo(list ...*domain.Booking) *fakeRepo {
	r := &fakeRepo{bookings: make(map[string]*domain.Booking)}
	for _, b := range list {
		r.bookings[b.ID] = b
		r.order = append(r.order, b.ID)
	}
	return r
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) GetByUserID(_ context.Context, userID string) ([]*domain.Booking, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Booking, 0)
	for _, id := range r.order {
		if b := r.bookings[id]; b.UserID == userID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	r.updates++
	b.Status = status
	return nil
}

type fakeTx struct{ calls int }

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeMetrics struct{ cancelled int }

func (m *fakeMetrics) BookingCancelled() { m.cancelled++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking(id, userID string, date time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:             id,
		UserID:         userID,
		TechnicianName: "Carlos Silva",
		City:           "Florianópolis",
		Neighborhood:   "Centro",
		BookingDate:    date,
		BookingTime:    "09:00",
		Status:         status,
	}
}

func newService(repo *fakeRepo) (*Service, *fakeMetrics) {
	m := &fakeMetrics{}
	return NewService(repo, &fakeTx{}, clock.Fixed{T: now}, m, nopLogger{}), m
}

func TestPartition(t *testing.T) {
	list := []*domain.Booking{
		booking("a", "u", day(25), domain.StatusScheduled),
		booking("b", "u", day(20), domain.StatusCancelled),
		booking("c", "u", day(16), domain.StatusScheduled),
		booking("d", "u", day(15), domain.StatusScheduled), // today
		booking("e", "u", day(10), domain.StatusScheduled),
		booking("f", "u", day(5), domain.StatusCancelled),
	}

	upcoming, historical := Partition(list, now)

	assert.Equal(t, []*domain.Booking{list[0], list[2]}, upcoming)
	assert.Equal(t, []*domain.Booking{list[1], list[3], list[4], list[5]}, historical)
	assert.Equal(t, len(list), len(upcoming)+len(historical))
}

func TestPartition_Empty(t *testing.T) {
	upcoming, historical := Partition(nil, now)
	assert.NotNil(t, upcoming)
	assert.NotNil(t, historical)
	assert.Empty(t, upcoming)
	assert.Empty(t, historical)
}

func TestService_List(t *testing.T) {
	repo := newFakeRepo(
		booking("a", "ana", day(25), domain.StatusScheduled),
		booking("x", "bia", day(24), domain.StatusScheduled),
		booking("b", "ana", day(10), domain.StatusScheduled),
	)
	svc, _ := newService(repo)

	resp, err := svc.List(context.Background(), "ana")
	require.NoError(t, err)

	require.Len(t, resp.Upcoming, 1)
	assert.Equal(t, "a", resp.Upcoming[0].ID)
	assert.Equal(t, "2026-10-25", resp.Upcoming[0].BookingDate)
	require.Len(t, resp.Historical, 1)
	assert.Equal(t, "b", resp.Historical[0].ID)
}

func TestService_List_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = assert.AnError
	svc, _ := newService(repo)

	_, err := svc.List(context.Background(), "ana")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Cancel(t *testing.T) {
	repo := newFakeRepo(
		booking("a", "ana", day(25), domain.StatusScheduled),
		booking("b", "ana", day(20), domain.StatusScheduled),
	)
	svc, m := newService(repo)

	resp, err := svc.Cancel(context.Background(), "ana", "a")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, repo.bookings["a"].Status)
	assert.Equal(t, 1, m.cancelled)
	require.Len(t, resp.Upcoming, 1)
	assert.Equal(t, "b", resp.Upcoming[0].ID)
	require.Len(t, resp.Historical, 1)
	assert.Equal(t, "a", resp.Historical[0].ID)
	assert.Equal(t, "cancelled", resp.Historical[0].Status)
}

func TestService_Cancel_AlreadyCancelledIsNoop(t *testing.T) {
	repo := newFakeRepo(booking("a", "ana", day(25), domain.StatusCancelled))
	svc, m := newService(repo)

	resp, err := svc.Cancel(context.Background(), "ana", "a")
	require.NoError(t, err)

	assert.Zero(t, repo.updates)
	assert.Zero(t, m.cancelled)
	assert.Len(t, resp.Historical, 1)
}

func TestService_Cancel_NotOwned(t *testing.T) {
	repo := newFakeRepo(booking("a", "bia", day(25), domain.StatusScheduled))
	svc, _ := newService(repo)

	_, err := svc.Cancel(context.Background(), "ana", "a")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Equal(t, domain.StatusScheduled, repo.bookings["a"].Status)

	_, err = svc.Cancel(context.Background(), "ana", "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
