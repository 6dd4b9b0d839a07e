package wizard_step

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	draftStore "github.com/m04kA/LimpMe-BookingService/internal/infra/storage/draft"
	"github.com/m04kA/LimpMe-BookingService/internal/wizard"
	"github.com/m04kA/LimpMe-BookingService/pkg/clock"
)

// 2026-10-15, Thursday
var now = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

const user = "user-1"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (*domain.Draft, error) {
	return nil, assert.AnError
}

func (failingStore) Save(context.Context, string, *domain.Draft) error {
	return assert.AnError
}

func newUseCase() (*UseCase, *draftStore.MemoryStore) {
	store := draftStore.NewMemoryStore(time.Hour)
	return NewUseCase(store, clock.Fixed{T: now}, nopLogger{}), store
}

func str(s string) *string { return &s }

func TestUseCase_View_EmptyDraft(t *testing.T) {
	uc, _ := newUseCase()

	view, err := uc.View(context.Background(), user, domain.StepLocation)
	require.NoError(t, err)

	assert.Equal(t, 1, view.Step)
	assert.Equal(t, 3, view.TotalSteps)
	assert.Equal(t, domain.Cities(), view.Cities)
	assert.Empty(t, view.Neighborhoods)
	assert.False(t, view.CanContinue)
	assert.Empty(t, view.Redirect)
}

func TestUseCase_View_RedirectsToFirstIncompleteStep(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	view, err := uc.View(ctx, user, domain.StepTechnician)
	require.NoError(t, err)
	assert.Equal(t, domain.PathSelectLocation, view.Redirect)

	_, err = uc.SelectLocation(ctx, user, &LocationRequest{City: str("Florianópolis"), Neighborhood: str("Centro")})
	require.NoError(t, err)

	view, err = uc.View(ctx, user, domain.StepTechnician)
	require.NoError(t, err)
	assert.Equal(t, domain.PathSelectDateTime, view.Redirect)

	view, err = uc.View(ctx, user, domain.StepDateTime)
	require.NoError(t, err)
	assert.Empty(t, view.Redirect)
	assert.Equal(t, "2026-10-16", view.MinDate)
	assert.Equal(t, "Sunday", view.ExcludedWeekday)
	assert.Len(t, view.TimeSlots, 9)
}

func TestUseCase_SelectLocation(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()

	view, err := uc.SelectLocation(ctx, user, &LocationRequest{City: str("São José")})
	require.NoError(t, err)
	assert.Equal(t, domain.NeighborhoodsOf("São José"), view.Neighborhoods)
	assert.False(t, view.CanContinue)

	view, err = uc.SelectLocation(ctx, user, &LocationRequest{Neighborhood: str("Kobrasol")})
	require.NoError(t, err)
	assert.True(t, view.CanContinue)

	// changing the city drops the neighborhood
	view, err = uc.SelectLocation(ctx, user, &LocationRequest{City: str("Palhoça")})
	require.NoError(t, err)
	assert.Empty(t, view.Draft.Neighborhood)

	_, err = uc.SelectLocation(ctx, user, &LocationRequest{Neighborhood: str("Kobrasol")})
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.ErrorIs(t, err, wizard.ErrUnknownNeighborhood)

	saved, err := store.Get(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "Palhoça", saved.City)
	assert.Equal(t, now, saved.UpdatedAt)
}

func TestUseCase_ContinueLocation_Incomplete(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.SelectLocation(ctx, user, &LocationRequest{City: str("Biguaçu")})
	require.NoError(t, err)

	_, err = uc.ContinueLocation(ctx, user)
	assert.ErrorIs(t, err, ErrStepIncomplete)
}

func TestUseCase_FullTraversalAndBack(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()

	_, err := uc.SelectLocation(ctx, user, &LocationRequest{City: str("Florianópolis"), Neighborhood: str("Centro")})
	require.NoError(t, err)

	view, err := uc.ContinueLocation(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Step)

	_, err = uc.SelectDateTime(ctx, user, &DateTimeRequest{Date: str("2026-10-18")})
	assert.ErrorIs(t, err, wizard.ErrInvalidDate, "sunday")

	_, err = uc.SelectDateTime(ctx, user, &DateTimeRequest{Date: str("18/10/2026")})
	assert.ErrorIs(t, err, ErrInvalidSelection)

	_, err = uc.ContinueDateTime(ctx, user)
	assert.ErrorIs(t, err, ErrStepIncomplete)

	view, err = uc.SelectDateTime(ctx, user, &DateTimeRequest{Date: str("2026-10-19"), Time: str("09:00")})
	require.NoError(t, err)
	assert.True(t, view.CanContinue)

	view, err = uc.ContinueDateTime(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Step)
	assert.Len(t, view.Technicians, 3)
	assert.True(t, view.CanContinue)

	view, err = uc.Back(ctx, user, domain.StepTechnician)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Step)
	assert.Equal(t, "2026-10-19", view.Draft.Date)
	assert.Equal(t, "09:00", view.Draft.Time)

	view, err = uc.Back(ctx, user, domain.StepDateTime)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Step)
	assert.Equal(t, "Centro", view.Draft.Neighborhood)

	_, err = uc.Back(ctx, user, domain.StepLocation)
	assert.ErrorIs(t, err, ErrAlreadyFirstStep)

	saved, err := store.Get(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, domain.StepLocation, saved.Step)
}

func TestUseCase_StoreFailure(t *testing.T) {
	uc := NewUseCase(failingStore{}, clock.Fixed{T: now}, nopLogger{})

	_, err := uc.View(context.Background(), user, domain.StepLocation)
	assert.ErrorIs(t, err, ErrInternal)
}
