package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-10-15 is a Thursday
var thursday = time.Date(2026, 10, 15, 10, 30, 0, 0, time.UTC)

func TestNeighborhoodsOf(t *testing.T) {
	for _, city := range Cities() {
		list := NeighborhoodsOf(city)
		require.NotEmpty(t, list, city)
		for _, n := range list {
			assert.True(t, IsNeighborhoodOf(city, n), "%s/%s", city, n)
		}
	}

	assert.Empty(t, NeighborhoodsOf(""))
	assert.Empty(t, NeighborhoodsOf("Curitiba"))
	assert.False(t, IsNeighborhoodOf("Palhoça", "Trindade"))
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	list := NeighborhoodsOf("Florianópolis")
	list[0] = "Mutated"
	assert.Equal(t, "Centro", NeighborhoodsOf("Florianópolis")[0])

	techs := Technicians()
	techs[0].Specialties[0] = "Mutated"
	assert.Equal(t, "Limpeza completa", Technicians()[0].Specialties[0])
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	assert.Len(t, slots, 9)
	assert.NotContains(t, slots, "12:00")
	assert.True(t, IsTimeSlot("09:00"))
	assert.False(t, IsTimeSlot("12:00"))
	assert.False(t, IsTimeSlot("9:00"))
}

func TestIsBookableDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"yesterday", time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), false},
		{"today", time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), false},
		{"tomorrow", time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), true},
		{"saturday", time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), true},
		{"sunday", time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), false},
		{"next monday", time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBookableDate(tt.date, thursday))
		})
	}
}

func TestFirstBookableDate_SkipsSunday(t *testing.T) {
	saturday := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), FirstBookableDate(saturday))
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), FirstBookableDate(thursday))
}

func TestDateOnly_UsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	lateEvening := time.Date(2026, 10, 15, 23, 0, 0, 0, loc) // already the 16th in UTC

	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), DateOnly(lateEvening))
}

func TestBooking_IsUpcoming(t *testing.T) {
	tomorrow := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		booking Booking
		want    bool
	}{
		{"scheduled tomorrow", Booking{Status: StatusScheduled, BookingDate: tomorrow}, true},
		{"scheduled today", Booking{Status: StatusScheduled, BookingDate: today}, false},
		{"cancelled tomorrow", Booking{Status: StatusCancelled, BookingDate: tomorrow}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.IsUpcoming(thursday))
		})
	}
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("cancelled")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, s)

	_, err = ParseBookingStatus("confirmed")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNewDraftFromBooking(t *testing.T) {
	b := &Booking{
		ID:             "b-1",
		City:           "São José",
		Neighborhood:   "Kobrasol",
		BookingDate:    time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		BookingTime:    "14:00",
		TechnicianName: "João Santos",
	}

	d := NewDraftFromBooking(b)

	assert.Equal(t, StepLocation, d.Step)
	assert.Equal(t, "b-1", d.RescheduleOf)
	assert.True(t, d.IsComplete())
	assert.True(t, d.IsReschedule())
}
