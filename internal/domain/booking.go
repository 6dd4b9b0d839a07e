package domain

import (
	"errors"
	"time"
)

// ErrInvalidStatus returned when a status string is not a known booking status
var ErrInvalidStatus = errors.New("domain: invalid booking status")

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusScheduled BookingStatus = "scheduled"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is a confirmed booking row.
// ID and CreatedAt are assigned by the store on insert.
type Booking struct {
	ID             string
	UserID         string
	TechnicianName string
	City           string
	Neighborhood   string
	BookingDate    time.Time // calendar date, stored as DATE
	BookingTime    string    // one of TimeSlots, "HH:MM"
	Status         BookingStatus
	CreatedAt      time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still move to cancelled.
// The transition is one-way: there is no un-cancel.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusScheduled
}

// IsOwnedBy returns true if userID owns the booking
func (b *Booking) IsOwnedBy(userID string) bool {
	return b.UserID == userID
}

// IsUpcoming returns true if the booking is scheduled and its date is strictly
// after today. Everything else belongs to the history, including scheduled
// bookings whose date has already passed.
func (b *Booking) IsUpcoming(now time.Time) bool {
	return b.Status == StatusScheduled && DateOnly(b.BookingDate).After(DateOnly(now))
}

// ParseBookingStatus validates a status string
func ParseBookingStatus(status string) (BookingStatus, error) {
	switch s := BookingStatus(status); s {
	case StatusScheduled, StatusCancelled:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}
