package bookings

import (
	"time"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

// Partition делит бронирования на предстоящие и историю, сохраняя порядок.
// Предстоящие: scheduled с датой строго после сегодняшней. Все остальное,
// включая scheduled с прошедшей или сегодняшней датой, уходит в историю.
func Partition(bookings []*domain.Booking, now time.Time) (upcoming, historical []*domain.Booking) {
	upcoming = make([]*domain.Booking, 0, len(bookings))
	historical = make([]*domain.Booking, 0, len(bookings))

	for _, b := range bookings {
		if b.IsUpcoming(now) {
			upcoming = append(upcoming, b)
		} else {
			historical = append(historical, b)
		}
	}
	return upcoming, historical
}
