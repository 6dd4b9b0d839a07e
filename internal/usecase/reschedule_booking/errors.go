package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено или принадлежит другому пользователю
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrNotReschedulable переносить можно только предстоящие бронирования
	ErrNotReschedulable = errors.New("reschedule_booking: only upcoming bookings can be rescheduled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
