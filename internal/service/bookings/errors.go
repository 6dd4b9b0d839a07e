package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// или принадлежит другому пользователю
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
