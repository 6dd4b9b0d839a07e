package models

import (
	"time"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID             string    `json:"id"`
	TechnicianName string    `json:"technicianName"`
	City           string    `json:"city"`
	Neighborhood   string    `json:"neighborhood"`
	BookingDate    string    `json:"bookingDate"` // YYYY-MM-DD
	BookingTime    string    `json:"bookingTime"` // HH:MM
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BookingListResponse бронирования пользователя, разбитые на предстоящие и историю.
// Каждое бронирование попадает ровно в один список, порядок сохраняется.
type BookingListResponse struct {
	Upcoming   []BookingResponse `json:"upcoming"`
	Historical []BookingResponse `json:"historical"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		TechnicianName: b.TechnicianName,
		City:           b.City,
		Neighborhood:   b.Neighborhood,
		BookingDate:    b.BookingDate.Format(domain.DateFormat),
		BookingTime:    b.BookingTime,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
	}
}

// FromPartition конвертирует разбиение в ответ
func FromPartition(upcoming, historical []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Upcoming:   make([]BookingResponse, 0, len(upcoming)),
		Historical: make([]BookingResponse, 0, len(historical)),
	}
	for _, b := range upcoming {
		resp.Upcoming = append(resp.Upcoming, FromDomainBooking(b))
	}
	for _, b := range historical {
		resp.Historical = append(resp.Historical, FromDomainBooking(b))
	}
	return resp
}
