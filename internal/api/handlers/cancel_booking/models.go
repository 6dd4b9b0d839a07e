package cancel_booking

import (
	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/service/bookings/models"
)

// CancelBookingResponse обновленный список и уведомление
type CancelBookingResponse struct {
	*models.BookingListResponse
	Notification *handlers.Notification `json:"notification"`
}
