package select_technician

import (
	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/service/bookings/models"
	submitBooking "github.com/m04kA/LimpMe-BookingService/internal/usecase/submit_booking"
)

// SubmitRequest HTTP request model
type SubmitRequest struct {
	TechnicianName string `json:"technicianName"`
}

// SubmitResponse созданное бронирование, уведомление и отложенный переход
type SubmitResponse struct {
	Booking         models.BookingResponse `json:"booking"`
	Notification    *handlers.Notification `json:"notification"`
	Redirect        string                 `json:"redirect"`
	RedirectAfterMs int64                  `json:"redirectAfterMs"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *submitBooking.Response, n *handlers.Notification) SubmitResponse {
	return SubmitResponse{
		Booking:         models.FromDomainBooking(resp.Booking),
		Notification:    n,
		Redirect:        resp.Redirect,
		RedirectAfterMs: resp.RedirectAfter.Milliseconds(),
	}
}
