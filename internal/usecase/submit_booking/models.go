package submit_booking

import (
	"time"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

// Outcome метки исхода отправки для метрик
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
)

// Request модель запроса на отправку черновика.
// UserID пустой, если сессии нет.
type Request struct {
	UserID         string
	TechnicianName string
}

// Response созданное бронирование и куда перейти после паузы
type Response struct {
	Booking       *domain.Booking
	Rescheduled   bool // черновик был заполнен из существующего бронирования
	Redirect      string
	RedirectAfter time.Duration
}
