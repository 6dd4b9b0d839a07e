package reschedule_booking

import (
	"context"
	"time"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// DraftStore хранилище черновиков бронирования
type DraftStore interface {
	Save(ctx context.Context, userID string, d *domain.Draft) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
