package wizard_step

import (
	"context"
	"time"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

// DraftStore хранилище черновиков бронирования
type DraftStore interface {
	Get(ctx context.Context, userID string) (*domain.Draft, error)
	Save(ctx context.Context, userID string, d *domain.Draft) error
}

// TimeProvider источник текущего времени в часовом поясе сервиса
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
