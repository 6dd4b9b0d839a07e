package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// DraftStore хранилище черновиков бронирования
type DraftStore interface {
	Get(ctx context.Context, userID string) (*domain.Draft, error)
	Save(ctx context.Context, userID string, d *domain.Draft) error
	Delete(ctx context.Context, userID string) error
}

// Locker блокировка от повторной отправки, пока первая не завершилась
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func() error, err error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	BookingSubmitted(outcome string)
	BookingRescheduled()
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
