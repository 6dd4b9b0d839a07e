package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/LimpMe-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/LimpMe-BookingService/internal/service/bookings/models"
)

// Service сервис для работы со списком бронирований пользователя
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	clock       TimeProvider
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	clock TimeProvider,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		clock:       clock,
		metrics:     metrics,
		logger:      logger,
	}
}

// List получает все бронирования пользователя и делит их на предстоящие и историю
func (s *Service) List(ctx context.Context, userID string) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for user=%s", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	upcoming, historical := Partition(bookings, s.clock.Now())

	s.logger.Info("List: user=%s has %d upcoming and %d historical bookings", userID, len(upcoming), len(historical))
	return models.FromPartition(upcoming, historical), nil
}

// Get получает бронирование пользователя.
// Чужое бронирование неотличимо от несуществующего.
func (s *Service) Get(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Get: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Get: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	if !booking.IsOwnedBy(userID) {
		s.logger.Warn("Get: booking id=%s does not belong to user=%s", bookingID, userID)
		return nil, ErrBookingNotFound
	}

	return booking, nil
}

// Cancel переводит бронирование в cancelled и возвращает обновленный список.
// Повторная отмена ничего не меняет и тоже считается успехом.
func (s *Service) Cancel(ctx context.Context, userID, bookingID string) (*models.BookingListResponse, error) {
	s.logger.Info("Cancel: user=%s cancels booking id=%s", userID, bookingID)

	cancelled := false
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.Get(txCtx, userID, bookingID)
		if err != nil {
			return err
		}

		if !booking.CanBeCancelled() {
			s.logger.Info("Cancel: booking id=%s already cancelled", bookingID)
			return nil
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCancelled); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - update status: %v", ErrInternal, err)
		}
		cancelled = true
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, err
		}
		s.logger.Error("Cancel: failed to cancel booking id=%s: %v", bookingID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Cancel - transaction: %v", ErrInternal, err)
	}

	if cancelled {
		s.metrics.BookingCancelled()
		s.logger.Info("Cancel: booking id=%s cancelled", bookingID)
	}

	return s.List(ctx, userID)
}
