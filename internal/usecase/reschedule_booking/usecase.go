package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/LimpMe-BookingService/internal/infra/storage/booking"
)

// Response куда отправить пользователя и с каким черновиком
type Response struct {
	Draft    *domain.Draft
	Redirect string
}

// UseCase заполняет черновик полями существующего бронирования.
// Само бронирование не меняется.
type UseCase struct {
	bookingRepo  BookingRepository
	drafts       DraftStore
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(bookingRepo BookingRepository, drafts DraftStore, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		drafts:       drafts,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute заменяет текущий черновик пользователя копией бронирования
// и возвращает переход на первый шаг мастера
func (uc *UseCase) Execute(ctx context.Context, userID, bookingID string) (*Response, error) {
	uc.logger.Info("RescheduleBooking: user=%s, booking id=%s", userID, bookingID)

	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: get booking: %v", ErrInternal, err)
	}

	if !booking.IsOwnedBy(userID) {
		uc.logger.Warn("RescheduleBooking: booking id=%s does not belong to user=%s", bookingID, userID)
		return nil, ErrBookingNotFound
	}

	now := uc.timeProvider.Now()
	if !booking.IsUpcoming(now) {
		uc.logger.Warn("RescheduleBooking: booking id=%s is not upcoming", bookingID)
		return nil, ErrNotReschedulable
	}

	draft := domain.NewDraftFromBooking(booking)
	draft.UpdatedAt = now
	if err := uc.drafts.Save(ctx, userID, draft); err != nil {
		uc.logger.Error("RescheduleBooking: failed to save draft for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: save draft: %v", ErrInternal, err)
	}

	return &Response{Draft: draft, Redirect: domain.PathSelectLocation}, nil
}
