package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/infra/lock"
	bookingRepo "github.com/m04kA/LimpMe-BookingService/internal/infra/storage/booking"
	draftStore "github.com/m04kA/LimpMe-BookingService/internal/infra/storage/draft"
	"github.com/m04kA/LimpMe-BookingService/internal/wizard"
)

const lockKeyPrefix = "submit:"

// Options настройки отправки
type Options struct {
	// RedirectDelay пауза перед переходом к списку бронирований
	RedirectDelay time.Duration

	// LockTTL сколько держится блокировка, если процесс упал не освободив ее
	LockTTL time.Duration

	// CancelRescheduled отменять исходное бронирование при отправке
	// перенесенного черновика. По умолчанию исходное не трогаем.
	CancelRescheduled bool
}

// UseCase use case отправки черновика как нового бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	drafts       DraftStore
	locker       Locker
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
	opts         Options
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	drafts DraftStore,
	locker Locker,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
	opts Options,
) *UseCase {
	if opts.RedirectDelay == 0 {
		opts.RedirectDelay = domain.DefaultRedirectDelay
	}
	if opts.LockTTL == 0 {
		opts.LockTTL = 30 * time.Second
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		drafts:       drafts,
		locker:       locker,
		txManager:    txManager,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
		opts:         opts,
	}
}

// Execute выбирает техника и создает бронирование со статусом scheduled.
// Без сессии и с неполным черновиком в хранилище бронирований не ходим.
// При ошибке вставки черновик остается на шаге выбора техника, повтор только вручную.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Только для вошедших пользователей
	if req.UserID == "" {
		uc.logger.Warn("SubmitBooking: rejected unauthenticated submission")
		return nil, ErrUnauthenticated
	}

	uc.logger.Info("SubmitBooking: user=%s, technician=%s", req.UserID, req.TechnicianName)

	// 2. Одна отправка на пользователя одновременно
	release, err := uc.locker.Acquire(ctx, lockKeyPrefix+req.UserID, uc.opts.LockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			uc.logger.Warn("SubmitBooking: submission already in progress for user=%s", req.UserID)
			return nil, ErrSubmissionInProgress
		}
		uc.logger.Error("SubmitBooking: failed to acquire lock for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: acquire lock: %v", ErrInternal, err)
	}
	defer func() {
		if err := release(); err != nil {
			uc.logger.Warn("SubmitBooking: failed to release lock for user=%s: %v", req.UserID, err)
		}
	}()

	// 3. Черновик и выбор техника
	draft, err := uc.drafts.Get(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, draftStore.ErrDraftNotFound) {
			uc.logger.Warn("SubmitBooking: user=%s has no draft", req.UserID)
			return nil, ErrIncompleteDraft
		}
		uc.logger.Error("SubmitBooking: failed to get draft for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: get draft: %v", ErrInternal, err)
	}

	if err := wizard.SelectTechnician(draft, req.TechnicianName); err != nil {
		uc.logger.Warn("SubmitBooking: %v", err)
		return nil, fmt.Errorf("%w: %q", ErrUnknownTechnician, req.TechnicianName)
	}

	now := uc.timeProvider.Now()
	if err := wizard.ReadyForSubmission(draft, now); err != nil {
		uc.logger.Warn("SubmitBooking: draft of user=%s is not ready: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %w", ErrIncompleteDraft, err)
	}

	// 4. Вставка, при переносе с отменой исходного в той же транзакции
	booking := &domain.Booking{
		UserID:         req.UserID,
		TechnicianName: draft.TechnicianName,
		City:           draft.City,
		Neighborhood:   draft.Neighborhood,
		BookingDate:    draft.Date,
		BookingTime:    draft.Time,
		Status:         domain.StatusScheduled,
	}

	var created *domain.Booking
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("create booking: %v", err)
		}

		if uc.opts.CancelRescheduled && draft.IsReschedule() {
			return uc.cancelOriginal(txCtx, req.UserID, draft.RescheduleOf)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to create booking for user=%s: %v", req.UserID, err)
		uc.metrics.BookingSubmitted(OutcomeFailed)
		uc.keepOnTechnicianStep(ctx, req.UserID, draft)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Черновик больше не нужен
	if err := uc.drafts.Delete(ctx, req.UserID); err != nil {
		uc.logger.Warn("SubmitBooking: failed to delete draft for user=%s: %v", req.UserID, err)
	}

	uc.metrics.BookingSubmitted(OutcomeSuccess)
	if draft.IsReschedule() {
		uc.metrics.BookingRescheduled()
	}

	uc.logger.Info("SubmitBooking: created booking id=%s for user=%s on %s %s",
		created.ID, req.UserID, created.BookingDate.Format(domain.DateFormat), created.BookingTime)

	return &Response{
		Booking:       created,
		Rescheduled:   draft.IsReschedule(),
		Redirect:      domain.PathMyBookings,
		RedirectAfter: uc.opts.RedirectDelay,
	}, nil
}

// cancelOriginal отменяет перенесенное бронирование.
// Уже отмененное или чужое бронирование пропускается.
func (uc *UseCase) cancelOriginal(ctx context.Context, userID, bookingID string) error {
	original, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("SubmitBooking: rescheduled booking id=%s not found", bookingID)
			return nil
		}
		return fmt.Errorf("get original booking: %v", err)
	}

	if !original.IsOwnedBy(userID) || !original.CanBeCancelled() {
		uc.logger.Warn("SubmitBooking: rescheduled booking id=%s left as is", bookingID)
		return nil
	}

	if err := uc.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		return fmt.Errorf("cancel original booking: %v", err)
	}
	uc.logger.Info("SubmitBooking: rescheduled booking id=%s cancelled", bookingID)
	return nil
}

func (uc *UseCase) keepOnTechnicianStep(ctx context.Context, userID string, draft *domain.Draft) {
	draft.Step = domain.StepTechnician
	draft.UpdatedAt = uc.timeProvider.Now()
	if err := uc.drafts.Save(ctx, userID, draft); err != nil {
		uc.logger.Warn("SubmitBooking: failed to keep draft for user=%s: %v", userID, err)
	}
}
