package wizard_step

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	draftStore "github.com/m04kA/LimpMe-BookingService/internal/infra/storage/draft"
	"github.com/m04kA/LimpMe-BookingService/internal/service/catalog"
	"github.com/m04kA/LimpMe-BookingService/internal/wizard"
)

// UseCase переходы мастера бронирования поверх сохраненного черновика.
// Черновик принадлежит одному пользователю и переживает перезагрузку страницы.
type UseCase struct {
	drafts DraftStore
	clock  TimeProvider
	logger Logger
}

func NewUseCase(drafts DraftStore, clock TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		drafts: drafts,
		clock:  clock,
		logger: logger,
	}
}

// View возвращает экран шага. Если шаг еще недоступен, в ответе будет
// Redirect на первый незаполненный шаг.
func (uc *UseCase) View(ctx context.Context, userID string, step domain.Step) (*StepView, error) {
	d, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	view := uc.view(d, step, now)
	if reachable := reachableStep(d, now); step.Index() > reachable.Index() {
		view.Redirect = reachable.Path()
	}
	return view, nil
}

// SelectLocation обновляет город и/или район
func (uc *UseCase) SelectLocation(ctx context.Context, userID string, req *LocationRequest) (*StepView, error) {
	return uc.mutate(ctx, userID, "SelectLocation", domain.StepLocation, func(d *domain.Draft, _ time.Time) error {
		if req.City != nil {
			if err := wizard.SelectCity(d, *req.City); err != nil {
				return err
			}
		}
		if req.Neighborhood != nil {
			if err := wizard.SelectNeighborhood(d, *req.Neighborhood); err != nil {
				return err
			}
		}
		return nil
	})
}

// ContinueLocation переход с первого шага на второй
func (uc *UseCase) ContinueLocation(ctx context.Context, userID string) (*StepView, error) {
	return uc.mutate(ctx, userID, "ContinueLocation", domain.StepDateTime, func(d *domain.Draft, _ time.Time) error {
		return wizard.ContinueToDateTime(d)
	})
}

// SelectDateTime обновляет дату и/или время
func (uc *UseCase) SelectDateTime(ctx context.Context, userID string, req *DateTimeRequest) (*StepView, error) {
	return uc.mutate(ctx, userID, "SelectDateTime", domain.StepDateTime, func(d *domain.Draft, now time.Time) error {
		if req.Date != nil {
			date, err := domain.ParseDate(*req.Date)
			if err != nil {
				return wizard.ErrInvalidDate
			}
			if err := wizard.SelectDate(d, date, now); err != nil {
				return err
			}
		}
		if req.Time != nil {
			if err := wizard.SelectTime(d, *req.Time); err != nil {
				return err
			}
		}
		return nil
	})
}

// ContinueDateTime переход со второго шага на третий
func (uc *UseCase) ContinueDateTime(ctx context.Context, userID string) (*StepView, error) {
	return uc.mutate(ctx, userID, "ContinueDateTime", domain.StepTechnician, func(d *domain.Draft, now time.Time) error {
		return wizard.ContinueToTechnician(d, now)
	})
}

// Back шаг назад с экрана from. Все выбранные значения сохраняются.
func (uc *UseCase) Back(ctx context.Context, userID string, from domain.Step) (*StepView, error) {
	d, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	d.Step = from
	if err := wizard.Back(d); err != nil {
		return nil, ErrAlreadyFirstStep
	}

	if err := uc.save(ctx, userID, d); err != nil {
		return nil, err
	}
	return uc.view(d, d.Step, uc.clock.Now()), nil
}

func (uc *UseCase) mutate(
	ctx context.Context,
	userID, op string,
	screen domain.Step,
	fn func(d *domain.Draft, now time.Time) error,
) (*StepView, error) {
	d, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if err := fn(d, now); err != nil {
		uc.logger.Warn("%s: user=%s rejected: %v", op, userID, err)
		if errors.Is(err, wizard.ErrStepIncomplete) {
			return nil, ErrStepIncomplete
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}

	if err := uc.save(ctx, userID, d); err != nil {
		return nil, err
	}
	return uc.view(d, screen, now), nil
}

// load возвращает черновик пользователя или новый пустой
func (uc *UseCase) load(ctx context.Context, userID string) (*domain.Draft, error) {
	d, err := uc.drafts.Get(ctx, userID)
	if errors.Is(err, draftStore.ErrDraftNotFound) {
		return domain.NewDraft(), nil
	}
	if err != nil {
		uc.logger.Error("load: failed to get draft for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: load draft: %v", ErrInternal, err)
	}
	return d, nil
}

func (uc *UseCase) save(ctx context.Context, userID string, d *domain.Draft) error {
	d.UpdatedAt = uc.clock.Now()
	if err := uc.drafts.Save(ctx, userID, d); err != nil {
		uc.logger.Error("save: failed to save draft for user=%s: %v", userID, err)
		return fmt.Errorf("%w: save draft: %v", ErrInternal, err)
	}
	return nil
}

func (uc *UseCase) view(d *domain.Draft, step domain.Step, now time.Time) *StepView {
	view := &StepView{
		Step:       step.Index(),
		TotalSteps: domain.TotalSteps,
		Path:       step.Path(),
		Draft:      toDraftView(d),
	}

	switch step {
	case domain.StepLocation:
		view.Cities = domain.Cities()
		view.Neighborhoods = wizard.NeighborhoodOptions(d)
		view.CanContinue = wizard.CanContinueLocation(d)
	case domain.StepDateTime:
		view.TimeSlots = domain.TimeSlots()
		view.MinDate = domain.FirstBookableDate(now).Format(domain.DateFormat)
		view.ExcludedWeekday = domain.ExcludedWeekday.String()
		view.CanContinue = wizard.CanContinueDateTime(d, now)
	case domain.StepTechnician:
		view.Technicians = catalog.Technicians(wizard.Technicians())
		view.CanContinue = wizard.CanContinueDateTime(d, now)
	}
	return view
}

// reachableStep самый дальний шаг, на который пускают данные черновика
func reachableStep(d *domain.Draft, now time.Time) domain.Step {
	switch {
	case wizard.CanContinueDateTime(d, now):
		return domain.StepTechnician
	case wizard.CanContinueLocation(d):
		return domain.StepDateTime
	default:
		return domain.StepLocation
	}
}
