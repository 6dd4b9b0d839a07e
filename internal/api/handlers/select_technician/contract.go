package select_technician

import (
	"context"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	submitBooking "github.com/m04kA/LimpMe-BookingService/internal/usecase/submit_booking"
	wizardStep "github.com/m04kA/LimpMe-BookingService/internal/usecase/wizard_step"
)

type WizardUseCase interface {
	View(ctx context.Context, userID string, step domain.Step) (*wizardStep.StepView, error)
	Back(ctx context.Context, userID string, from domain.Step) (*wizardStep.StepView, error)
}

type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
