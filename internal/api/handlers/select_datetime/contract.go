package select_datetime

import (
	"context"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	wizardStep "github.com/m04kA/LimpMe-BookingService/internal/usecase/wizard_step"
)

type WizardUseCase interface {
	View(ctx context.Context, userID string, step domain.Step) (*wizardStep.StepView, error)
	SelectDateTime(ctx context.Context, userID string, req *wizardStep.DateTimeRequest) (*wizardStep.StepView, error)
	ContinueDateTime(ctx context.Context, userID string) (*wizardStep.StepView, error)
	Back(ctx context.Context, userID string, from domain.Step) (*wizardStep.StepView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
