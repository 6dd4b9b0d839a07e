package select_technician

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/session"
	submitBooking "github.com/m04kA/LimpMe-BookingService/internal/usecase/submit_booking"
	wizardStep "github.com/m04kA/LimpMe-BookingService/internal/usecase/wizard_step"
)

const (
	msgUnauthenticated    = "sessão necessária"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgIncompleteDraft    = "Dados do agendamento incompletos"
	msgUnknownTechnician  = "técnico inválido"
	msgInProgress         = "agendamento já está sendo processado"
	msgSubmitFailed       = "Não foi possível confirmar o agendamento. Tente novamente."

	titleError     = "Erro"
	titleConfirmed = "Agendamento confirmado!"
	descConfirmed  = "Técnico %s foi notificado do seu agendamento."
)

type Handler struct {
	wizard WizardUseCase
	submit SubmitBookingUseCase
	logger Logger
}

func NewHandler(wizard WizardUseCase, submit SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		wizard: wizard,
		submit: submit,
		logger: logger,
	}
}

// Get GET /api/v1/select-technician
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
		return
	}

	view, err := h.wizard.View(r.Context(), identity.UserID, domain.StepTechnician)
	if err != nil {
		h.logger.Error("GET /select-technician - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

// Submit POST /api/v1/select-technician
// Выбор техника сразу создает бронирование.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok || identity.UserID == "" {
		handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
		return
	}

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /select-technician - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.submit.Execute(r.Context(), &submitBooking.Request{
		UserID:         identity.UserID,
		TechnicianName: req.TechnicianName,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)

		case errors.Is(err, submitBooking.ErrIncompleteDraft):
			handlers.RespondFailure(w, http.StatusConflict, msgIncompleteDraft, handlers.Failure(titleError, msgIncompleteDraft))

		case errors.Is(err, submitBooking.ErrUnknownTechnician):
			handlers.RespondBadRequest(w, msgUnknownTechnician)

		case errors.Is(err, submitBooking.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgInProgress)

		default:
			h.logger.Error("POST /select-technician - Failed to create booking: user_id=%s, error=%v",
				identity.UserID, err)
			handlers.RespondFailure(w, http.StatusInternalServerError, msgSubmitFailed, handlers.Failure(titleError, msgSubmitFailed))
		}
		return
	}

	notification := handlers.Success(titleConfirmed, fmt.Sprintf(descConfirmed, result.Booking.TechnicianName))

	h.logger.Info("POST /select-technician - Booking created successfully: booking_id=%s, user_id=%s",
		result.Booking.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, notification))
}

// Back POST /api/v1/select-technician/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
		return
	}

	view, err := h.wizard.Back(r.Context(), identity.UserID, domain.StepTechnician)
	if err != nil {
		if errors.Is(err, wizardStep.ErrAlreadyFirstStep) {
			handlers.RespondConflict(w, err.Error())
			return
		}
		h.logger.Error("POST /select-technician/back - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}
