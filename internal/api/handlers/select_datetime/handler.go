package select_datetime

import (
	"errors"
	"net/http"

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/session"
	wizardStep "github.com/m04kA/LimpMe-BookingService/internal/usecase/wizard_step"
	"github.com/m04kA/LimpMe-BookingService/internal/wizard"
)

const (
	msgUnauthenticated    = "sessão necessária"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgLocationRequired   = "selecione a localização primeiro"
	msgInvalidDate        = "data indisponível, escolha um dia a partir de amanhã, exceto domingo"
	msgInvalidTime        = "horário indisponível"
	msgStepIncomplete     = "selecione a data e o horário"
)

type Handler struct {
	useCase WizardUseCase
	logger  Logger
}

func NewHandler(useCase WizardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Get GET /api/v1/select-datetime
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
		return
	}

	view, err := h.useCase.View(r.Context(), identity.UserID, domain.StepDateTime)
	if err != nil {
		h.respondError(w, "GET /select-datetime", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

// Post POST /api/v1/select-datetime
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
		return
	}

	var req wizardStep.DateTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /select-datetime - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.SelectDateTime(r.Context(), identity.UserID, &req)
	if err != nil {
		h.respondError(w, "POST /select-datetime", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

// Continue POST /api/v1/select-datetime/continue
func (h *Handler) Continue(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
		return
	}

	view, err := h.useCase.ContinueDateTime(r.Context(), identity.UserID)
	if err != nil {
		h.respondError(w, "POST /select-datetime/continue", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

// Back POST /api/v1/select-datetime/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
		return
	}

	view, err := h.useCase.Back(r.Context(), identity.UserID, domain.StepDateTime)
	if err != nil {
		h.respondError(w, "POST /select-datetime/back", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, wizard.ErrLocationRequired):
		handlers.RespondConflict(w, msgLocationRequired)

	case errors.Is(err, wizard.ErrUnknownTimeSlot):
		handlers.RespondBadRequest(w, msgInvalidTime)

	case errors.Is(err, wizardStep.ErrInvalidSelection):
		h.logger.Warn("%s - Invalid selection: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDate)

	case errors.Is(err, wizardStep.ErrStepIncomplete):
		handlers.RespondConflict(w, msgStepIncomplete)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
