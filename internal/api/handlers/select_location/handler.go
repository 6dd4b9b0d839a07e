package select_location

import (
	"errors"
	"net/http"

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/session"
	wizardStep "github.com/m04kA/LimpMe-BookingService/internal/usecase/wizard_step"
)

const (
	msgUnauthenticated    = "sessão necessária"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidSelection   = "cidade ou bairro inválido"
	msgStepIncomplete     = "selecione a cidade e o bairro"
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

// Get GET /api/v1/select-location
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
		return
	}

	view, err := h.useCase.View(r.Context(), identity.UserID, domain.StepLocation)
	if err != nil {
		h.respondError(w, "GET /select-location", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

// Post POST /api/v1/select-location
// Смена города сбрасывает выбранный район.
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
		return
	}

	var req wizardStep.LocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /select-location - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.useCase.SelectLocation(r.Context(), identity.UserID, &req)
	if err != nil {
		h.respondError(w, "POST /select-location", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

// Continue POST /api/v1/select-location/continue
func (h *Handler) Continue(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
		return
	}

	view, err := h.useCase.ContinueLocation(r.Context(), identity.UserID)
	if err != nil {
		h.respondError(w, "POST /select-location/continue", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, wizardStep.ErrInvalidSelection):
		h.logger.Warn("%s - Invalid selection: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidSelection)

	case errors.Is(err, wizardStep.ErrStepIncomplete):
		handlers.RespondConflict(w, msgStepIncomplete)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
