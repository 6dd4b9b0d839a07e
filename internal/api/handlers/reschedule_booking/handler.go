package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/session"
	rescheduleBooking "github.com/m04kA/LimpMe-BookingService/internal/usecase/reschedule_booking"
)

const (
	msgUnauthenticated  = "sessão necessária"
	msgInvalidBookingID = "ID de agendamento inválido"
	msgNotFound         = "agendamento não encontrado"
	msgNotReschedulable = "apenas agendamentos futuros podem ser reagendados"
	msgFailed           = "Não foi possível reagendar"
	titleError          = "Erro"
)

// Response переход на первый шаг с заполненным черновиком
type Response struct {
	Redirect     string `json:"redirect"`
	RescheduleOf string `json:"rescheduleOf"`
}

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/my-bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]
	if _, err := uuid.Parse(bookingID); err != nil {
		h.logger.Warn("POST /my-bookings/{id}/reschedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), identity.UserID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			handlers.RespondFailure(w, http.StatusNotFound, msgNotFound, handlers.Failure(titleError, msgFailed))

		case errors.Is(err, rescheduleBooking.ErrNotReschedulable):
			handlers.RespondFailure(w, http.StatusConflict, msgNotReschedulable, handlers.Failure(titleError, msgNotReschedulable))

		default:
			h.logger.Error("POST /my-bookings/{id}/reschedule - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondFailure(w, http.StatusInternalServerError, msgFailed, handlers.Failure(titleError, msgFailed))
		}
		return
	}

	h.logger.Info("POST /my-bookings/{id}/reschedule - Draft seeded: booking_id=%s, user_id=%s", bookingID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, Response{
		Redirect:     result.Redirect,
		RescheduleOf: result.Draft.RescheduleOf,
	})
}
