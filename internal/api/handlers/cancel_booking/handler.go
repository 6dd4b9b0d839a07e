package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/service/bookings"
	"github.com/m04kA/LimpMe-BookingService/internal/session"
)

const (
	msgUnauthenticated  = "sessão necessária"
	msgInvalidBookingID = "ID de agendamento inválido"
	msgNotFound         = "agendamento não encontrado"
	msgCancelFailed     = "Não foi possível cancelar o agendamento"

	titleError     = "Erro"
	titleCancelled = "Agendamento cancelado"
	descCancelled  = "Seu agendamento foi cancelado com sucesso"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/my-bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]
	if _, err := uuid.Parse(bookingID); err != nil {
		h.logger.Warn("POST /my-bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.Cancel(r.Context(), identity.UserID, bookingID)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("POST /my-bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondFailure(w, http.StatusNotFound, msgNotFound, handlers.Failure(titleError, msgCancelFailed))
			return
		}
		h.logger.Error("POST /my-bookings/{id}/cancel - Failed to cancel booking: booking_id=%s, error=%v",
			bookingID, err)
		handlers.RespondFailure(w, http.StatusInternalServerError, msgCancelFailed, handlers.Failure(titleError, msgCancelFailed))
		return
	}

	h.logger.Info("POST /my-bookings/{id}/cancel - Booking cancelled successfully: booking_id=%s, user_id=%s",
		bookingID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{
		BookingListResponse: result,
		Notification:        handlers.Success(titleCancelled, descCancelled),
	})
}
