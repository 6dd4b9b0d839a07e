package get_user_bookings

import (
	"net/http"

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/session"
)

const (
	msgUnauthenticated = "sessão necessária"
	msgLoadFailed      = "Não foi possível carregar seus agendamentos"
	titleError         = "Erro"
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

// Handle GET /api/v1/my-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
		return
	}

	result, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("GET /my-bookings - Failed to get bookings: user_id=%s, error=%v", identity.UserID, err)
		handlers.RespondFailure(w, http.StatusInternalServerError, msgLoadFailed, handlers.Failure(titleError, msgLoadFailed))
		return
	}

	h.logger.Info("GET /my-bookings - Bookings retrieved successfully: user_id=%s, upcoming=%d, historical=%d",
		identity.UserID, len(result.Upcoming), len(result.Historical))
	handlers.RespondJSON(w, http.StatusOK, result)
}
