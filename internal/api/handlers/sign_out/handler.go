package sign_out

import (
	"net/http"

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/session"
)

// Response куда перейти после выхода
type Response struct {
	Redirect string `json:"redirect"`
}

type Handler struct {
	service      AuthService
	secureCookie bool
	logger       Logger
}

func NewHandler(service AuthService, secureCookie bool, logger Logger) *Handler {
	return &Handler{
		service:      service,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Handle POST /api/v1/dashboard/sign-out
// Ответ приходит только после отзыва токена.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := session.TokenFromRequest(r)

	if err := h.service.SignOut(r.Context(), token); err != nil {
		h.logger.Error("POST /dashboard/sign-out - Failed to revoke session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	session.ClearCookie(w, h.secureCookie)

	if identity, ok := session.FromContext(r.Context()); ok {
		h.logger.Info("POST /dashboard/sign-out - Signed out: user_id=%s", identity.UserID)
	}
	handlers.RespondJSON(w, http.StatusOK, Response{Redirect: domain.PathLanding})
}
