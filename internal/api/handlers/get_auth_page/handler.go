package get_auth_page

import (
	"net/http"

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

// Response данные формы входа и регистрации
type Response struct {
	AppName           string `json:"appName"`
	MinPasswordLength int    `json:"minPasswordLength"`
	SignInPath        string `json:"signInPath"`
	SignUpPath        string `json:"signUpPath"`
	Redirect          string `json:"redirect,omitempty"`
}

// SessionChecker проверяет токен, если он пришел с запросом
type SessionChecker interface {
	Authenticated(r *http.Request) bool
}

type Handler struct {
	sessions SessionChecker
}

func NewHandler(sessions SessionChecker) *Handler {
	return &Handler{sessions: sessions}
}

// Handle GET /api/v1/auth
// Пользователя с действующей сессией отправляем сразу в личный кабинет.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := Response{
		AppName:           "LimpMe",
		MinPasswordLength: domain.MinPasswordLength,
		SignInPath:        domain.PathAuth + "/sign-in",
		SignUpPath:        domain.PathAuth + "/sign-up",
	}
	if h.sessions.Authenticated(r) {
		resp.Redirect = domain.PathDashboard
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
