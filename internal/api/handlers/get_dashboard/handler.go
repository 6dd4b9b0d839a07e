package get_dashboard

import (
	"net/http"

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/session"
)

const msgUnauthenticated = "sessão necessária"

type Action struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Response личный кабинет
type Response struct {
	Email   string   `json:"email"`
	Actions []Action `json:"actions"`
	SignOut string   `json:"signOut"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Email: identity.Email,
		Actions: []Action{
			{Label: "Novo agendamento", Path: domain.PathSelectLocation},
			{Label: "Meus agendamentos", Path: domain.PathMyBookings},
		},
		SignOut: domain.PathDashboard + "/sign-out",
	})
}
