package sign_up

import (
	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/service/auth"
)

// SignUpRequest HTTP request model
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpResponse сессия и уведомление
type SignUpResponse struct {
	*auth.SessionResponse
	Notification *handlers.Notification `json:"notification"`
}
