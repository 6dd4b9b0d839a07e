package sign_in

import (
	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/service/auth"
)

// SignInRequest HTTP request model
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	*auth.SessionResponse
	Notification *handlers.Notification `json:"notification"`
}
