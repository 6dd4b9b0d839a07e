package sign_in

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/service/auth"
	"github.com/m04kA/LimpMe-BookingService/internal/session"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidCredentials = "e-mail ou senha incorretos"

	titleError   = "Erro ao entrar"
	titleSuccess = "Login realizado!"
)

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

// Handle POST /api/v1/auth/sign-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			handlers.RespondFailure(w, http.StatusUnauthorized, msgInvalidCredentials,
				handlers.Failure(titleError, msgInvalidCredentials))
			return
		}
		h.logger.Error("POST /auth/sign-in - Failed to sign in: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	session.SetCookie(w, result.Token, time.Unix(result.ExpiresAt, 0), h.secureCookie)

	h.logger.Info("POST /auth/sign-in - Signed in: email=%s", result.Email)
	handlers.RespondJSON(w, http.StatusOK, SignInResponse{
		SessionResponse: result,
		Notification:    handlers.Success(titleSuccess, ""),
	})
}
