package sign_up

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
	msgInvalidEmail       = "e-mail inválido"
	msgWeakPassword       = "a senha deve ter pelo menos 6 caracteres"
	msgEmailTaken         = "este e-mail já está cadastrado"

	titleError   = "Erro no cadastro"
	titleSuccess = "Conta criada!"
	descSuccess  = "Bem-vindo ao LimpMe."
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

// Handle POST /api/v1/auth/sign-up
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-up - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidEmail):
			handlers.RespondFailure(w, http.StatusBadRequest, msgInvalidEmail, handlers.Failure(titleError, msgInvalidEmail))

		case errors.Is(err, auth.ErrWeakPassword):
			handlers.RespondFailure(w, http.StatusBadRequest, msgWeakPassword, handlers.Failure(titleError, msgWeakPassword))

		case errors.Is(err, auth.ErrEmailTaken):
			handlers.RespondFailure(w, http.StatusConflict, msgEmailTaken, handlers.Failure(titleError, msgEmailTaken))

		default:
			h.logger.Error("POST /auth/sign-up - Failed to sign up: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	session.SetCookie(w, result.Token, time.Unix(result.ExpiresAt, 0), h.secureCookie)

	h.logger.Info("POST /auth/sign-up - Account created: email=%s", result.Email)
	handlers.RespondJSON(w, http.StatusCreated, SignUpResponse{
		SessionResponse: result,
		Notification:    handlers.Success(titleSuccess, descSuccess),
	})
}
