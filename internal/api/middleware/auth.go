package middleware

import (
	"net/http"

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/session"
)

const msgUnauthenticated = "sessão necessária"

// Auth проверяет токен сессии из заголовка Authorization или cookie
type Auth struct {
	provider Authenticator
	logger   Logger
}

func NewAuth(provider Authenticator, logger Logger) *Auth {
	return &Auth{
		provider: provider,
		logger:   logger,
	}
}

// Handler пропускает запрос дальше только с действующей сессией.
// Иначе 401 и маршрут страницы входа.
func (a *Auth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := session.TokenFromRequest(r)
		if token == "" {
			handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
			return
		}

		identity, err := a.provider.Authenticate(r.Context(), token)
		if err != nil {
			a.logger.Warn("%s %s - Rejected session: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgUnauthenticated, domain.PathAuth)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.WithIdentity(r.Context(), identity)))
	})
}

// Optional кладет identity в контекст, если сессия действующая, и всегда пропускает запрос
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := session.TokenFromRequest(r); token != "" {
			if identity, err := a.provider.Authenticate(r.Context(), token); err == nil {
				r = r.WithContext(session.WithIdentity(r.Context(), identity))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Authenticated сообщает, есть ли у запроса действующая сессия
func (a *Auth) Authenticated(r *http.Request) bool {
	token := session.TokenFromRequest(r)
	if token == "" {
		return false
	}
	_, err := a.provider.Authenticate(r.Context(), token)
	return err == nil
}
