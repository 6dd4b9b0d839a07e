package middleware

import (
	"context"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
}

type HTTPMetrics interface {
	ObserveHTTPRequest(method, route, status string, seconds float64)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
