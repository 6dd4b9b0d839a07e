package sign_out

import "context"

type AuthService interface {
	SignOut(ctx context.Context, token string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
