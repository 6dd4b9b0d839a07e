package session

import "errors"

var (
	// ErrInvalidToken токен не подписан нами, поврежден или истек
	ErrInvalidToken = errors.New("session: invalid token")

	// ErrRevoked токен отозван выходом из аккаунта
	ErrRevoked = errors.New("session: token revoked")

	// ErrSign ошибка подписи токена
	ErrSign = errors.New("session: failed to sign token")

	// ErrStore ошибка хранилища отозванных токенов
	ErrStore = errors.New("session: revocation store error")
)
