package auth

import "errors"

var (
	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("auth: invalid email")

	// ErrWeakPassword возвращается, если пароль короче минимальной длины
	ErrWeakPassword = errors.New("auth: password too short")

	// ErrEmailTaken возвращается, если email уже зарегистрирован
	ErrEmailTaken = errors.New("auth: email already registered")

	// ErrInvalidCredentials неверный email или пароль
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
