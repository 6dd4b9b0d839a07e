package submit_booking

import "errors"

var (
	// ErrUnauthenticated возвращается, если пользователь не вошел в систему
	ErrUnauthenticated = errors.New("submit_booking: unauthenticated")

	// ErrIncompleteDraft возвращается, если черновик не заполнен или дата уже недоступна
	ErrIncompleteDraft = errors.New("submit_booking: booking draft is incomplete")

	// ErrUnknownTechnician возвращается, если техник не из списка
	ErrUnknownTechnician = errors.New("submit_booking: unknown technician")

	// ErrSubmissionInProgress возвращается, пока предыдущая отправка не завершилась
	ErrSubmissionInProgress = errors.New("submit_booking: submission already in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
