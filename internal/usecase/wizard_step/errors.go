package wizard_step

import "errors"

var (
	// ErrInvalidSelection значение не из каталога или недопустимая дата
	ErrInvalidSelection = errors.New("wizard_step: invalid selection")

	// ErrStepIncomplete текущий шаг не заполнен, переход вперед запрещен
	ErrStepIncomplete = errors.New("wizard_step: step is incomplete")

	// ErrAlreadyFirstStep назад с первого шага идти некуда
	ErrAlreadyFirstStep = errors.New("wizard_step: already on the first step")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("wizard_step: internal error")
)
