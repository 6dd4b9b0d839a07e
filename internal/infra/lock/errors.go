package lock

import "errors"

var (
	// ErrLocked возвращается, когда ключ уже захвачен
	ErrLocked = errors.New("lock: already held")

	// ErrNotHeld при освобождении: блокировка истекла или уже чужая
	ErrNotHeld = errors.New("lock: not held")

	// ErrStorage ошибка хранилища блокировок
	ErrStorage = errors.New("lock: storage error")
)
