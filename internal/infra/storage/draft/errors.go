package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда у пользователя нет черновика
	ErrDraftNotFound = errors.New("draft.store: draft not found")

	// ErrEncode ошибка сериализации черновика
	ErrEncode = errors.New("draft.store: failed to encode draft")

	// ErrDecode ошибка десериализации черновика
	ErrDecode = errors.New("draft.store: failed to decode draft")

	// ErrStorage ошибка хранилища
	ErrStorage = errors.New("draft.store: storage error")
)
