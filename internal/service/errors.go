package service

import "errors"

var (
	// ErrMaxRetriesExceeded возвращается когда не удалось сгенерировать уникальный код
	// после максимального количества попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for code generation")

	// ErrInvalidToken возвращается для поддельного, просроченного или неполного токена сессии
	ErrInvalidToken = errors.New("invalid session token")
)
