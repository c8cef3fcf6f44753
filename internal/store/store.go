package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrAlreadyExists = errors.New("key already exists")
	ErrEmailTaken    = errors.New("email already taken")
)

// checkContext возвращает ошибку, если контекст уже отменен
func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
