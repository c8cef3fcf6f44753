package usecase

import (
	"errors"
	"fmt"

	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/avc-dev/tinyapp/internal/repository"
)

// authorize пропускает только владельца ссылки.
// Отсутствие сессии и чужая ссылка дают одну и ту же ошибку.
func authorize(link *model.Link, requesterID model.UserID) error {
	if !link.IsOwnedBy(requesterID) {
		return fmt.Errorf("%w: %s", ErrForbidden, link.ShortCode)
	}
	return nil
}

// classify переводит ошибки репозитория в виды ошибок.
// Ошибки, уже имеющие вид, не меняются.
func classify(code model.Code, err error) error {
	if _, ok := KindOf(err); ok {
		return err
	}
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, code, err)
	}
	return err
}
