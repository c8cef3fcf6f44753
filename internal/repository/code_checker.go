package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/tinyapp/internal/model"
)

// CodeExists проверяет, занят ли короткий код
// Возвращает ошибку только в случае проблем с хранилищем
func (r *Repository) CodeExists(ctx context.Context, code model.Code) (bool, error) {
	exists, err := r.links.Exists(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}
	return exists, nil
}

// UserIDExists проверяет, занят ли идентификатор пользователя
func (r *Repository) UserIDExists(ctx context.Context, id model.UserID) (bool, error) {
	exists, err := r.users.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check user id existence: %w", err)
	}
	return exists, nil
}
