package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/avc-dev/tinyapp/internal/repository"
	"go.uber.org/zap"
)

// Login проверяет email и пароль и возвращает идентификатор пользователя
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (model.UserID, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrIncompleteInput)
	}

	user, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrEmailNotFound, email)
		}
		u.logger.Error("failed to get user by email", zap.Error(err))
		return "", fmt.Errorf("failed to login: %w", err)
	}

	ok, err := u.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		u.logger.Error("failed to compare password", zap.String("user_id", user.ID.String()), zap.Error(err))
		return "", fmt.Errorf("failed to login: %w", err)
	}
	if !ok {
		return "", ErrWrongPassword
	}

	return user.ID, nil
}

// GetUserByEmail ищет пользователя по точному совпадению email
func (u *AuthUsecase) GetUserByEmail(ctx context.Context, email string) (*model.User, bool) {
	user, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			u.logger.Error("failed to get user by email", zap.Error(err))
		}
		return nil, false
	}
	return user, true
}
