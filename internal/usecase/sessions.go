package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/avc-dev/tinyapp/internal/service"
	"go.uber.org/zap"
)

// StartSession привязывает новую сессию к пользователю и возвращает токен
func (u *AuthUsecase) StartSession(ctx context.Context, userID model.UserID) (string, error) {
	token, err := u.sessions.StartSession(ctx, userID)
	if err != nil {
		u.logger.Error("failed to start session", zap.String("user_id", userID.String()), zap.Error(err))
		return "", fmt.Errorf("failed to start session: %w", err)
	}
	return token, nil
}

// ResolveSession возвращает пользователя по токену, ok=false для анонимного запроса
func (u *AuthUsecase) ResolveSession(ctx context.Context, token string) (model.UserID, bool) {
	if token == "" {
		return "", false
	}

	userID, err := u.sessions.ResolveSession(ctx, token)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidToken) {
			u.logger.Error("failed to resolve session", zap.Error(err))
		}
		return "", false
	}

	return userID, true
}

// Logout удаляет привязку сессии
func (u *AuthUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := u.sessions.EndSession(ctx, token); err != nil {
		u.logger.Error("failed to end session", zap.Error(err))
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}
