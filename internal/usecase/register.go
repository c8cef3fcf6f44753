package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/avc-dev/tinyapp/internal/repository"
	"github.com/avc-dev/tinyapp/internal/service"
	"go.uber.org/zap"
)

// Register создает пользователя с уникальным email
func (u *AuthUsecase) Register(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrIncompleteInput)
	}

	if _, found := u.GetUserByEmail(ctx, email); found {
		return nil, fmt.Errorf("%w: %s", ErrEmailAlreadyExists, email)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		u.logger.Error("failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	exists := func(candidate string) (bool, error) {
		return u.users.UserIDExists(ctx, model.UserID(candidate))
	}

	var user *model.User
	insert := func(candidate string) (bool, error) {
		user = &model.User{
			ID:           model.UserID(candidate),
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    u.clock.Now(),
		}

		err := u.users.CreateUser(ctx, user)
		if errors.Is(err, repository.ErrAlreadyExists) {
			u.logger.Debug("user id collision, retrying", zap.String("user_id", candidate))
			return true, nil
		}
		return false, err
	}

	_, err = service.InsertUnique(u.generator, exists, insert, u.cfg.Retry.MaxAttempts)
	switch {
	case err == nil:
		u.logger.Info("user registered", zap.String("user_id", user.ID.String()))
		return user, nil
	case errors.Is(err, repository.ErrEmailTaken):
		return nil, fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
	default:
		u.logger.Error("failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to register: %w", err)
	}
}
