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

// CreateLink создает короткую ссылку с новым уникальным кодом
func (u *URLUsecase) CreateLink(ctx context.Context, ownerID model.UserID, longURL model.URL) (*model.Link, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrNotAuthenticated)
	}

	known, err := u.users.UserIDExists(ctx, ownerID)
	if err != nil {
		u.logger.Error("failed to check owner", zap.String("user_id", ownerID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to create link: %w", err)
	}
	if !known {
		return nil, fmt.Errorf("%w: unknown user %s", ErrNotAuthenticated, ownerID)
	}

	if longURL == "" {
		return nil, fmt.Errorf("%w: long URL is required", ErrIncompleteInput)
	}

	exists := func(candidate string) (bool, error) {
		return u.links.CodeExists(ctx, model.Code(candidate))
	}

	var link *model.Link
	insert := func(candidate string) (bool, error) {
		link = model.NewLink(model.Code(candidate), longURL, ownerID, u.clock.Now())

		err := u.links.CreateLink(ctx, link)
		if errors.Is(err, repository.ErrAlreadyExists) {
			// Код заняли между проверкой и вставкой
			u.logger.Debug("code collision on insert, retrying", zap.String("code", candidate))
			return true, nil
		}
		return false, err
	}

	if _, err = service.InsertUnique(u.generator, exists, insert, u.cfg.Retry.MaxAttempts); err != nil {
		u.logger.Error("failed to save link", zap.String("user_id", ownerID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	u.logger.Info("link created",
		zap.String("code", link.ShortCode.String()),
		zap.String("user_id", ownerID.String()),
	)
	return link, nil
}
