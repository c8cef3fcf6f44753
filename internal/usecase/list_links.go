package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/tinyapp/internal/model"
	"go.uber.org/zap"
)

// ListLinksForUser возвращает ссылки пользователя в порядке создания
func (u *URLUsecase) ListLinksForUser(ctx context.Context, userID model.UserID) ([]*model.Link, error) {
	links, err := u.links.ListLinksByOwner(ctx, userID)
	if err != nil {
		u.logger.Error("failed to list links",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return links, nil
}
