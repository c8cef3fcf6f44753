package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/tinyapp/internal/model"
	"go.uber.org/zap"
)

// UpdateLink меняет длинный URL и сбрасывает статистику ссылки
func (u *URLUsecase) UpdateLink(ctx context.Context, code model.Code, requesterID model.UserID, newLongURL model.URL) (*model.Link, error) {
	link, err := u.links.UpdateLink(ctx, code, func(link *model.Link) error {
		if err := authorize(link, requesterID); err != nil {
			return err
		}
		if newLongURL == "" {
			return fmt.Errorf("%w: long URL is required", ErrIncompleteInput)
		}
		link.Retarget(newLongURL)
		return nil
	})
	if err != nil {
		u.logger.Debug("failed to update link", zap.String("code", code.String()), zap.Error(err))
		return nil, classify(code, err)
	}

	u.logger.Info("link updated", zap.String("code", code.String()), zap.String("user_id", requesterID.String()))
	return link, nil
}
