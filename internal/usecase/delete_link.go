package usecase

import (
	"context"

	"github.com/avc-dev/tinyapp/internal/model"
	"go.uber.org/zap"
)

// DeleteLink удаляет ссылку владельца
func (u *URLUsecase) DeleteLink(ctx context.Context, code model.Code, requesterID model.UserID) error {
	err := u.links.DeleteLink(ctx, code, func(link *model.Link) error {
		return authorize(link, requesterID)
	})
	if err != nil {
		u.logger.Debug("failed to delete link", zap.String("code", code.String()), zap.Error(err))
		return classify(code, err)
	}

	u.logger.Info("link deleted", zap.String("code", code.String()), zap.String("user_id", requesterID.String()))
	return nil
}
