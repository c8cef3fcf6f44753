package usecase

import (
	"context"

	"github.com/avc-dev/tinyapp/internal/model"
	"go.uber.org/zap"
)

// GetLink возвращает ссылку со статистикой, если запрашивающий ее владелец
func (u *URLUsecase) GetLink(ctx context.Context, code model.Code, requesterID model.UserID) (*model.Link, error) {
	link, err := u.links.GetLink(ctx, code)
	if err != nil {
		u.logger.Debug("failed to get link", zap.String("code", code.String()), zap.Error(err))
		return nil, classify(code, err)
	}

	if err := authorize(link, requesterID); err != nil {
		return nil, err
	}

	return link, nil
}
