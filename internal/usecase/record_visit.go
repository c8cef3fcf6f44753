package usecase

import (
	"context"

	"github.com/avc-dev/tinyapp/internal/model"
	"go.uber.org/zap"
)

// RecordVisit учитывает посещение и возвращает длинный URL для редиректа.
// Пустой visitorID учитывается как общий анонимный посетитель.
func (u *URLUsecase) RecordVisit(ctx context.Context, code model.Code, visitorID string) (model.URL, error) {
	link, err := u.links.UpdateLink(ctx, code, func(link *model.Link) error {
		link.RecordVisit(visitorID, u.clock.Now())
		return nil
	})
	if err != nil {
		u.logger.Debug("failed to record visit", zap.String("code", code.String()), zap.Error(err))
		return "", classify(code, err)
	}

	return link.LongURL, nil
}
