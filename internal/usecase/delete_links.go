package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/tinyapp/internal/model"
	"go.uber.org/zap"
)

// DeleteLinks удаляет несколько ссылок пользователя.
// Принадлежность проверяется воркерами, чужие и несуществующие коды пропускаются.
// Возвращает удаленные коды в порядке запроса.
func (u *URLUsecase) DeleteLinks(ctx context.Context, codes []model.Code, requesterID model.UserID) ([]model.Code, error) {
	if requesterID == "" {
		return nil, fmt.Errorf("%w: no session", ErrForbidden)
	}

	unique := make([]model.Code, 0, len(codes))
	seen := make(map[model.Code]struct{}, len(codes))
	for _, code := range codes {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		unique = append(unique, code)
	}

	validator := func(ctx context.Context, code model.Code) bool {
		return u.links.IsLinkOwnedByUser(ctx, code, requesterID)
	}

	deleted := []model.Code{}
	var batchErr error
	processor := func(ctx context.Context, validCodes []model.Code) {
		done, err := u.links.DeleteLinksBatch(ctx, validCodes, requesterID)
		deleted = append(deleted, done...)
		batchErr = err
	}

	u.asyncProcessor.ProcessCodesWithWorkers(ctx, unique, validator, processor)

	if batchErr != nil {
		u.logger.Error("failed to delete links batch",
			zap.String("user_id", requesterID.String()),
			zap.Int("deleted_count", len(deleted)),
			zap.Error(batchErr),
		)
		return deleted, fmt.Errorf("failed to delete links: %w", batchErr)
	}

	u.logger.Info("links batch deleted",
		zap.String("user_id", requesterID.String()),
		zap.Int("requested_count", len(codes)),
		zap.Int("deleted_count", len(deleted)),
	)
	return deleted, nil
}
