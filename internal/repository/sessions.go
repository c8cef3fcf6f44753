package repository

import (
	"context"
	"errors"

	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/avc-dev/tinyapp/internal/store"
)

func (r *Repository) BindSession(ctx context.Context, sessionID string, userID model.UserID) error {
	if err := r.sessions.Bind(ctx, sessionID, userID); err != nil {
		return translate("failed to bind session", err)
	}
	return nil
}

// LookupSession возвращает пользователя сессии, found=false если привязки нет
func (r *Repository) LookupSession(ctx context.Context, sessionID string) (model.UserID, bool, error) {
	userID, err := r.sessions.Resolve(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", false, nil
		}
		return "", false, translate("failed to lookup session", err)
	}
	return userID, true, nil
}

func (r *Repository) ClearSession(ctx context.Context, sessionID string) error {
	if err := r.sessions.Clear(ctx, sessionID); err != nil {
		return translate("failed to clear session", err)
	}
	return nil
}
