package repository

import (
	"context"
	"errors"

	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/avc-dev/tinyapp/internal/store"
)

func (r *Repository) CreateLink(ctx context.Context, link *model.Link) error {
	if err := r.links.Insert(ctx, link); err != nil {
		return translate("failed to create link", err)
	}
	return nil
}

func (r *Repository) GetLink(ctx context.Context, code model.Code) (*model.Link, error) {
	link, err := r.links.Get(ctx, code)
	if err != nil {
		return nil, translate("failed to get link", err)
	}
	return link, nil
}

// UpdateLink атомарно применяет mutate к ссылке
func (r *Repository) UpdateLink(ctx context.Context, code model.Code, mutate func(link *model.Link) error) (*model.Link, error) {
	link, err := r.links.Update(ctx, code, mutate)
	if err != nil {
		return nil, translate("failed to update link", err)
	}
	return link, nil
}

// DeleteLink удаляет ссылку, если check не вернул ошибку. check может быть nil.
func (r *Repository) DeleteLink(ctx context.Context, code model.Code, check func(link *model.Link) error) error {
	if err := r.links.Delete(ctx, code, check); err != nil {
		return translate("failed to delete link", err)
	}
	return nil
}

// DeleteLinksBatch удаляет ссылки, которые принадлежат пользователю на момент удаления.
// Возвращает фактически удаленные коды.
func (r *Repository) DeleteLinksBatch(ctx context.Context, codes []model.Code, userID model.UserID) ([]model.Code, error) {
	errNotOwned := errors.New("not owned")
	deleted := make([]model.Code, 0, len(codes))

	for _, code := range codes {
		err := r.links.Delete(ctx, code, func(link *model.Link) error {
			if !link.IsOwnedBy(userID) {
				return errNotOwned
			}
			return nil
		})
		switch {
		case err == nil:
			deleted = append(deleted, code)
		case errors.Is(err, errNotOwned), errors.Is(err, store.ErrNotFound):
			continue
		default:
			return deleted, translate("failed to delete links batch", err)
		}
	}

	return deleted, nil
}

// IsLinkOwnedByUser проверяет, принадлежит ли ссылка пользователю
func (r *Repository) IsLinkOwnedByUser(ctx context.Context, code model.Code, userID model.UserID) bool {
	link, err := r.links.Get(ctx, code)
	if err != nil {
		return false
	}
	return link.IsOwnedBy(userID)
}

func (r *Repository) ListLinksByOwner(ctx context.Context, ownerID model.UserID) ([]*model.Link, error) {
	links, err := r.links.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, translate("failed to list links by owner", err)
	}
	return links, nil
}
