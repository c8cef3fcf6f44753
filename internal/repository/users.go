package repository

import (
	"context"

	"github.com/avc-dev/tinyapp/internal/model"
)

func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	if err := r.users.Insert(ctx, user); err != nil {
		return translate("failed to create user", err)
	}
	return nil
}

func (r *Repository) GetUserByID(ctx context.Context, id model.UserID) (*model.User, error) {
	user, err := r.users.GetByID(ctx, id)
	if err != nil {
		return nil, translate("failed to get user by id", err)
	}
	return user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := r.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, translate("failed to get user by email", err)
	}
	return user, nil
}
