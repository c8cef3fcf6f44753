package repository

import (
	"errors"
	"fmt"

	"github.com/avc-dev/tinyapp/internal/store"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrEmailTaken    = errors.New("email already taken")
)

// Repository объединяет хранилища пользователей, ссылок и сессий
// и переводит ошибки хранилищ в ошибки репозитория
type Repository struct {
	users    *store.UserStore
	links    *store.LinkStore
	sessions *store.SessionStore
}

func New(users *store.UserStore, links *store.LinkStore, sessions *store.SessionStore) *Repository {
	return &Repository{
		users:    users,
		links:    links,
		sessions: sessions,
	}
}

// translate сохраняет исходную ошибку в цепочке и добавляет ошибку репозитория
func translate(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
	case errors.Is(err, store.ErrEmailTaken):
		return fmt.Errorf("%s: %w: %w", op, ErrEmailTaken, err)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%s: %w: %w", op, ErrAlreadyExists, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
