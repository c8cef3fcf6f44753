package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc-dev/tinyapp/internal/model"
)

// UserStore хранит пользователей в памяти. Email уникален, сравнение точное.
type UserStore struct {
	mutex   sync.RWMutex
	users   map[model.UserID]*model.User
	byEmail map[string]model.UserID
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:   make(map[model.UserID]*model.User),
		byEmail: make(map[string]model.UserID),
	}
}

// Insert сохраняет пользователя. Проверка id и email выполняется в той же критической секции.
func (s *UserStore) Insert(ctx context.Context, user *model.User) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return fmt.Errorf("email %s: %w", user.Email, ErrEmailTaken)
	}
	if _, exists := s.users[user.ID]; exists {
		return fmt.Errorf("user %s: %w", user.ID, ErrAlreadyExists)
	}

	s.users[user.ID] = user.Clone()
	s.byEmail[user.Email] = user.ID

	return nil
}

// GetByID возвращает копию пользователя по идентификатору
func (s *UserStore) GetByID(ctx context.Context, id model.UserID) (*model.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	return user.Clone(), nil
}

// GetByEmail возвращает копию пользователя по email
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("email %s: %w", email, ErrNotFound)
	}

	return s.users[id].Clone(), nil
}

// Exists проверяет, занят ли идентификатор
func (s *UserStore) Exists(ctx context.Context, id model.UserID) (bool, error) {
	if err := checkContext(ctx); err != nil {
		return false, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, ok := s.users[id]
	return ok, nil
}

// Len возвращает количество пользователей
func (s *UserStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.users)
}
