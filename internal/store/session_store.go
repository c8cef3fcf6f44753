package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc-dev/tinyapp/internal/model"
)

// SessionStore связывает идентификатор сессии с пользователем
type SessionStore struct {
	mutex    sync.RWMutex
	sessions map[string]model.UserID
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]model.UserID),
	}
}

// Bind создает или перезаписывает привязку сессии
func (s *SessionStore) Bind(ctx context.Context, sessionID string, userID model.UserID) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.sessions[sessionID] = userID
	return nil
}

// Resolve возвращает пользователя сессии
func (s *SessionStore) Resolve(ctx context.Context, sessionID string) (model.UserID, error) {
	if err := checkContext(ctx); err != nil {
		return "", err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	userID, ok := s.sessions[sessionID]
	if !ok {
		return "", fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}

	return userID, nil
}

// Clear удаляет привязку. Удаление отсутствующей сессии не считается ошибкой.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
