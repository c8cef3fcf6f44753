package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/avc-dev/tinyapp/internal/model"
)

// LinkMutation изменяет ссылку внутри критической секции хранилища.
// Ошибка отменяет операцию.
type LinkMutation func(link *model.Link) error

// LinkStore хранит короткие ссылки в памяти и помнит порядок их добавления.
// Наружу отдаются только копии записей.
type LinkStore struct {
	mutex sync.RWMutex
	links map[model.Code]*model.Link
	order []model.Code
}

func NewLinkStore() *LinkStore {
	return &LinkStore{
		links: make(map[model.Code]*model.Link),
	}
}

// Insert сохраняет новую ссылку, если код еще не занят
func (s *LinkStore) Insert(ctx context.Context, link *model.Link) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.links[link.ShortCode]; exists {
		return fmt.Errorf("code %s: %w", link.ShortCode, ErrAlreadyExists)
	}

	s.links[link.ShortCode] = link.Clone()
	s.order = append(s.order, link.ShortCode)

	return nil
}

// Get возвращает копию ссылки по коду
func (s *LinkStore) Get(ctx context.Context, code model.Code) (*model.Link, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	link, ok := s.links[code]
	if !ok {
		return nil, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return link.Clone(), nil
}

// Exists проверяет, занят ли код
func (s *LinkStore) Exists(ctx context.Context, code model.Code) (bool, error) {
	if err := checkContext(ctx); err != nil {
		return false, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, ok := s.links[code]
	return ok, nil
}

// Update атомарно применяет mutate к ссылке и возвращает копию результата.
// Если mutate вернула ошибку, запись остается прежней.
func (s *LinkStore) Update(ctx context.Context, code model.Code, mutate LinkMutation) (*model.Link, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[code]
	if !ok {
		return nil, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	// Работаем с копией, чтобы неудачная мутация не оставила полуизмененную запись
	draft := link.Clone()
	if err := mutate(draft); err != nil {
		return nil, err
	}
	s.links[code] = draft

	return draft.Clone(), nil
}

// Delete удаляет ссылку. Если check не nil, удаление выполняется только когда check вернула nil.
func (s *LinkStore) Delete(ctx context.Context, code model.Code, check func(link *model.Link) error) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[code]
	if !ok {
		return fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	if check != nil {
		if err := check(link.Clone()); err != nil {
			return err
		}
	}

	delete(s.links, code)
	if i := slices.Index(s.order, code); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}

	return nil
}

// ListByOwner возвращает ссылки пользователя в порядке добавления
func (s *LinkStore) ListByOwner(ctx context.Context, ownerID model.UserID) ([]*model.Link, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	links := []*model.Link{}
	for _, code := range s.order {
		link := s.links[code]
		if link.OwnerID == ownerID {
			links = append(links, link.Clone())
		}
	}

	return links, nil
}

// Len возвращает количество ссылок
func (s *LinkStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.links)
}
