package store

import (
	"context"
	"testing"

	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSessionStore_Lifecycle проверяет привязку, чтение и удаление сессии
func TestSessionStore_Lifecycle(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, s.Bind(ctx, "sid-1", "u1"))

	userID, err := s.Resolve(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, model.UserID("u1"), userID)

	require.NoError(t, s.Clear(ctx, "sid-1"))

	_, err = s.Resolve(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Повторная очистка не ошибка
	assert.NoError(t, s.Clear(ctx, "sid-1"))
}

func TestSessionStore_Rebind(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, s.Bind(ctx, "sid-1", "u1"))
	require.NoError(t, s.Bind(ctx, "sid-1", "u2"))

	userID, err := s.Resolve(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, model.UserID("u2"), userID)
}

func TestSessionStore_RespectsContextCancellation(t *testing.T) {
	s := NewSessionStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Bind(ctx, "sid-1", "u1"), context.Canceled)
	_, err := s.Resolve(ctx, "sid-1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Clear(ctx, "sid-1"), context.Canceled)
}
