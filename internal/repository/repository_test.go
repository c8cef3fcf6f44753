package repository

import (
	"context"
	"testing"
	"time"

	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/avc-dev/tinyapp/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository() *Repository {
	return New(store.NewUserStore(), store.NewLinkStore(), store.NewSessionStore())
}

// TestRepository_TranslatesStoreErrors проверяет перевод ошибок хранилища
func TestRepository_TranslatesStoreErrors(t *testing.T) {
	// Arrange
	repo := newTestRepository()
	ctx := context.Background()
	require.NoError(t, repo.CreateUser(ctx, &model.User{ID: "u1", Email: "a@example.com"}))
	require.NoError(t, repo.CreateLink(ctx, model.NewLink("abc123", "https://example.com", "u1", time.Now())))

	// Act & Assert
	err := repo.CreateUser(ctx, &model.User{ID: "u2", Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.ErrorIs(t, err, store.ErrEmailTaken)

	err = repo.CreateUser(ctx, &model.User{ID: "u1", Email: "b@example.com"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	err = repo.CreateLink(ctx, model.NewLink("abc123", "https://other.com", "u1", time.Now()))
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = repo.GetLink(ctx, "zzz999")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.UpdateLink(ctx, "zzz999", func(link *model.Link) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.DeleteLink(ctx, "zzz999", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestRepository_ExistenceCheckers проверяет проверки занятости кода и идентификатора
func TestRepository_ExistenceCheckers(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()
	require.NoError(t, repo.CreateUser(ctx, &model.User{ID: "u1", Email: "a@example.com"}))
	require.NoError(t, repo.CreateLink(ctx, model.NewLink("abc123", "https://example.com", "u1", time.Now())))

	exists, err := repo.CodeExists(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.CodeExists(ctx, "free00")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.UserIDExists(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UserIDExists(ctx, "u2")
	require.NoError(t, err)
	assert.False(t, exists)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = repo.CodeExists(cancelled, "abc123")
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRepository_DeleteLinksBatch проверяет удаление только своих ссылок
func TestRepository_DeleteLinksBatch(t *testing.T) {
	// Arrange
	repo := newTestRepository()
	ctx := context.Background()
	require.NoError(t, repo.CreateLink(ctx, model.NewLink("mine01", "https://a.com", "u1", time.Now())))
	require.NoError(t, repo.CreateLink(ctx, model.NewLink("theirs", "https://b.com", "u2", time.Now())))
	require.NoError(t, repo.CreateLink(ctx, model.NewLink("mine02", "https://c.com", "u1", time.Now())))

	// Act
	deleted, err := repo.DeleteLinksBatch(ctx, []model.Code{"mine01", "theirs", "gone00", "mine02"}, "u1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []model.Code{"mine01", "mine02"}, deleted)

	_, err = repo.GetLink(ctx, "theirs")
	assert.NoError(t, err)
	assert.False(t, repo.IsLinkOwnedByUser(ctx, "mine01", "u1"))
	assert.True(t, repo.IsLinkOwnedByUser(ctx, "theirs", "u2"))
	assert.False(t, repo.IsLinkOwnedByUser(ctx, "theirs", "u1"))
}

// TestRepository_Sessions проверяет жизненный цикл сессии
func TestRepository_Sessions(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	_, found, err := repo.LookupSession(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.BindSession(ctx, "sid", "u1"))
	userID, found, err := repo.LookupSession(ctx, "sid")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, model.UserID("u1"), userID)

	require.NoError(t, repo.ClearSession(ctx, "sid"))
	_, found, err = repo.LookupSession(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRepository_ListLinksByOwner(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()
	require.NoError(t, repo.CreateLink(ctx, model.NewLink("first1", "https://a.com", "u1", time.Now())))
	require.NoError(t, repo.CreateLink(ctx, model.NewLink("secnd2", "https://b.com", "u1", time.Now())))

	links, err := repo.ListLinksByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, model.Code("first1"), links[0].ShortCode)
	assert.Equal(t, model.Code("secnd2"), links[1].ShortCode)
}
