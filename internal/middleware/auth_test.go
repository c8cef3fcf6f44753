package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc-dev/tinyapp/internal/config"
	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessions map[string]model.UserID

func (f fakeSessions) ResolveSession(_ context.Context, token string) (model.UserID, bool) {
	userID, ok := f[token]
	return userID, ok
}

type fixedVisitorIDs string

func (f fixedVisitorIDs) NewVisitorID() string {
	return string(f)
}

func newTestAuthMiddleware() *AuthMiddleware {
	cfg := config.NewDefaultConfig().Session
	return NewAuthMiddleware(fakeSessions{"good-token": "u1"}, fixedVisitorIDs("visitor-new"), cfg, zap.NewNop())
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// TestAuthenticate проверяет разбор сессионной куки
func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		cookie        *http.Cookie
		expectedUser  model.UserID
		expectedFound bool
		expectCleared bool
	}{
		{
			name:          "Valid session",
			cookie:        &http.Cookie{Name: "session", Value: "good-token"},
			expectedUser:  "u1",
			expectedFound: true,
		},
		{
			name:          "Stale session",
			cookie:        &http.Cookie{Name: "session", Value: "stale-token"},
			expectCleared: true,
		},
		{
			name: "No cookie",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			am := newTestAuthMiddleware()
			var gotUser model.UserID
			var gotFound bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, gotFound = GetUserIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/urls", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			// Act
			am.Authenticate(next).ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.expectedFound, gotFound)
			assert.Equal(t, tt.expectedUser, gotUser)
			cleared := findCookie(rec, "session")
			if tt.expectCleared {
				require.NotNil(t, cleared)
				assert.Less(t, cleared.MaxAge, 0)
			} else {
				assert.Nil(t, cleared)
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	am := newTestAuthMiddleware()
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	handler := am.Authenticate(am.RequireAuth(next))

	// Без сессии
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/urls", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"not authenticated"}`, rec.Body.String())
	assert.False(t, called)

	// С сессией
	req := httptest.NewRequest(http.MethodGet, "/urls", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "good-token"})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

// TestTrackVisitor проверяет выдачу и повторное использование куки посетителя
func TestTrackVisitor(t *testing.T) {
	am := newTestAuthMiddleware()
	var visitorID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitorID = GetVisitorIDFromContext(r.Context())
	})

	// Новый посетитель
	rec := httptest.NewRecorder()
	am.TrackVisitor(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/u/abc123", nil))
	assert.Equal(t, "visitor-new", visitorID)
	issued := findCookie(rec, "visitor_id")
	require.NotNil(t, issued)
	assert.Equal(t, "visitor-new", issued.Value)

	// Вернувшийся посетитель
	req := httptest.NewRequest(http.MethodGet, "/u/abc123", nil)
	req.AddCookie(&http.Cookie{Name: "visitor_id", Value: "visitor-old"})
	rec = httptest.NewRecorder()
	am.TrackVisitor(next).ServeHTTP(rec, req)
	assert.Equal(t, "visitor-old", visitorID)
	assert.Nil(t, findCookie(rec, "visitor_id"))
}

func TestSessionCookies(t *testing.T) {
	am := newTestAuthMiddleware()

	cookie := am.SessionCookie("token")
	assert.Equal(t, "session", cookie.Name)
	assert.Equal(t, "token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)

	cleared := am.ClearSessionCookie()
	assert.Equal(t, "session", cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestGetUserIDFromContext_Empty(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := context.WithValue(context.Background(), UserIDContextKey, model.UserID(""))
	_, ok = GetUserIDFromContext(ctx)
	assert.False(t, ok)

	assert.Empty(t, GetVisitorIDFromContext(context.Background()))
}
