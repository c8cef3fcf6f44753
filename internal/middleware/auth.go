package middleware

import (
	"context"
	"net/http"

	"github.com/avc-dev/tinyapp/internal/config"
	"github.com/avc-dev/tinyapp/internal/model"
	"go.uber.org/zap"
)

type contextKey string

const (
	// UserIDContextKey ключ контекста для идентификатора вошедшего пользователя
	UserIDContextKey contextKey = "user_id"
	// VisitorIDContextKey ключ контекста для идентификатора посетителя
	VisitorIDContextKey contextKey = "visitor_id"
)

// SessionResolver находит пользователя по токену из куки
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (model.UserID, bool)
}

// VisitorIDGenerator выдает идентификаторы анонимных посетителей
type VisitorIDGenerator interface {
	NewVisitorID() string
}

// AuthMiddleware представляет миддлвар для сессий и посетителей
type AuthMiddleware struct {
	sessions SessionResolver
	visitors VisitorIDGenerator
	cfg      config.SessionConfig
	logger   *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware
func NewAuthMiddleware(sessions SessionResolver, visitors VisitorIDGenerator, cfg config.SessionConfig, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		visitors: visitors,
		cfg:      cfg,
		logger:   logger,
	}
}

// Authenticate кладет в контекст пользователя из сессионной куки, если она валидна.
// Невалидная кука удаляется, запрос продолжается как анонимный.
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(am.cfg.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := am.sessions.ResolveSession(r.Context(), cookie.Value)
		if !ok {
			am.logger.Debug("stale session cookie", zap.String("remote_addr", r.RemoteAddr))
			http.SetCookie(w, am.expiredCookie(am.cfg.CookieName))
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth отвечает 401, если в контексте нет пользователя.
// Должен стоять после Authenticate.
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); !ok {
			writeJSONError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// TrackVisitor выдает посетителю постоянный идентификатор в куке
func (am *AuthMiddleware) TrackVisitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var visitorID string
		if cookie, err := r.Cookie(am.cfg.VisitorCookieName); err == nil && cookie.Value != "" {
			visitorID = cookie.Value
		} else {
			visitorID = am.visitors.NewVisitorID()
			http.SetCookie(w, &http.Cookie{
				Name:     am.cfg.VisitorCookieName,
				Value:    visitorID,
				Path:     "/",
				HttpOnly: true,
				Secure:   am.cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), VisitorIDContextKey, visitorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionCookie собирает сессионную куку с токеном
func (am *AuthMiddleware) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     am.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   am.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(am.cfg.TTL.Seconds()),
	}
}

// ClearSessionCookie собирает куку, удаляющую сессию в браузере
func (am *AuthMiddleware) ClearSessionCookie() *http.Cookie {
	return am.expiredCookie(am.cfg.CookieName)
}

func (am *AuthMiddleware) expiredCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   am.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}

// GetUserIDFromContext извлекает идентификатор пользователя из контекста запроса
func GetUserIDFromContext(ctx context.Context) (model.UserID, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(model.UserID)
	return userID, ok && userID != ""
}

// GetVisitorIDFromContext извлекает идентификатор посетителя из контекста запроса
func GetVisitorIDFromContext(ctx context.Context) string {
	visitorID, _ := ctx.Value(VisitorIDContextKey).(string)
	return visitorID
}
