package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/avc-dev/tinyapp/internal/model"
)

// SessionBinder хранит привязку идентификатора сессии к пользователю
type SessionBinder interface {
	BindSession(ctx context.Context, sessionID string, userID model.UserID) error
	LookupSession(ctx context.Context, sessionID string) (model.UserID, bool, error)
	ClearSession(ctx context.Context, sessionID string) error
}

// AuthService выдает и проверяет сессионные токены.
// Токен это JWT с идентификатором сессии в claim "sid",
// пользователь определяется по привязке на сервере.
type AuthService struct {
	jwtSecret []byte
	ttl       time.Duration
	sessions  SessionBinder
	clock     Clock
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(jwtSecret string, ttl time.Duration, sessions SessionBinder, clock Clock) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
		sessions:  sessions,
		clock:     clock,
	}
}

// NewVisitorID генерирует идентификатор анонимного посетителя
func (a *AuthService) NewVisitorID() string {
	return uuid.NewString()
}

// StartSession создает сессию для пользователя и возвращает токен для куки
func (a *AuthService) StartSession(ctx context.Context, userID model.UserID) (string, error) {
	sessionID := uuid.NewString()

	token, err := a.GenerateJWT(sessionID)
	if err != nil {
		return "", err
	}

	if err := a.sessions.BindSession(ctx, sessionID, userID); err != nil {
		return "", fmt.Errorf("failed to bind session: %w", err)
	}

	return token, nil
}

// ResolveSession возвращает пользователя по токену.
// Для невалидного токена или отсутствующей привязки возвращает ErrInvalidToken.
func (a *AuthService) ResolveSession(ctx context.Context, token string) (model.UserID, error) {
	sessionID, err := a.ValidateJWT(token)
	if err != nil {
		return "", err
	}

	userID, found, err := a.sessions.LookupSession(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to lookup session: %w", err)
	}
	if !found {
		return "", fmt.Errorf("%w: session %s is not bound", ErrInvalidToken, sessionID)
	}

	return userID, nil
}

// EndSession удаляет привязку сессии. Подпись проверяется, срок действия нет,
// чтобы привязка просроченного токена тоже удалялась. Невалидный токен игнорируется.
func (a *AuthService) EndSession(ctx context.Context, token string) error {
	sessionID, err := a.parseSessionID(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil
	}

	if err := a.sessions.ClearSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

// GenerateJWT подписывает токен с идентификатором сессии
func (a *AuthService) GenerateJWT(sessionID string) (string, error) {
	now := a.clock.Now()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": now.Add(a.ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT проверяет токен и извлекает идентификатор сессии
func (a *AuthService) ValidateJWT(tokenString string) (string, error) {
	return a.parseSessionID(tokenString, jwt.WithTimeFunc(a.clock.Now), jwt.WithExpirationRequired())
}

func (a *AuthService) parseSessionID(tokenString string, opts ...jwt.ParserOption) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	}, opts...)

	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", fmt.Errorf("%w: sid not found in token", ErrInvalidToken)
	}

	return sessionID, nil
}
