package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avc-dev/tinyapp/internal/config"
	"github.com/avc-dev/tinyapp/internal/middleware"
	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/avc-dev/tinyapp/internal/usecase"
	"go.uber.org/zap"
)

// AuthUsecase операции регистрации, входа и сессий
type AuthUsecase interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (model.UserID, error)
	StartSession(ctx context.Context, userID model.UserID) (string, error)
	Logout(ctx context.Context, token string) error
}

// URLUsecase операции над короткими ссылками
type URLUsecase interface {
	CreateLink(ctx context.Context, ownerID model.UserID, longURL model.URL) (*model.Link, error)
	GetLink(ctx context.Context, code model.Code, requesterID model.UserID) (*model.Link, error)
	UpdateLink(ctx context.Context, code model.Code, requesterID model.UserID, newLongURL model.URL) (*model.Link, error)
	DeleteLink(ctx context.Context, code model.Code, requesterID model.UserID) error
	DeleteLinks(ctx context.Context, codes []model.Code, requesterID model.UserID) ([]model.Code, error)
	ListLinksForUser(ctx context.Context, userID model.UserID) ([]*model.Link, error)
	RecordVisit(ctx context.Context, code model.Code, visitorID string) (model.URL, error)
}

// CookieIssuer собирает сессионные куки
type CookieIssuer interface {
	SessionCookie(token string) *http.Cookie
	ClearSessionCookie() *http.Cookie
}

type Handler struct {
	auth    AuthUsecase
	urls    URLUsecase
	cookies CookieIssuer
	cfg     *config.Config
	logger  *zap.Logger
}

func New(auth AuthUsecase, urls URLUsecase, cookies CookieIssuer, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		auth:    auth,
		urls:    urls,
		cookies: cookies,
		cfg:     cfg,
		logger:  logger,
	}
}

// getUserIDFromRequest извлекает идентификатор пользователя из контекста запроса
func (h *Handler) getUserIDFromRequest(r *http.Request) model.UserID {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	return userID
}

// statusFor сопоставляет вид ошибки и HTTP статус
func statusFor(kind usecase.ErrorKind) int {
	switch kind {
	case usecase.ErrIncompleteInput:
		return http.StatusBadRequest
	case usecase.ErrEmailAlreadyExists:
		return http.StatusConflict
	case usecase.ErrEmailNotFound, usecase.ErrWrongPassword, usecase.ErrNotAuthenticated:
		return http.StatusUnauthorized
	case usecase.ErrForbidden:
		return http.StatusForbidden
	case usecase.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// handleError пишет JSON ошибку со статусом по виду ошибки
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	kind, ok := usecase.KindOf(err)
	if !ok {
		h.logger.Error("internal error",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.Error(err),
		)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	h.logger.Debug("request rejected", zap.String("uri", r.RequestURI), zap.Error(err))
	h.writeJSON(w, statusFor(kind), errorResponse{Error: kind.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
