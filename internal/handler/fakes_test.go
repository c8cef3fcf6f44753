package handler

import (
	"context"
	"net/http"

	"github.com/avc-dev/tinyapp/internal/config"
	"github.com/avc-dev/tinyapp/internal/middleware"
	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MockAuthUsecase заглушка с настраиваемыми функциями
type MockAuthUsecase struct {
	RegisterFunc     func(ctx context.Context, email, password string) (*model.User, error)
	LoginFunc        func(ctx context.Context, email, password string) (model.UserID, error)
	StartSessionFunc func(ctx context.Context, userID model.UserID) (string, error)
	LogoutFunc       func(ctx context.Context, token string) error
}

func (m *MockAuthUsecase) Register(ctx context.Context, email, password string) (*model.User, error) {
	return m.RegisterFunc(ctx, email, password)
}

func (m *MockAuthUsecase) Login(ctx context.Context, email, password string) (model.UserID, error) {
	return m.LoginFunc(ctx, email, password)
}

func (m *MockAuthUsecase) StartSession(ctx context.Context, userID model.UserID) (string, error) {
	return m.StartSessionFunc(ctx, userID)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, token string) error {
	return m.LogoutFunc(ctx, token)
}

// MockURLUsecase заглушка с настраиваемыми функциями
type MockURLUsecase struct {
	CreateLinkFunc       func(ctx context.Context, ownerID model.UserID, longURL model.URL) (*model.Link, error)
	GetLinkFunc          func(ctx context.Context, code model.Code, requesterID model.UserID) (*model.Link, error)
	UpdateLinkFunc       func(ctx context.Context, code model.Code, requesterID model.UserID, newLongURL model.URL) (*model.Link, error)
	DeleteLinkFunc       func(ctx context.Context, code model.Code, requesterID model.UserID) error
	DeleteLinksFunc      func(ctx context.Context, codes []model.Code, requesterID model.UserID) ([]model.Code, error)
	ListLinksForUserFunc func(ctx context.Context, userID model.UserID) ([]*model.Link, error)
	RecordVisitFunc      func(ctx context.Context, code model.Code, visitorID string) (model.URL, error)
}

func (m *MockURLUsecase) CreateLink(ctx context.Context, ownerID model.UserID, longURL model.URL) (*model.Link, error) {
	return m.CreateLinkFunc(ctx, ownerID, longURL)
}

func (m *MockURLUsecase) GetLink(ctx context.Context, code model.Code, requesterID model.UserID) (*model.Link, error) {
	return m.GetLinkFunc(ctx, code, requesterID)
}

func (m *MockURLUsecase) UpdateLink(ctx context.Context, code model.Code, requesterID model.UserID, newLongURL model.URL) (*model.Link, error) {
	return m.UpdateLinkFunc(ctx, code, requesterID, newLongURL)
}

func (m *MockURLUsecase) DeleteLink(ctx context.Context, code model.Code, requesterID model.UserID) error {
	return m.DeleteLinkFunc(ctx, code, requesterID)
}

func (m *MockURLUsecase) DeleteLinks(ctx context.Context, codes []model.Code, requesterID model.UserID) ([]model.Code, error) {
	return m.DeleteLinksFunc(ctx, codes, requesterID)
}

func (m *MockURLUsecase) ListLinksForUser(ctx context.Context, userID model.UserID) ([]*model.Link, error) {
	return m.ListLinksForUserFunc(ctx, userID)
}

func (m *MockURLUsecase) RecordVisit(ctx context.Context, code model.Code, visitorID string) (model.URL, error) {
	return m.RecordVisitFunc(ctx, code, visitorID)
}

type stubCookies struct{}

func (stubCookies) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: "session", Value: token, Path: "/"}
}

func (stubCookies) ClearSessionCookie() *http.Cookie {
	return &http.Cookie{Name: "session", Value: "", Path: "/", MaxAge: -1}
}

func newTestHandler(auth AuthUsecase, urls URLUsecase) *Handler {
	return New(auth, urls, stubCookies{}, config.NewDefaultConfig(), zap.NewNop())
}

// withUser кладет пользователя в контекст запроса, как это делает миддлвар
func withUser(r *http.Request, userID model.UserID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.UserIDContextKey, userID))
}

// withURLParam добавляет chi параметр маршрута
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
