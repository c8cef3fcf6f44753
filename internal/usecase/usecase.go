package usecase

import (
	"context"

	"github.com/avc-dev/tinyapp/internal/config"
	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/avc-dev/tinyapp/internal/service"
	"go.uber.org/zap"
)

// UserRepository определяет интерфейс для работы с хранилищем пользователей
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UserIDExists(ctx context.Context, id model.UserID) (bool, error)
}

// LinkRepository определяет интерфейс для работы с хранилищем ссылок
type LinkRepository interface {
	CreateLink(ctx context.Context, link *model.Link) error
	GetLink(ctx context.Context, code model.Code) (*model.Link, error)
	UpdateLink(ctx context.Context, code model.Code, mutate func(*model.Link) error) (*model.Link, error)
	DeleteLink(ctx context.Context, code model.Code, check func(*model.Link) error) error
	DeleteLinksBatch(ctx context.Context, codes []model.Code, userID model.UserID) ([]model.Code, error)
	IsLinkOwnedByUser(ctx context.Context, code model.Code, userID model.UserID) bool
	ListLinksByOwner(ctx context.Context, ownerID model.UserID) ([]*model.Link, error)
	CodeExists(ctx context.Context, code model.Code) (bool, error)
}

// SessionManager выдает и разбирает сессионные токены
type SessionManager interface {
	StartSession(ctx context.Context, userID model.UserID) (string, error)
	ResolveSession(ctx context.Context, token string) (model.UserID, error)
	EndSession(ctx context.Context, token string) error
}

// PasswordHasher хеширует и сверяет пароли
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// AuthUsecase регистрация, вход и сессии пользователей
type AuthUsecase struct {
	users     UserRepository
	sessions  SessionManager
	hasher    PasswordHasher
	generator service.Generator
	clock     service.Clock
	cfg       *config.Config
	logger    *zap.Logger
}

// NewAuthUsecase создает новый экземпляр AuthUsecase
func NewAuthUsecase(
	users UserRepository,
	sessions SessionManager,
	hasher PasswordHasher,
	generator service.Generator,
	clock service.Clock,
	cfg *config.Config,
	logger *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		sessions:  sessions,
		hasher:    hasher,
		generator: generator,
		clock:     clock,
		cfg:       cfg,
		logger:    logger,
	}
}

// URLUsecase содержит бизнес-логику для работы с короткими ссылками
type URLUsecase struct {
	users          UserRepository
	links          LinkRepository
	generator      service.Generator
	asyncProcessor *service.AsyncCodeProcessor
	clock          service.Clock
	cfg            *config.Config
	logger         *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(
	users UserRepository,
	links LinkRepository,
	generator service.Generator,
	asyncProcessor *service.AsyncCodeProcessor,
	clock service.Clock,
	cfg *config.Config,
	logger *zap.Logger,
) *URLUsecase {
	return &URLUsecase{
		users:          users,
		links:          links,
		generator:      generator,
		asyncProcessor: asyncProcessor,
		clock:          clock,
		cfg:            cfg,
		logger:         logger,
	}
}
