package app

import (
	"github.com/avc-dev/tinyapp/internal/config"
	"github.com/avc-dev/tinyapp/internal/handler"
	"github.com/avc-dev/tinyapp/internal/middleware"
	"github.com/avc-dev/tinyapp/internal/repository"
	"github.com/avc-dev/tinyapp/internal/service"
	"github.com/avc-dev/tinyapp/internal/store"
	"github.com/avc-dev/tinyapp/internal/usecase"
	"go.uber.org/zap"
)

// deleteWorkers количество воркеров проверки владения при пакетном удалении
const deleteWorkers = 4

type dependencies struct {
	handler *handler.Handler
	auth    *middleware.AuthMiddleware
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) *dependencies {
	return initDependenciesWithClock(cfg, logger, service.RealClock{})
}

func initDependenciesWithClock(cfg *config.Config, logger *zap.Logger, clock service.Clock) *dependencies {
	repo := repository.New(store.NewUserStore(), store.NewLinkStore(), store.NewSessionStore())
	logger.Info("Using in-memory storage")

	generator := service.NewCodeGenerator(cfg.Code.Length)
	hasher := service.NewPasswordHasher(cfg.Password.BcryptCost)
	sessions := service.NewAuthService(cfg.Session.Secret, cfg.Session.TTL, repo, clock)

	authUsecase := usecase.NewAuthUsecase(repo, sessions, hasher, generator, clock, cfg, logger)
	urlUsecase := usecase.NewURLUsecase(repo, repo, generator, service.NewAsyncCodeProcessor(deleteWorkers), clock, cfg, logger)

	authMiddleware := middleware.NewAuthMiddleware(authUsecase, sessions, cfg.Session, logger)

	return &dependencies{
		handler: handler.New(authUsecase, urlUsecase, authMiddleware, cfg, logger),
		auth:    authMiddleware,
	}
}
