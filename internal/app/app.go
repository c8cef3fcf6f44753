package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc-dev/tinyapp/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App представляет приложение TinyApp
type App struct {
	config *config.Config
	logger *zap.Logger
	router http.Handler
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	deps := initDependencies(cfg, logger)

	return &App{
		config: cfg,
		logger: logger,
		router: newRouter(deps, logger),
	}, nil
}

// Run запускает приложение и ждет сигнала остановки
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.serve(ctx)
}

// Close сбрасывает буферы логгера
func (a *App) Close() {
	_ = a.logger.Sync()
}

// newLogger создает production логгер с заданным уровнем
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}
