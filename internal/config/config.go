package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config конфигурация приложения.
// Источники применяются по порядку: значения по умолчанию, YAML файл,
// .env файл, переменные окружения, флаги командной строки.
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS" yaml:"server_address"`
	BaseURL         URLPrefix      `env:"BASE_URL" yaml:"base_url" validate:"required"`
	LogLevel        string         `env:"LOG_LEVEL" yaml:"log_level" validate:"oneof=debug info warn error"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout" validate:"gt=0"`

	Session  SessionConfig  `envPrefix:"SESSION_" yaml:"session"`
	Password PasswordConfig `envPrefix:"PASSWORD_" yaml:"password"`
	Code     CodeConfig     `envPrefix:"CODE_" yaml:"code"`
	Retry    RetryConfig    `envPrefix:"RETRY_" yaml:"retry"`

	// ConfigFile путь к YAML файлу, задается флагом -c или CONFIG
	ConfigFile string `env:"CONFIG" yaml:"-"`
	// EnvFile путь к .env файлу, отсутствие файла не ошибка
	EnvFile string `env:"ENV_FILE" yaml:"-"`
}

// SessionConfig настройки сессионной и посетительской кук
type SessionConfig struct {
	Secret            string        `env:"SECRET" yaml:"secret" validate:"required"`
	CookieName        string        `env:"COOKIE_NAME" yaml:"cookie_name" validate:"required"`
	VisitorCookieName string        `env:"VISITOR_COOKIE_NAME" yaml:"visitor_cookie_name" validate:"required,nefield=CookieName"`
	Secure            bool          `env:"SECURE" yaml:"secure"`
	TTL               time.Duration `env:"TTL" yaml:"ttl" validate:"gt=0"`
}

// PasswordConfig настройки хеширования паролей
type PasswordConfig struct {
	BcryptCost int `env:"BCRYPT_COST" yaml:"bcrypt_cost" validate:"min=4,max=31"`
}

// CodeConfig настройки генерации коротких кодов
type CodeConfig struct {
	Length int `env:"LENGTH" yaml:"length" validate:"min=4,max=32"`
}

// RetryConfig настройки повторов при коллизиях кодов
type RetryConfig struct {
	MaxAttempts int `env:"MAX_ATTEMPTS" yaml:"max_attempts" validate:"min=1"`
}

// NewDefaultConfig создает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:         URLPrefix("http://localhost:8080/"),
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
		Session: SessionConfig{
			Secret:            "change-me-in-production",
			CookieName:        "session",
			VisitorCookieName: "visitor_id",
			TTL:               24 * time.Hour,
		},
		Password: PasswordConfig{BcryptCost: 10},
		Code:     CodeConfig{Length: 6},
		Retry:    RetryConfig{MaxAttempts: 10},
		EnvFile:  ".env",
	}
}

// Load собирает конфигурацию из всех источников и проверяет ее
func Load(args []string) (*Config, error) {
	// Первый проход нужен только чтобы узнать пути к файлам
	probe := NewDefaultConfig()
	if err := newFlagSet(probe).Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := loadEnvFile(probe.EnvFile); err != nil {
		return nil, err
	}

	configFile := probe.ConfigFile
	if configFile == "" {
		configFile = os.Getenv("CONFIG")
	}

	cfg := NewDefaultConfig()
	if configFile != "" {
		if err := cfg.loadYAML(configFile); err != nil {
			return nil, err
		}
	}
	cfg.ConfigFile = configFile
	cfg.EnvFile = probe.EnvFile

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := newFlagSet(cfg).Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func newFlagSet(cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("tinyapp", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.BaseURL, "b", "base URL for shortened URL")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.ConfigFile, "c", cfg.ConfigFile, "path to YAML config file")
	fs.StringVar(&cfg.EnvFile, "e", cfg.EnvFile, "path to .env file")
	fs.StringVar(&cfg.Session.Secret, "s", cfg.Session.Secret, "session signing secret")
	fs.IntVar(&cfg.Code.Length, "code-length", cfg.Code.Length, "short code length")

	return fs
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	return nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}
