// Package config предоставляет структуры и функции для загрузки конфигурации сервиса.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local" validate:"required"`
	Storage    Storage    `yaml:"storage"`
	HTTPServer HTTPServer `yaml:"http_server"`
	CORS       CORS       `yaml:"cors"`
	// Decoder выбирает разбор тела запроса: legacy или strict.
	Decoder string `yaml:"decoder" env:"DECODER" env-default:"legacy" validate:"oneof=legacy strict"`
}

// Storage структура для настройки подключения к базе данных
type Storage struct {
	Driver           string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"pgx" validate:"oneof=pgx sqlite"`
	ConnectionString string `yaml:"connection_string" env:"STORAGE_CONNECTION_STRING" validate:"required"`
	// MigrationsPath по умолчанию migrations/postgres или migrations/sqlite.
	MigrationsPath string `yaml:"migrations_path" env:"STORAGE_MIGRATIONS_PATH"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080" validate:"required"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// CORS структура для настройки заголовков CORS
type CORS struct {
	AllowedOrigin string `yaml:"allowed_origin" env:"CORS_ALLOWED_ORIGIN" env-default:"http://127.0.0.1:5503" validate:"required"`
}

// Load читает конфиг из файла CONFIG_PATH, а если переменная не задана,
// только из окружения. Переменные окружения перекрывают значения файла.
func Load() (*Config, error) {
	const op = "config.Load"

	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: file %s does not exist", op, configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.Storage.MigrationsPath == "" {
		cfg.Storage.MigrationsPath = defaultMigrationsPath(cfg.Storage.Driver)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

// MustLoad загружает конфиг и завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func defaultMigrationsPath(driver string) string {
	if driver == "sqlite" {
		return filepath.Join("migrations", "sqlite")
	}
	return filepath.Join("migrations", "postgres")
}

// String выводит конфиг без строки подключения к базе.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Storage:\n"+
			"  Driver: %s\n"+
			"  MigrationsPath: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"CORS:\n"+
			"  AllowedOrigin: %s\n"+
			"Decoder: %s\n",
		c.Env,
		c.Storage.Driver,
		c.Storage.MigrationsPath,
		c.HTTPServer.Address,
		c.HTTPServer.Timeout,
		c.HTTPServer.IdleTimeout,
		c.CORS.AllowedOrigin,
		c.Decoder,
	)
}
