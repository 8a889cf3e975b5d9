package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// Переменные окружения, переопределяющие секреты из файла
const (
	EnvTelegramToken  = "BACCALA_TELEGRAM_TOKEN"
	EnvTelegramChatID = "BACCALA_TELEGRAM_CHAT_ID"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Telegram TelegramConfig `toml:"telegram"`
	Shop     ShopConfig     `toml:"shop"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TelegramConfig параметры шлюза уведомлений.
// Пустые token/chat_id допустимы: сервис стартует, но каждая отправка завершится ошибкой.
type TelegramConfig struct {
	Token       string `toml:"token"`
	ChatID      string `toml:"chat_id"`
	APIEndpoint string `toml:"api_endpoint"` // формат с двумя %s: токен и метод
	Timeout     int    `toml:"timeout"`      // секунды
}

// ShopConfig параметры формы бронирования
type ShopConfig struct {
	Timezone           string `toml:"timezone"`
	GramsPerPerson     int    `toml:"grams_per_person"`
	DefaultPersonCount int    `toml:"default_person_count"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    20,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "baccala-market",
		},
		Telegram: TelegramConfig{
			Timeout: 10,
		},
		Shop: ShopConfig{
			Timezone:           "Europe/Rome",
			GramsPerPerson:     200,
			DefaultPersonCount: 2,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию,
// применяет переменные окружения и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvTelegramToken); ok {
		c.Telegram.Token = v
	}
	if v, ok := os.LookupEnv(EnvTelegramChatID); ok {
		c.Telegram.ChatID = v
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Telegram.Timeout <= 0 {
		return fmt.Errorf("%w: telegram.timeout must be positive", ErrInvalidConfig)
	}
	if c.Telegram.APIEndpoint != "" && strings.Count(c.Telegram.APIEndpoint, "%s") != 2 {
		return fmt.Errorf("%w: telegram.api_endpoint must contain two %%s placeholders", ErrInvalidConfig)
	}
	if c.Shop.GramsPerPerson <= 0 {
		return fmt.Errorf("%w: shop.grams_per_person must be positive", ErrInvalidConfig)
	}
	if c.Shop.DefaultPersonCount < 1 || c.Shop.DefaultPersonCount > 50 {
		return fmt.Errorf("%w: shop.default_person_count must be in 1..50", ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.Shop.Timezone); err != nil {
		return fmt.Errorf("%w: shop.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}
	return nil
}

// Location возвращает часовой пояс магазина
func (s ShopConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TelegramTimeout таймаут вызова Bot API
func (c *Config) TelegramTimeout() time.Duration {
	return time.Duration(c.Telegram.Timeout) * time.Second
}
