package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// LogLevelEnv - переменная окружения, переопределяющая уровень логирования.
const LogLevelEnv = "LOG_LEVEL"

// Config представляет основную конфигурацию pointerrss.
// Метаданные ленты фиксированы и здесь не настраиваются.
type Config struct {
	Server ServerConfig `json:"server"`
	Logger LoggerConfig `json:"logger"`
	Fetch  FetchConfig  `json:"fetch"`
	App    AppConfig    `json:"app"`
}

// ServerConfig содержит настройки HTTP-сервера режима serve.
type ServerConfig struct {
	Address string `json:"address"`
}

// LoggerConfig содержит настройки системы логирования.
// Определяет уровень детализации логов (debug, info, warn, error).
// Пустые File и ErrorFile означают вывод в stderr.
type LoggerConfig struct {
	Level     string `json:"level"`
	File      string `json:"file"`
	ErrorFile string `json:"error_file"`
}

// FetchConfig содержит параметры загрузки страницы архива.
type FetchConfig struct {
	Timeout   string `json:"timeout"`
	UserAgent string `json:"user_agent"`
}

// AppConfig содержит настройки режима serve.
type AppConfig struct {
	RefreshInterval string `json:"refresh_interval"`
}

// Load загружает конфигурацию из JSON-файла по указанному пути.
// Пустой путь означает значения по умолчанию. После чтения файла
// применяются переопределения из окружения.
func Load(configPath string) (*Config, error) {
	cfg := New()
	if configPath != "" {
		fileData, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := json.Unmarshal(fileData, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON from file %s: %w", configPath, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if level, ok := os.LookupEnv(LogLevelEnv); ok && level != "" {
		c.Logger.Level = level
	}
}

// New создает новый экземпляр Config с значениями по умолчанию.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Address: ":8080",
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		Fetch: FetchConfig{
			Timeout:   "30s",
			UserAgent: "pointerrss/1.0 (+https://www.pointer.io/)",
		},
		App: AppConfig{
			RefreshInterval: "1h",
		},
	}
}

// Validate проверяет корректность конфигурации.
// Уровень логирования сравнивается без учета регистра, как в logger.ParseLevel.
// Возвращает ошибку с описанием первой найденной проблемы.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logger.level: %q", c.Logger.Level)
	}
	timeout, err := time.ParseDuration(c.Fetch.Timeout)
	if err != nil {
		return fmt.Errorf("invalid fetch.timeout: %w", err)
	}
	if timeout < 0 {
		return fmt.Errorf("fetch.timeout must not be negative")
	}
	interval, err := time.ParseDuration(c.App.RefreshInterval)
	if err != nil {
		return fmt.Errorf("invalid app.refresh_interval: %w", err)
	}
	if interval <= 0 {
		return fmt.Errorf("app.refresh_interval must be positive")
	}
	if c.Server.Address == "" {
		return fmt.Errorf("server address is not set")
	}
	return nil
}

// FetchTimeout возвращает таймаут загрузки. Вызывать после Validate.
func (c *Config) FetchTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Fetch.Timeout)
	return d
}

// RefreshInterval возвращает интервал обновления ленты. Вызывать после Validate.
func (c *Config) RefreshInterval() time.Duration {
	d, _ := time.ParseDuration(c.App.RefreshInterval)
	return d
}
