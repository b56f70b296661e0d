package config

import (
	"time"

	"quirknotes/pkg/logger"
)

// LoggingConfig содержит настройки логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"QUIRKNOTES_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"QUIRKNOTES_LOGGER_MODE" env-default:"development"`
}

// GetEnvironment переводит строку режима в logger.Environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == string(logger.Production) {
		return logger.Production
	}
	return logger.Development
}

// ShutdownConfig содержит настройки graceful shutdown.
type ShutdownConfig struct {
	Timeout int `yaml:"timeout" env:"QUIRKNOTES_GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"5"`
}

// GetTimeout возвращает timeout как time.Duration.
func (s *ShutdownConfig) GetTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// StoreConfig ограничивает время обращений к хранилищу.
type StoreConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"QUIRKNOTES_STORE_TIMEOUT" env-default:"5s"`
}
