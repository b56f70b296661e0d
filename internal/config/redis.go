package config

import (
	"net"
	"strconv"
	"time"

	"quirknotes/pkg/db/redis"
	"quirknotes/pkg/resilience"
)

// RedisConfig представляет конфигурацию кэша заметок.
type RedisConfig struct {
	Enabled         bool          `yaml:"enabled" env:"QUIRKNOTES_REDIS_ENABLED" env-default:"false"`
	Host            string        `yaml:"host" env:"QUIRKNOTES_REDIS_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"QUIRKNOTES_REDIS_PORT" env-default:"6379"`
	Password        string        `yaml:"password" env:"QUIRKNOTES_REDIS_PASSWORD" env-default:""`
	DB              int           `yaml:"db" env:"QUIRKNOTES_REDIS_DB" env-default:"0"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"QUIRKNOTES_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"QUIRKNOTES_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"QUIRKNOTES_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize        int           `yaml:"pool_size" env:"QUIRKNOTES_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle         int           `yaml:"min_idle" env:"QUIRKNOTES_REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"QUIRKNOTES_REDIS_IDLE_TIMEOUT" env-default:"5m"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"QUIRKNOTES_REDIS_MAX_CONN_LIFETIME" env-default:"1h"`
	NoteTTL         time.Duration `yaml:"note_ttl" env:"QUIRKNOTES_REDIS_NOTE_TTL" env-default:"15m"`

	BreakerErrorThreshold   int           `yaml:"breaker_error_threshold" env:"QUIRKNOTES_REDIS_BREAKER_ERROR_THRESHOLD" env-default:"5"`
	BreakerTimeout          time.Duration `yaml:"breaker_timeout" env:"QUIRKNOTES_REDIS_BREAKER_TIMEOUT" env-default:"10s"`
	BreakerSuccessThreshold int           `yaml:"breaker_success_threshold" env:"QUIRKNOTES_REDIS_BREAKER_SUCCESS_THRESHOLD" env-default:"2"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Options переводит конфигурацию в параметры клиента.
func (c *RedisConfig) Options() redis.Options {
	return redis.Options{
		Addr:            c.GetAddress(),
		Password:        c.Password,
		DB:              c.DB,
		PoolSize:        c.PoolSize,
		MinIdle:         c.MinIdle,
		DialTimeout:     c.ConnectTimeout,
		ReadTimeout:     c.ReadTimeout,
		WriteTimeout:    c.WriteTimeout,
		IdleTimeout:     c.IdleTimeout,
		MaxConnLifetime: c.MaxConnLifetime,
	}
}

// BreakerConfig возвращает пороги выключателя кэша.
func (c *RedisConfig) BreakerConfig() resilience.Config {
	return resilience.Config{
		ErrorThreshold:   c.BreakerErrorThreshold,
		Timeout:          c.BreakerTimeout,
		SuccessThreshold: c.BreakerSuccessThreshold,
	}
}
