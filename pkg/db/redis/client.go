// Package redis предоставляет общую функцию подключения к Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"quirknotes/pkg/logger"
)

const (
	LogConnecting = "connecting to Redis"
	LogConnected  = "successfully connected to Redis"

	ErrConnect = "failed to connect to redis"
)

// Options содержит настройки подключения к Redis.
type Options struct {
	Addr            string
	Password        string
	DB              int
	PoolSize        int
	MinIdle         int
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	MaxConnLifetime time.Duration
}

// NewClient создает клиент Redis и проверяет соединение через PING.
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	log := logger.Log(ctx).With(zap.String("addr", opts.Addr))
	log.Info(ctx, LogConnecting)

	client := redis.NewClient(&redis.Options{
		Addr:            opts.Addr,
		Password:        opts.Password,
		DB:              opts.DB,
		DialTimeout:     opts.DialTimeout,
		ReadTimeout:     opts.ReadTimeout,
		WriteTimeout:    opts.WriteTimeout,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdle,
		ConnMaxIdleTime: opts.IdleTimeout,
		ConnMaxLifetime: opts.MaxConnLifetime,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Error(ctx, ErrConnect, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrConnect, err)
	}

	log.Info(ctx, LogConnected)
	return client, nil
}
