// Package main реализует точку входа сервиса заметок.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"quirknotes/internal/adapters/cache"
	httpadapter "quirknotes/internal/adapters/http"
	"quirknotes/internal/adapters/postgres"
	"quirknotes/internal/adapters/services"
	"quirknotes/internal/app"
	"quirknotes/internal/config"
	"quirknotes/internal/db"
	portcache "quirknotes/internal/ports/cache"
	pkgredis "quirknotes/pkg/db/redis"
	"quirknotes/pkg/logger"
	"quirknotes/pkg/resilience"
	"quirknotes/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "QUIRKNOTES_LOGGER_MODE"
	EnvLoggerLevel = "QUIRKNOTES_LOGGER_LEVEL"
	EnvFile        = ".env"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrInitRedis            = "failed to connect to redis"
	ErrStartHTTPServer      = "failed to start HTTP server"
	ErrShutdown             = "graceful shutdown finished with errors"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "quirknotes service started"
	LogServiceShutdownDone = "quirknotes service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingRedis        = "closing redis connection"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitCache           = "initializing note cache"
	LogCacheDisabled       = "redis disabled, note cache is off"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

const noteCacheBreaker = "note-cache"

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == string(logger.Production) {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := logger.Log(ctx).Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx, EnvFile)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres, cfg.Postgres.MigrationsDir)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())
		userRepo := repoFactory.UserRepository()
		noteRepo := repoFactory.NoteRepository()

		log.Info(ctx, LogInitServices)
		serviceFactory := services.NewServiceFactory(
			cfg.JWT.SecretKey,
			cfg.JWT.GetTokenTTL(),
			cfg.JWT.BCryptCost,
		)
		passwordService := serviceFactory.PasswordService()
		tokenService := serviceFactory.TokenService()

		log.Info(ctx, LogInitCache)
		var (
			noteCache  portcache.NoteCache = cache.NopNoteCache{}
			redisStore portcache.Cache
		)
		if cfg.Redis.Enabled {
			redisClient, err := pkgredis.NewClient(ctx, cfg.Redis.Options())
			if err != nil {
				log.Error(ctx, ErrInitRedis, zap.Error(err))
				database.Close(ctx)
				exitCode = 1
				return
			}
			redisStore = cache.NewRedisCache(redisClient, cfg.Redis.NoteTTL)
			noteCache = cache.NewNoteCache(
				redisStore,
				cfg.Redis.NoteTTL,
				resilience.NewCircuitBreaker(noteCacheBreaker, cfg.Redis.BreakerConfig()),
			)
		} else {
			log.Info(ctx, LogCacheDisabled)
		}

		log.Info(ctx, LogInitUseCases)
		authUseCase := app.NewAuthUseCase(userRepo, passwordService, tokenService, cfg.Store.Timeout)
		noteUseCase := app.NewNoteUseCase(noteRepo, noteCache, cfg.Store.Timeout)

		log.Info(ctx, LogInitHTTPServer)
		server := httpadapter.NewServer(cfg.HTTP)
		httpadapter.SetupRouter(server, authUseCase, noteUseCase)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := server.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		if err := shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return server.ShutdownWithContext(ctx)
			},
			func(ctx context.Context) error {
				if redisStore == nil {
					return nil
				}
				log.Info(ctx, LogClosingRedis)
				return redisStore.Close()
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				database.Close(ctx)
				return nil
			},
		); err != nil {
			log.Error(ctx, ErrShutdown, zap.Error(err))
			exitCode = 1
		}

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
