package logger

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

var globalLogger atomic.Pointer[Logger]

// fallbackLogger пишет только предупреждения и ошибки, пока глобальный logger не установлен.
var fallbackLogger = sync.OnceValue(func() *Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	zapLogger, err := config.Build()
	if err != nil {
		zapLogger = zap.NewNop()
	}
	return &Logger{l: zapLogger.With(zap.String("logger", "fallback"))}
})

// NewContext кладет logger в контекст. Log(ctx) вернет именно его.
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// SetGlobalLogger устанавливает глобальный logger. nil возвращает резервный.
func SetGlobalLogger(logger *Logger) {
	globalLogger.Store(logger)
}

// Log возвращает logger из контекста, иначе глобальный, иначе резервный.
func Log(ctx context.Context) *Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*Logger); ok {
			return logger
		}
	}
	if logger := globalLogger.Load(); logger != nil {
		return logger
	}
	return fallbackLogger()
}
