// Package shutdown предоставляет функциональность для корректного завершения приложения
// путем ожидания сигналов SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"quirknotes/pkg/logger"
)

const (
	LogSignalReceived = "shutdown signal received"
	LogContextDone    = "parent context done, shutting down"
	LogHooksTimedOut  = "shutdown hooks did not finish before timeout"
	LogHookFailed     = "shutdown hook failed"
)

// ErrTimeout возвращается, если хуки не уложились в timeout.
var ErrTimeout = errors.New("graceful shutdown timed out")

// Hook - действие, выполняемое при завершении.
type Hook func(ctx context.Context) error

// Wait блокируется до сигнала SIGINT/SIGTERM или отмены ctx,
// затем параллельно выполняет хуки в пределах timeout.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) error {
	log := logger.Log(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		log.Info(ctx, LogSignalReceived, zap.String("signal", sig.String()))
	case <-ctx.Done():
		log.Info(ctx, LogContextDone)
	}

	return RunHooks(context.WithoutCancel(ctx), timeout, hooks...)
}

// RunHooks параллельно выполняет хуки и собирает их ошибки.
func RunHooks(ctx context.Context, timeout time.Duration, hooks ...Hook) error {
	log := logger.Log(ctx)

	hookCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, hook := range hooks {
		wg.Add(1)
		go func(fn Hook) {
			defer wg.Done()
			if err := fn(hookCtx); err != nil {
				log.Warn(hookCtx, LogHookFailed, zap.Error(err))
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-hookCtx.Done():
		log.Warn(ctx, LogHooksTimedOut, zap.Duration("timeout", timeout))
		return fmt.Errorf("%w after %s", ErrTimeout, timeout)
	}

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(errs...)
}
