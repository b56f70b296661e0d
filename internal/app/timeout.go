// Package app содержит сценарии регистрации, входа и работы с заметками.
package app

import (
	"context"
	"time"
)

// storeContext ограничивает обращение к хранилищу таймаутом.
func storeContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
