// Package api определяет входные порты сервиса.
package api

import (
	"context"

	"quirknotes/internal/domain/services"
)

// AuthUseCase определяет операции аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, username, password string) (*services.TokenResult, error)

	Login(ctx context.Context, username, password string) (*services.TokenResult, error)

	// Authenticate проверяет токен и возвращает имя пользователя.
	Authenticate(ctx context.Context, token string) (string, error)
}
