// Package services описывает доменные ошибки и типы сервисов аутентификации.
package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrTokenGenerationFailed = errors.New("failed to generate authentication token")
)

// TokenResult - результат регистрации или входа.
type TokenResult struct {
	Username    string
	AccessToken string
	ExpiresAt   time.Time
}
