package services

import (
	"context"
	"time"
)

// TokenService выпускает и проверяет токены доступа.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, username string) (string, time.Time, error)

	ValidateAccessToken(ctx context.Context, token string) (string, error)
}
