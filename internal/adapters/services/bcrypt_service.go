package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"quirknotes/internal/domain/services"
	svc "quirknotes/internal/ports/services"
	"quirknotes/pkg/logger"
)

const (
	errMsgFailedToGenerateHash = "failed to generate password hash"
	errMsgPasswordTooLong      = "password exceeds bcrypt limit"
	msgHashMismatchFormat      = "stored hash is not a valid bcrypt hash"
)

// ServiceBcrypt реализует PasswordService на bcrypt.
type ServiceBcrypt struct {
	cost int
}

// NewBcrypt создает сервис bcrypt. Стоимость вне допустимого диапазона заменяется на bcrypt.DefaultCost.
func NewBcrypt(cost int) svc.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &ServiceBcrypt{cost: cost}
}

// Hash хэширует пароль со случайной солью.
func (s *ServiceBcrypt) Hash(_ context.Context, password string) (string, error) {
	if password == "" {
		return "", services.ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%s: %w", errMsgPasswordTooLong, services.ErrInvalidPassword)
		}
		return "", fmt.Errorf("%s: %w: %w", errMsgFailedToGenerateHash, services.ErrHashingFailed, err)
	}

	return string(hashedBytes), nil
}

// Verify сравнивает пароль с хэшем за постоянное время.
// Несовпадение и испорченный хэш дают false без ошибки.
func (s *ServiceBcrypt) Verify(ctx context.Context, password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}

	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		logger.Log(ctx).Warn(ctx, msgHashMismatchFormat, zap.Error(err))
	}

	return false, nil
}
