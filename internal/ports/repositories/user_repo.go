// Package repositories определяет порты хранилищ.
package repositories

import (
	"context"

	"quirknotes/internal/domain/entities"
)

// UserRepository - хранилище учетных данных.
type UserRepository interface {
	// Create возвращает entities.ErrUsernameTaken, если имя уже занято.
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	// FindByUsername возвращает entities.ErrUserNotFound, если пользователя нет.
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}
