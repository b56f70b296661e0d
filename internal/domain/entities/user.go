// Package entities содержит доменные сущности сервиса заметок.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// User - учетная запись. Создается при регистрации и больше не меняется.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
