// Package cache определяет порты кэширования.
package cache

import (
	"context"
	"time"

	"quirknotes/internal/domain/entities"
)

// Cache - строковое хранилище ключ-значение с TTL.
// Get возвращает пустую строку без ошибки при промахе.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Close освобождает соединение с хранилищем.
	Close() error
}

// NoteCache кэширует заметки по паре владелец+идентификатор.
type NoteCache interface {
	// Get возвращает nil, nil при промахе.
	Get(ctx context.Context, owner, noteID string) (*entities.Note, error)

	Put(ctx context.Context, note *entities.Note) error
}
