package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quirknotes/internal/domain/entities"
	"quirknotes/internal/ports/cache"
	"quirknotes/pkg/resilience"
)

const (
	noteKeyPrefix = "note:"

	errCtxDecodeNote = "failed to decode cached note"
	errCtxEncodeNote = "failed to encode note"
)

// NoteCache хранит заметки в JSON под ключом note:<owner>:<id>.
// Обращения к хранилищу идут через выключатель, чтобы недоступный Redis не тормозил запросы.
type NoteCache struct {
	store   cache.Cache
	ttl     time.Duration
	breaker *resilience.CircuitBreaker
}

// NewNoteCache создает кэш заметок.
func NewNoteCache(store cache.Cache, ttl time.Duration, breaker *resilience.CircuitBreaker) *NoteCache {
	return &NoteCache{
		store:   store,
		ttl:     ttl,
		breaker: breaker,
	}
}

var _ cache.NoteCache = (*NoteCache)(nil)

// NoteKey возвращает ключ заметки. Владелец входит в ключ.
func NoteKey(owner, noteID string) string {
	return noteKeyPrefix + owner + ":" + noteID
}

// Get возвращает заметку владельца или nil, nil при промахе.
func (c *NoteCache) Get(ctx context.Context, owner, noteID string) (*entities.Note, error) {
	var raw string
	err := c.breaker.Execute(ctx, func() error {
		var getErr error
		raw, getErr = c.store.Get(ctx, NoteKey(owner, noteID))
		return getErr
	})
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var note entities.Note
	if err := json.Unmarshal([]byte(raw), &note); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxDecodeNote, err)
	}
	if note.Owner != owner || note.ID != noteID {
		return nil, nil
	}

	return &note, nil
}

// Put сохраняет заметку на время ttl.
func (c *NoteCache) Put(ctx context.Context, note *entities.Note) error {
	raw, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxEncodeNote, err)
	}

	return c.breaker.Execute(ctx, func() error {
		return c.store.Set(ctx, NoteKey(note.Owner, note.ID), string(raw), c.ttl)
	})
}

// NopNoteCache используется, когда Redis выключен.
type NopNoteCache struct{}

// Get всегда сообщает о промахе.
func (NopNoteCache) Get(context.Context, string, string) (*entities.Note, error) {
	return nil, nil
}

// Put ничего не делает.
func (NopNoteCache) Put(context.Context, *entities.Note) error {
	return nil
}
