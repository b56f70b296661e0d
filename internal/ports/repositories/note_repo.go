package repositories

import (
	"context"

	"quirknotes/internal/domain/entities"
)

// NoteRepository - хранилище заметок. Чтение всегда ограничено владельцем.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (string, error)

	// GetByID возвращает entities.ErrNoteNotFound, если заметки нет или она чужая.
	GetByID(ctx context.Context, noteID, owner string) (*entities.Note, error)
}
