package api

import (
	"context"

	"quirknotes/internal/domain/entities"
)

// NoteUseCase определяет операции с заметками от имени владельца.
type NoteUseCase interface {
	CreateNote(ctx context.Context, owner, title, content string) (string, error)

	GetNote(ctx context.Context, owner, noteID string) (*entities.Note, error)
}
