package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Ошибки домена заметок.
var (
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrEmptyContent  = errors.New("content cannot be empty")
	ErrInvalidNoteID = errors.New("invalid note id")
	ErrNoteNotFound  = errors.New("note not found or not owned by user")
)

// Note - заметка пользователя. Неизменяема после создания.
type Note struct {
	ID        string    `json:"id"`
	Owner     string    `json:"username"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNote создает заметку с новым идентификатором.
func NewNote(owner, title, content string) *Note {
	return &Note{
		ID:        uuid.NewString(),
		Owner:     owner,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// ParseNoteID проверяет, что id является корректным UUID, и возвращает его каноничную форму.
func ParseNoteID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", ErrInvalidNoteID
	}
	return parsed.String(), nil
}
