package dto

import (
	"time"

	"quirknotes/internal/domain/entities"
)

// CreateNoteRequest содержит данные новой заметки.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateNoteResponse - ответ на создание заметки.
type CreateNoteResponse struct {
	Response   string `json:"response"`
	InsertedID string `json:"insertedId"`
}

// NoteResponse - представление заметки в ответе.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// GetNoteResponse - ответ на получение заметки.
type GetNoteResponse struct {
	Response NoteResponse `json:"response"`
}

// NoteFromEntity переводит доменную заметку в ответ API.
func NoteFromEntity(note *entities.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Username:  note.Owner,
		CreatedAt: note.CreatedAt,
	}
}
