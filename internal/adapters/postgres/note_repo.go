package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"quirknotes/internal/domain/entities"
	"quirknotes/internal/ports/repositories"
	"quirknotes/pkg/logger"
)

const (
	errCtxCreatingNote = "error creating note"
	errCtxQueryingNote = "error querying note"
	logNoteNotFound    = "note not found"
	logNoteCreated     = "note created"
)

// NoteRepository реализует repositories.NoteRepository для Postgres.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет заметку и возвращает ее идентификатор.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (string, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))

	query := `
        INSERT INTO notes (id, owner, title, content, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `

	var id string
	err := r.pool.QueryRow(ctx, query,
		note.ID,
		note.Owner,
		note.Title,
		note.Content,
		note.CreatedAt,
	).Scan(&id)

	if err != nil {
		log.Error(ctx, errCtxCreatingNote, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Debug(ctx, logNoteCreated, zap.String("id", id), zap.String("owner", note.Owner))
	return id, nil
}

// GetByID возвращает заметку владельца. Чужая и несуществующая заметка неразличимы.
func (r *NoteRepository) GetByID(ctx context.Context, noteID, owner string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByID"))

	query := `
        SELECT id, owner, title, content, created_at
        FROM notes
        WHERE id = $1 AND owner = $2
    `

	var note entities.Note
	err := r.pool.QueryRow(ctx, query, noteID, owner).Scan(
		&note.ID,
		&note.Owner,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, logNoteNotFound, zap.String("id", noteID), zap.String("owner", owner))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, errCtxQueryingNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxQueryingNote, err)
	}

	return &note, nil
}
