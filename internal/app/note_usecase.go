package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"quirknotes/internal/domain/entities"
	"quirknotes/internal/ports/api"
	"quirknotes/internal/ports/cache"
	"quirknotes/internal/ports/repositories"
	"quirknotes/pkg/logger"
)

const (
	methodCreateNote = "CreateNote"
	methodGetNote    = "GetNote"

	msgCreatingNote    = "creating note"
	msgNoteCreated     = "note created successfully"
	msgEmptyTitle      = "empty note title provided"
	msgEmptyContent    = "empty note content provided"
	msgInvalidNoteID   = "invalid note id"
	msgNoteCacheHit    = "note served from cache"
	msgNoteCacheFailed = "note cache unavailable"

	msgErrCreateNote = "failed to create note"
	msgErrGetNote    = "failed to get note"

	errCtxValidatingTitle   = "validating title"
	errCtxValidatingContent = "validating content"
	errCtxValidatingNoteID  = "validating note id"
	errCtxCreatingNote      = "creating note"
	errCtxGettingNote       = "getting note"
)

// NoteUseCaseImpl реализует интерфейс NoteUseCase.
type NoteUseCaseImpl struct {
	noteRepo     repositories.NoteRepository
	noteCache    cache.NoteCache
	storeTimeout time.Duration
}

// NewNoteUseCase создает сервис заметок.
func NewNoteUseCase(
	noteRepo repositories.NoteRepository,
	noteCache cache.NoteCache,
	storeTimeout time.Duration,
) api.NoteUseCase {
	return &NoteUseCaseImpl{
		noteRepo:     noteRepo,
		noteCache:    noteCache,
		storeTimeout: storeTimeout,
	}
}

// CreateNote сохраняет заметку владельца и возвращает ее идентификатор.
func (n *NoteUseCaseImpl) CreateNote(ctx context.Context, owner, title, content string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateNote), zap.String("owner", owner))
	log.Debug(ctx, msgCreatingNote)

	if title == "" {
		log.Debug(ctx, msgEmptyTitle)
		return "", fmt.Errorf("%s: %w", errCtxValidatingTitle, entities.ErrEmptyTitle)
	}
	if content == "" {
		log.Debug(ctx, msgEmptyContent)
		return "", fmt.Errorf("%s: %w", errCtxValidatingContent, entities.ErrEmptyContent)
	}

	note := entities.NewNote(owner, title, content)

	storeCtx, cancel := storeContext(ctx, n.storeTimeout)
	id, err := n.noteRepo.Create(storeCtx, note)
	cancel()
	if err != nil {
		log.Error(ctx, msgErrCreateNote, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}
	note.ID = id

	if err := n.noteCache.Put(ctx, note); err != nil {
		log.Warn(ctx, msgNoteCacheFailed, zap.Error(err))
	}

	log.Info(ctx, msgNoteCreated, zap.String("noteID", id))
	return id, nil
}

// GetNote возвращает заметку, если она принадлежит owner.
// Идентификатор проверяется до обращения к кэшу и хранилищу.
func (n *NoteUseCaseImpl) GetNote(ctx context.Context, owner, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetNote), zap.String("owner", owner))

	id, err := entities.ParseNoteID(noteID)
	if err != nil {
		log.Debug(ctx, msgInvalidNoteID, zap.String("noteID", noteID))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingNoteID, err)
	}

	cached, err := n.noteCache.Get(ctx, owner, id)
	if err != nil {
		log.Warn(ctx, msgNoteCacheFailed, zap.Error(err))
	}
	if cached != nil {
		log.Debug(ctx, msgNoteCacheHit, zap.String("noteID", id))
		return cached, nil
	}

	storeCtx, cancel := storeContext(ctx, n.storeTimeout)
	note, err := n.noteRepo.GetByID(storeCtx, id, owner)
	cancel()
	if err != nil {
		if !errors.Is(err, entities.ErrNoteNotFound) {
			log.Error(ctx, msgErrGetNote, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxGettingNote, err)
	}

	if err := n.noteCache.Put(ctx, note); err != nil {
		log.Warn(ctx, msgNoteCacheFailed, zap.Error(err))
	}

	return note, nil
}
