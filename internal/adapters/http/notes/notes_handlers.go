// Package notes содержит HTTP обработчики для работы с заметками.
package notes

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"quirknotes/internal/adapters/http/dto"
	"quirknotes/internal/adapters/http/middleware"
	"quirknotes/internal/adapters/http/response"
	"quirknotes/internal/domain/entities"
	"quirknotes/internal/ports/api"
	"quirknotes/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
)

// Сообщения ответов.
const (
	MsgNoteFieldsMissing = "Title and content are both required."
	MsgNoteAdded         = "Note added successfully."
	MsgInvalidNoteID     = "Invalid note ID."
	MsgNoteNotFound      = "Unable to find note with given ID."
)

// ParamNoteID - имя параметра пути с идентификатором заметки.
const ParamNoteID = "noteId"

// Handler обрабатывает HTTP-запросы к заметкам.
type Handler struct {
	noteUseCase api.NoteUseCase
}

// NewHandler создает обработчик заметок.
func NewHandler(noteUseCase api.NoteUseCase) *Handler {
	return &Handler{
		noteUseCase: noteUseCase,
	}
}

// CreateNote обрабатывает POST /postNote.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	username, ok := middleware.Username(ctx)
	if !ok {
		return response.Error(ctx, fiber.StatusUnauthorized, response.MsgUnauthorized)
	}

	var req dto.CreateNoteRequest
	if err := dto.BindJSON(ctx, &req); err != nil {
		log.Debug(requestCtx, response.MsgInvalidRequestBody, zap.Error(err))
		return response.Error(ctx, fiber.StatusBadRequest, response.MsgInvalidRequestBody)
	}

	if req.Title == "" || req.Content == "" {
		return response.Error(ctx, fiber.StatusBadRequest, MsgNoteFieldsMissing)
	}

	id, err := h.noteUseCase.CreateNote(requestCtx, username, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, entities.ErrEmptyTitle) || errors.Is(err, entities.ErrEmptyContent) {
			return response.Error(ctx, fiber.StatusBadRequest, MsgNoteFieldsMissing)
		}
		return response.Internal(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.CreateNoteResponse{
		Response:   MsgNoteAdded,
		InsertedID: id,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает GET /getNote/:noteId.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(requestCtx, LogHandlerGetNote)

	username, ok := middleware.Username(ctx)
	if !ok {
		return response.Error(ctx, fiber.StatusUnauthorized, response.MsgUnauthorized)
	}

	note, err := h.noteUseCase.GetNote(requestCtx, username, ctx.Params(ParamNoteID))
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidNoteID):
			return response.Error(ctx, fiber.StatusBadRequest, MsgInvalidNoteID)
		case errors.Is(err, entities.ErrNoteNotFound):
			return response.Error(ctx, fiber.StatusNotFound, MsgNoteNotFound)
		default:
			return response.Internal(ctx, err)
		}
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.GetNoteResponse{
		Response: dto.NoteFromEntity(note),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
