// Package auth содержит HTTP обработчики регистрации и входа.
package auth

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"quirknotes/internal/adapters/http/dto"
	"quirknotes/internal/adapters/http/response"
	"quirknotes/internal/domain/entities"
	"quirknotes/internal/domain/services"
	"quirknotes/internal/ports/api"
	"quirknotes/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"
)

// Сообщения ответов.
const (
	MsgUserRegistered        = "User registered successfully."
	MsgRegisterFieldsMissing = "Username and password both needed to register."
	MsgUsernameExists        = "Username already exists."
	MsgPasswordTooLong       = "Password must be at most 72 bytes."
	MsgUserLoggedIn          = "User logged in successfully."
	MsgLoginFieldsMissing    = "Username and password both needed to login."
	MsgAuthenticationFailed  = "Authentication failed."
)

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает обработчик аутентификации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
	}
}

// Register обрабатывает POST /registerUser.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := dto.BindJSON(ctx, &req); err != nil {
		log.Debug(requestCtx, response.MsgInvalidRequestBody, zap.Error(err))
		return response.Error(ctx, fiber.StatusBadRequest, response.MsgInvalidRequestBody)
	}

	if req.Username == "" || req.Password == "" {
		return response.Error(ctx, fiber.StatusBadRequest, MsgRegisterFieldsMissing)
	}

	result, err := h.authUseCase.Register(requestCtx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrEmptyUsername), errors.Is(err, entities.ErrEmptyPassword):
			return response.Error(ctx, fiber.StatusBadRequest, MsgRegisterFieldsMissing)
		case errors.Is(err, entities.ErrUsernameTaken):
			return response.Error(ctx, fiber.StatusBadRequest, MsgUsernameExists)
		case errors.Is(err, services.ErrInvalidPassword):
			return response.Error(ctx, fiber.StatusBadRequest, MsgPasswordTooLong)
		default:
			return response.Internal(ctx, err)
		}
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.TokenResponse{
		Response: MsgUserRegistered,
		Token:    result.AccessToken,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает POST /loginUser.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := dto.BindJSON(ctx, &req); err != nil {
		log.Debug(requestCtx, response.MsgInvalidRequestBody, zap.Error(err))
		return response.Error(ctx, fiber.StatusBadRequest, response.MsgInvalidRequestBody)
	}

	if req.Username == "" || req.Password == "" {
		return response.Error(ctx, fiber.StatusBadRequest, MsgLoginFieldsMissing)
	}

	result, err := h.authUseCase.Login(requestCtx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrEmptyUsername), errors.Is(err, entities.ErrEmptyPassword):
			return response.Error(ctx, fiber.StatusBadRequest, MsgLoginFieldsMissing)
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.Error(ctx, fiber.StatusUnauthorized, MsgAuthenticationFailed)
		default:
			return response.Internal(ctx, err)
		}
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.TokenResponse{
		Response: MsgUserLoggedIn,
		Token:    result.AccessToken,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
