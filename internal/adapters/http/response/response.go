// Package response формирует JSON-ответы об ошибках.
package response

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"quirknotes/pkg/logger"
)

// Сообщения, общие для всех обработчиков.
const (
	MsgUnauthorized       = "Unauthorized."
	MsgInvalidRequestBody = "invalid request body"
	MsgInternalError      = "Internal server error."
	MsgRouteNotFound      = "Route not found"
)

// Error отправляет {"error": message} с указанным статусом.
func Error(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(fiber.Map{"error": message}); err != nil {
		return fmt.Errorf("sending error response: %w", err)
	}
	return nil
}

// Internal логирует причину и отправляет клиенту непрозрачный ответ 500.
func Internal(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Error(requestCtx, MsgInternalError,
		zap.String("path", ctx.Path()),
		zap.Error(err))
	return Error(ctx, fiber.StatusInternalServerError, MsgInternalError)
}

// ErrorHandler - обработчик ошибок fiber для ошибок, не обработанных в хендлерах.
func ErrorHandler(ctx fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code != fiber.StatusInternalServerError {
		return Error(ctx, fiberErr.Code, fiberErr.Message)
	}
	return Internal(ctx, err)
}
