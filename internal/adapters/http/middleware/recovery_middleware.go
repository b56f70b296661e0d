package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"quirknotes/internal/adapters/http/response"
	"quirknotes/pkg/logger"
)

// Константы для логирования.
const (
	LogServerPanic         = "server panic"
	LogFailedPanicResponse = "failed to send error response after panic"
)

// NewRecoveryMiddleware перехватывает панику обработчика и отвечает 500.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		requestCtx := ctx.Context()

		defer func() {
			if r := recover(); r != nil {
				log := logger.Log(requestCtx)
				log.Error(requestCtx, LogServerPanic,
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)

				if sendErr := response.Error(ctx, fiber.StatusInternalServerError, response.MsgInternalError); sendErr != nil {
					log.Error(requestCtx, LogFailedPanicResponse, zap.Error(sendErr))
				}
				err = nil
			}
		}()

		return ctx.Next()
	}
}
