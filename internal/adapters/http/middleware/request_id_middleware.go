package middleware

import (
	"github.com/gofiber/fiber/v3"

	"quirknotes/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = fiber.HeaderXRequestID

// NewRequestIDMiddleware берет идентификатор запроса из заголовка или генерирует новый
// и кладет его в контекст запроса для логирования.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderRequestID))
		ctx.SetContext(requestCtx)

		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(HeaderRequestID, id)
		}

		return ctx.Next()
	}
}
