// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"quirknotes/internal/adapters/http/response"
	"quirknotes/internal/ports/api"
	"quirknotes/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"
	LogAuthenticated  = "request authenticated"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorTokenRejected      = "token rejected"

	bearerScheme = "Bearer"
)

// LocalsUsername - ключ fiber locals с именем аутентифицированного пользователя.
const LocalsUsername = "username"

// Username возвращает имя пользователя, установленное NewAuthMiddleware.
func Username(ctx fiber.Ctx) (string, bool) {
	username, ok := ctx.Locals(LocalsUsername).(string)
	return username, ok && username != ""
}

// NewAuthMiddleware проверяет bearer-токен и связывает запрос с пользователем.
// Отсутствующий заголовок дает 401 до любого разбора.
func NewAuthMiddleware(authUseCase api.AuthUseCase) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return response.Error(ctx, fiber.StatusUnauthorized, response.MsgUnauthorized)
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return response.Error(ctx, fiber.StatusUnauthorized, response.MsgUnauthorized)
		}

		username, err := authUseCase.Authenticate(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorTokenRejected, zap.Error(err))
			return response.Error(ctx, fiber.StatusUnauthorized, response.MsgUnauthorized)
		}

		ctx.Locals(LocalsUsername, username)
		log.Debug(requestCtx, LogAuthenticated, zap.String("username", username))

		return ctx.Next()
	}
}

// bearerToken извлекает токен из заголовка вида "Bearer <token>". Схема сравнивается без учета регистра.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
