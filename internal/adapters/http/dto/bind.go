package dto

import (
	"bytes"

	"github.com/gofiber/fiber/v3"
)

// BindJSON разбирает JSON тело запроса в out. Пустое тело оставляет out нулевым,
// и обработчик отвечает сообщением о незаполненных полях.
func BindJSON(ctx fiber.Ctx, out any) error {
	if len(bytes.TrimSpace(ctx.Body())) == 0 {
		return nil
	}
	return ctx.Bind().JSON(out)
}
