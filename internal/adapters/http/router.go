// Package http собирает HTTP сервер и маршруты.
package http

import (
	"github.com/gofiber/fiber/v3"

	"quirknotes/internal/adapters/http/auth"
	"quirknotes/internal/adapters/http/middleware"
	"quirknotes/internal/adapters/http/notes"
	"quirknotes/internal/adapters/http/response"
	"quirknotes/internal/config"
	"quirknotes/internal/ports/api"
)

// NewServer создает fiber-приложение с настройками из конфигурации.
func NewServer(cfg config.HTTPConfig) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      config.ServiceName,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: response.ErrorHandler,
	})
}

// SetupRouter настраивает маршрутизацию.
func SetupRouter(app *fiber.App, authUseCase api.AuthUseCase, noteUseCase api.NoteUseCase) {
	authHandler := auth.NewHandler(authUseCase)
	notesHandler := notes.NewHandler(noteUseCase)
	requireAuth := middleware.NewAuthMiddleware(authUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Публичные маршруты.
	app.Post("/registerUser", authHandler.Register)
	app.Post("/loginUser", authHandler.Login)

	// Защищенные маршруты. Fiber вызывает middleware маршрута до обработчика.
	app.Post("/postNote", notesHandler.CreateNote, requireAuth)
	app.Get("/getNote/:"+notes.ParamNoteID, notesHandler.GetNote, requireAuth)

	app.Use(func(c fiber.Ctx) error {
		return response.Error(c, fiber.StatusNotFound, response.MsgRouteNotFound)
	})
}
