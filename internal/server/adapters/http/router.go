// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"gotodo/internal/server/adapters/http/auth"
	"gotodo/internal/server/adapters/http/middleware"
	"gotodo/internal/server/adapters/http/todos"
	"gotodo/internal/server/ports/api"
	svc "gotodo/internal/server/ports/services"
	"gotodo/pkg/apperrors"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	userUseCase api.UserUseCase,
	todoUseCase api.TodoUseCase,
	tokenSvc svc.TokenService,
) {
	authHandler := auth.NewHandler(authUseCase, userUseCase)
	todoHandler := todos.NewHandler(todoUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Защищенные маршруты.
	userRoutes := apiV1.Group("/user")
	userRoutes.Use(middleware.NewAuthMiddleware(tokenSvc))
	userRoutes.Get("/profile", authHandler.Profile)

	// Маршруты задач (требуют авторизации).
	todoRoutes := apiV1.Group("/todos")
	todoRoutes.Use(middleware.NewAuthMiddleware(tokenSvc))
	todoRoutes.Get("/", todoHandler.List)
	todoRoutes.Post("/", todoHandler.Create)
	todoRoutes.Get("/:id", todoHandler.Get)
	todoRoutes.Patch("/:id", todoHandler.Update)
	todoRoutes.Put("/:id", todoHandler.Update)
	todoRoutes.Delete("/:id", todoHandler.Delete)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(_ fiber.Ctx) error {
		return apperrors.NotFoundError("route not found")
	})
}
