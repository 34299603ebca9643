// Package todos содержит HTTP обработчики управления задачами.
package todos

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gotodo/internal/server/adapters/http/middleware"
	domain "gotodo/internal/server/domain/services"
	"gotodo/internal/server/ports/api"
	"gotodo/pkg/apperrors"
	"gotodo/pkg/httpx"
	"gotodo/pkg/logger"
)

// Константы для логирования и сообщений об ошибках.
const (
	ErrorInvalidRequestBody = "invalid request body"
	ErrorInvalidTodoID      = "invalid todo id"
	ErrorMissingUserContext = "missing user context"

	MsgTodoCreated = "todo created successfully"
	MsgTodoUpdated = "todo updated successfully"
	MsgTodoDeleted = "todo deleted successfully"
)

// Handler обрабатывает HTTP запросы к задачам.
type Handler struct {
	todoUseCase api.TodoUseCase
}

// NewHandler создает новый обработчик задач.
func NewHandler(todoUseCase api.TodoUseCase) *Handler {
	return &Handler{todoUseCase: todoUseCase}
}

// List возвращает все задачи действующего пользователя.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return apperrors.UnauthorizedError(ErrorMissingUserContext)
	}

	views, err := h.todoUseCase.ListTodos(requestCtx, userID)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(httpx.SuccessResponse(views, ""))
}

// Get возвращает задачу по идентификатору.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return apperrors.UnauthorizedError(ErrorMissingUserContext)
	}

	todoID, err := parseTodoID(ctx)
	if err != nil {
		return err
	}

	view, err := h.todoUseCase.GetTodo(requestCtx, todoID, userID)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(httpx.SuccessResponse(view, ""))
}

// Create создает новую задачу.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "CreateTodo"))

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return apperrors.UnauthorizedError(ErrorMissingUserContext)
	}

	var input domain.CreateTodoInput
	if err := ctx.Bind().Body(&input); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequestBody, zap.Error(err))
		return apperrors.ValidationError(ErrorInvalidRequestBody)
	}

	view, err := h.todoUseCase.CreateTodo(requestCtx, userID, input)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(httpx.SuccessResponse(view, MsgTodoCreated))
}

// Update частично обновляет задачу.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "UpdateTodo"))

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return apperrors.UnauthorizedError(ErrorMissingUserContext)
	}

	todoID, err := parseTodoID(ctx)
	if err != nil {
		return err
	}

	var input domain.UpdateTodoInput
	if err := ctx.Bind().Body(&input); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequestBody, zap.Error(err))
		return apperrors.ValidationError(ErrorInvalidRequestBody)
	}

	view, err := h.todoUseCase.UpdateTodo(requestCtx, todoID, userID, input)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(httpx.SuccessResponse(view, MsgTodoUpdated))
}

// Delete удаляет задачу.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return apperrors.UnauthorizedError(ErrorMissingUserContext)
	}

	todoID, err := parseTodoID(ctx)
	if err != nil {
		return err
	}

	if err := h.todoUseCase.DeleteTodo(requestCtx, todoID, userID); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(httpx.SuccessResponse(nil, MsgTodoDeleted))
}

func parseTodoID(ctx fiber.Ctx) (int64, error) {
	todoID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || todoID <= 0 {
		return 0, apperrors.ValidationError(ErrorInvalidTodoID)
	}
	return todoID, nil
}
