package app

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"gotodo/internal/server/domain/entities"
	domain "gotodo/internal/server/domain/services"
	"gotodo/internal/server/ports/api"
	"gotodo/internal/server/ports/repositories"
	svc "gotodo/internal/server/ports/services"
	"gotodo/pkg/apperrors"
	"gotodo/pkg/logger"
)

const (
	methodListTodos  = "ListTodos"
	methodGetTodo    = "GetTodo"
	methodCreateTodo = "CreateTodo"
	methodUpdateTodo = "UpdateTodo"
	methodDeleteTodo = "DeleteTodo"

	msgTodoNotFound     = "todo not found"
	msgForeignTodo      = "todo belongs to another user"
	msgTodosCacheHit    = "todo list served from cache"
	msgErrCacheRead     = "failed to read todo list cache"
	msgErrCacheWrite    = "failed to write todo list cache"
	msgErrCacheInvalid  = "failed to invalidate todo list cache"
	msgErrListTodos     = "error listing todos"
	msgErrGetTodo       = "error retrieving todo"
	msgErrCreateTodo    = "error creating todo"
	msgErrUpdateTodo    = "error updating todo"
	msgErrDeleteTodo    = "error deleting todo"

	errMsgTodos = "todo operation failed"

	todosCacheKeyPrefix = "todos:user:"
	todosCacheTTL       = 5 * time.Minute
)

// TodoUseCaseImpl реализует интерфейс TodoUseCase. Список задач пользователя
// кэшируется в Redis; кэш используется по возможности, его сбои логируются
// и не влияют на результат операции.
type TodoUseCaseImpl struct {
	todoRepo repositories.TodoRepository
	cache    svc.Cache
}

// NewTodoUseCase создает новый экземпляр сервиса задач.
func NewTodoUseCase(todoRepo repositories.TodoRepository, cache svc.Cache) api.TodoUseCase {
	return &TodoUseCaseImpl{todoRepo: todoRepo, cache: cache}
}

// ListTodos возвращает все задачи пользователя.
func (t *TodoUseCaseImpl) ListTodos(ctx context.Context, userID int64) ([]*domain.TodoView, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListTodos), zap.Int64("userID", userID))

	if views, ok := t.readCachedTodos(ctx, userID); ok {
		log.Debug(ctx, msgTodosCacheHit)
		return views, nil
	}

	todos, err := t.todoRepo.FindByUserID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrListTodos, zap.Error(err))
		return nil, apperrors.InternalError(errMsgTodos, err)
	}

	views := make([]*domain.TodoView, 0, len(todos))
	for _, todo := range todos {
		views = append(views, todoToView(todo))
	}

	t.writeCachedTodos(ctx, userID, views)

	return views, nil
}

// GetTodo возвращает задачу пользователя по идентификатору. Чужая задача
// неотличима от несуществующей.
func (t *TodoUseCaseImpl) GetTodo(ctx context.Context, id, userID int64) (*domain.TodoView, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetTodo), zap.Int64("todoID", id))

	todo, err := t.findOwnedTodo(ctx, log, id, userID)
	if err != nil {
		return nil, err
	}

	return todoToView(todo), nil
}

// CreateTodo создает новую задачу пользователя.
func (t *TodoUseCaseImpl) CreateTodo(ctx context.Context, userID int64, input domain.CreateTodoInput) (*domain.TodoView, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateTodo), zap.Int64("userID", userID))

	if input.Title == "" {
		return nil, apperrors.ValidationError(entities.ErrEmptyTodoTitle.Error())
	}
	if len(input.Title) > entities.MaxTodoTitleLength {
		return nil, apperrors.ValidationError(entities.ErrTodoTitleTooLong.Error())
	}

	created, err := t.todoRepo.Create(ctx, &entities.Todo{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
	})
	if err != nil {
		log.Error(ctx, msgErrCreateTodo, zap.Error(err))
		return nil, apperrors.InternalError(errMsgTodos, err)
	}

	t.invalidateCachedTodos(ctx, userID)

	return todoToView(created), nil
}

// UpdateTodo частично обновляет задачу пользователя. Завершение задачи
// выставляет CompletedAt, снятие завершения очищает его.
func (t *TodoUseCaseImpl) UpdateTodo(ctx context.Context, id, userID int64, input domain.UpdateTodoInput) (*domain.TodoView, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateTodo), zap.Int64("todoID", id))

	todo, err := t.findOwnedTodo(ctx, log, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, apperrors.ValidationError(entities.ErrEmptyTodoTitle.Error())
		}
		if len(*input.Title) > entities.MaxTodoTitleLength {
			return nil, apperrors.ValidationError(entities.ErrTodoTitleTooLong.Error())
		}
		todo.Title = *input.Title
	}
	if input.Description != nil {
		todo.Description = *input.Description
	}
	if input.DueDate != nil {
		todo.DueDate = input.DueDate
	}
	if input.IsCompleted != nil {
		switch {
		case !todo.IsCompleted && *input.IsCompleted:
			now := time.Now().UTC()
			todo.CompletedAt = &now
		case todo.IsCompleted && !*input.IsCompleted:
			todo.CompletedAt = nil
		}
		todo.IsCompleted = *input.IsCompleted
	}

	updated, err := t.todoRepo.Update(ctx, todo)
	if err != nil {
		log.Error(ctx, msgErrUpdateTodo, zap.Error(err))
		return nil, apperrors.InternalError(errMsgTodos, err)
	}

	t.invalidateCachedTodos(ctx, userID)

	return todoToView(updated), nil
}

// DeleteTodo удаляет задачу пользователя.
func (t *TodoUseCaseImpl) DeleteTodo(ctx context.Context, id, userID int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteTodo), zap.Int64("todoID", id))

	if _, err := t.findOwnedTodo(ctx, log, id, userID); err != nil {
		return err
	}

	if err := t.todoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, entities.ErrTodoNotFound) {
			return apperrors.NotFoundError(entities.ErrTodoNotFound.Error())
		}
		log.Error(ctx, msgErrDeleteTodo, zap.Error(err))
		return apperrors.InternalError(errMsgTodos, err)
	}

	t.invalidateCachedTodos(ctx, userID)

	return nil
}

// Находит задачу и проверяет владельца.
func (t *TodoUseCaseImpl) findOwnedTodo(ctx context.Context, log *logger.Logger, id, userID int64) (*entities.Todo, error) {
	todo, err := t.todoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrTodoNotFound) {
			log.Debug(ctx, msgTodoNotFound)
			return nil, apperrors.NotFoundError(entities.ErrTodoNotFound.Error())
		}
		log.Error(ctx, msgErrGetTodo, zap.Error(err))
		return nil, apperrors.InternalError(errMsgTodos, err)
	}

	if todo.UserID != userID {
		log.Debug(ctx, msgForeignTodo)
		return nil, apperrors.NotFoundError(entities.ErrTodoNotFound.Error())
	}

	return todo, nil
}

func (t *TodoUseCaseImpl) readCachedTodos(ctx context.Context, userID int64) ([]*domain.TodoView, bool) {
	log := logger.Log(ctx)

	cached, err := t.cache.Get(ctx, todosCacheKey(userID))
	if err != nil {
		log.Warn(ctx, msgErrCacheRead, zap.Error(err))
		return nil, false
	}
	if cached == "" {
		return nil, false
	}

	var views []*domain.TodoView
	if err := json.Unmarshal([]byte(cached), &views); err != nil {
		log.Warn(ctx, msgErrCacheRead, zap.Error(err))
		return nil, false
	}

	return views, true
}

func (t *TodoUseCaseImpl) writeCachedTodos(ctx context.Context, userID int64, views []*domain.TodoView) {
	log := logger.Log(ctx)

	payload, err := json.Marshal(views)
	if err != nil {
		log.Warn(ctx, msgErrCacheWrite, zap.Error(err))
		return
	}

	if err := t.cache.Set(ctx, todosCacheKey(userID), string(payload), todosCacheTTL); err != nil {
		log.Warn(ctx, msgErrCacheWrite, zap.Error(err))
	}
}

func (t *TodoUseCaseImpl) invalidateCachedTodos(ctx context.Context, userID int64) {
	if err := t.cache.Delete(ctx, todosCacheKey(userID)); err != nil {
		logger.Log(ctx).Warn(ctx, msgErrCacheInvalid, zap.Error(err))
	}
}

func todosCacheKey(userID int64) string {
	return todosCacheKeyPrefix + strconv.FormatInt(userID, 10)
}

func todoToView(todo *entities.Todo) *domain.TodoView {
	return &domain.TodoView{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		IsCompleted: todo.IsCompleted,
		DueDate:     todo.DueDate,
		CompletedAt: todo.CompletedAt,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}
