package api

import (
	"context"

	domain "gotodo/internal/server/domain/services"
)

// TodoUseCase определяет основной порт для операций с задачами.
// Все операции фильтруются по владельцу.
type TodoUseCase interface {
	ListTodos(ctx context.Context, userID int64) ([]*domain.TodoView, error)

	GetTodo(ctx context.Context, id, userID int64) (*domain.TodoView, error)

	CreateTodo(ctx context.Context, userID int64, input domain.CreateTodoInput) (*domain.TodoView, error)

	UpdateTodo(ctx context.Context, id, userID int64, input domain.UpdateTodoInput) (*domain.TodoView, error)

	DeleteTodo(ctx context.Context, id, userID int64) error
}
