package repositories

import (
	"context"

	"gotodo/internal/server/domain/entities"
)

// TodoRepository определяет интерфейс для операций хранения задач.
type TodoRepository interface {
	Create(ctx context.Context, todo *entities.Todo) (*entities.Todo, error)

	FindByID(ctx context.Context, id int64) (*entities.Todo, error)

	FindByUserID(ctx context.Context, userID int64) ([]*entities.Todo, error)

	Update(ctx context.Context, todo *entities.Todo) (*entities.Todo, error)

	Delete(ctx context.Context, id int64) error
}
