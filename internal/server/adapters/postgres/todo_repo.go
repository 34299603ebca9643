package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gotodo/internal/server/domain/entities"
	"gotodo/internal/server/ports/repositories"
	"gotodo/pkg/logger"
)

// TodoRepository реализует интерфейс repositories.TodoRepository для работы с Postgres.
type TodoRepository struct {
	pool PgxPoolInterface
}

// NewTodoRepository создает новый экземпляр репозитория задач.
func NewTodoRepository(pool PgxPoolInterface) repositories.TodoRepository {
	return &TodoRepository{pool: pool}
}

// Create создает новую задачу.
func (r *TodoRepository) Create(ctx context.Context, todo *entities.Todo) (*entities.Todo, error) {
	log := logger.Log(ctx).With(zap.String("repository", "todo"), zap.String("method", "Create"))

	query := `
        INSERT INTO todos (user_id, title, description, due_date)
        VALUES ($1, $2, $3, $4)
        RETURNING id, user_id, title, description, is_completed, due_date, completed_at, created_at, updated_at
    `

	var created entities.Todo
	err := r.pool.QueryRow(ctx, query,
		todo.UserID,
		todo.Title,
		todo.Description,
		todo.DueDate,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Title,
		&created.Description,
		&created.IsCompleted,
		&created.DueDate,
		&created.CompletedAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		log.Error(ctx, "error creating todo", zap.Error(err))
		return nil, fmt.Errorf("error creating todo: %w", err)
	}

	return &created, nil
}

// FindByID находит задачу по ID.
func (r *TodoRepository) FindByID(ctx context.Context, id int64) (*entities.Todo, error) {
	log := logger.Log(ctx).With(zap.String("repository", "todo"), zap.String("method", "FindByID"))

	query := `
        SELECT id, user_id, title, description, is_completed, due_date, completed_at, created_at, updated_at
        FROM todos
        WHERE id = $1
    `

	var todo entities.Todo
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Title,
		&todo.Description,
		&todo.IsCompleted,
		&todo.DueDate,
		&todo.CompletedAt,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "todo not found", zap.Int64("id", id))
			return nil, entities.ErrTodoNotFound
		}
		log.Error(ctx, "error querying todo by id", zap.Error(err))
		return nil, fmt.Errorf("error querying todo by id: %w", err)
	}

	return &todo, nil
}

// FindByUserID возвращает все задачи пользователя.
func (r *TodoRepository) FindByUserID(ctx context.Context, userID int64) ([]*entities.Todo, error) {
	log := logger.Log(ctx).With(zap.String("repository", "todo"), zap.String("method", "FindByUserID"))

	query := `
        SELECT id, user_id, title, description, is_completed, due_date, completed_at, created_at, updated_at
        FROM todos
        WHERE user_id = $1
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, "error querying todos by user id", zap.Error(err))
		return nil, fmt.Errorf("error querying todos by user id: %w", err)
	}
	defer rows.Close()

	todos := make([]*entities.Todo, 0)
	for rows.Next() {
		var todo entities.Todo
		if err := rows.Scan(
			&todo.ID,
			&todo.UserID,
			&todo.Title,
			&todo.Description,
			&todo.IsCompleted,
			&todo.DueDate,
			&todo.CompletedAt,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		); err != nil {
			log.Error(ctx, "error scanning todo row", zap.Error(err))
			return nil, fmt.Errorf("error scanning todo row: %w", err)
		}
		todos = append(todos, &todo)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating todo rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating todo rows: %w", err)
	}

	return todos, nil
}

// Update обновляет задачу.
func (r *TodoRepository) Update(ctx context.Context, todo *entities.Todo) (*entities.Todo, error) {
	log := logger.Log(ctx).With(zap.String("repository", "todo"), zap.String("method", "Update"))

	query := `
        UPDATE todos
        SET title = $2, description = $3, is_completed = $4, due_date = $5, completed_at = $6, updated_at = now()
        WHERE id = $1
        RETURNING id, user_id, title, description, is_completed, due_date, completed_at, created_at, updated_at
    `

	var updated entities.Todo
	err := r.pool.QueryRow(ctx, query,
		todo.ID,
		todo.Title,
		todo.Description,
		todo.IsCompleted,
		todo.DueDate,
		todo.CompletedAt,
	).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Title,
		&updated.Description,
		&updated.IsCompleted,
		&updated.DueDate,
		&updated.CompletedAt,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "todo not found for update", zap.Int64("id", todo.ID))
			return nil, entities.ErrTodoNotFound
		}
		log.Error(ctx, "error updating todo", zap.Error(err))
		return nil, fmt.Errorf("error updating todo: %w", err)
	}

	return &updated, nil
}

// Delete удаляет задачу по ID.
func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "todo"), zap.String("method", "Delete"))

	query := `
        DELETE FROM todos
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting todo", zap.Error(err))
		return fmt.Errorf("error deleting todo: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "todo not found for deletion", zap.Int64("id", id))
		return entities.ErrTodoNotFound
	}

	return nil
}
