package postgres_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotodo/internal/server/adapters/postgres"
	"gotodo/internal/server/domain/entities"
)

func todoColumns() []string {
	return []string{"id", "user_id", "title", "description", "is_completed", "due_date", "completed_at", "created_at", "updated_at"}
}

func TestTodoRepository_Create(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное создание задачи", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(todoColumns()).
			AddRow(int64(10), int64(1), "buy milk", "2 liters", false, nil, nil, now, now)

		mock.ExpectQuery("INSERT INTO todos").
			WithArgs(int64(1), "buy milk", "2 liters", (*time.Time)(nil)).
			WillReturnRows(rows)

		repo := postgres.NewTodoRepository(mock)

		todo, err := repo.Create(ctx, &entities.Todo{
			UserID:      1,
			Title:       "buy milk",
			Description: "2 liters",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(10), todo.ID)
		assert.Equal(t, int64(1), todo.UserID)
		assert.False(t, todo.IsCompleted)
		assert.Nil(t, todo.CompletedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO todos").
			WithArgs(int64(1), "buy milk", "", (*time.Time)(nil)).
			WillReturnError(errors.New("connection refused"))

		repo := postgres.NewTodoRepository(mock)

		todo, err := repo.Create(ctx, &entities.Todo{UserID: 1, Title: "buy milk"})

		assert.Nil(t, todo)
		assert.Error(t, err)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTodoRepository_FindByID(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное получение задачи", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(todoColumns()).
			AddRow(int64(10), int64(1), "buy milk", "", false, nil, nil, now, now)

		mock.ExpectQuery("SELECT id, user_id, title, description, is_completed, due_date, completed_at").
			WithArgs(int64(10)).
			WillReturnRows(rows)

		repo := postgres.NewTodoRepository(mock)

		todo, err := repo.FindByID(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(10), todo.ID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Задача не найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, user_id, title, description, is_completed, due_date, completed_at").
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewTodoRepository(mock)

		todo, err := repo.FindByID(ctx, 404)

		assert.Nil(t, todo)
		assert.ErrorIs(t, err, entities.ErrTodoNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTodoRepository_FindByUserID(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное получение списка задач", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(todoColumns()).
			AddRow(int64(11), int64(1), "second", "", false, nil, nil, now, now).
			AddRow(int64(10), int64(1), "first", "", true, nil, &now, now, now)

		mock.ExpectQuery("SELECT id, user_id, title, description, is_completed, due_date, completed_at").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		repo := postgres.NewTodoRepository(mock)

		todos, err := repo.FindByUserID(ctx, 1)

		require.NoError(t, err)
		require.Len(t, todos, 2)
		assert.Equal(t, int64(11), todos[0].ID)
		assert.True(t, todos[1].IsCompleted)
		assert.NotNil(t, todos[1].CompletedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пустой список задач", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, user_id, title, description, is_completed, due_date, completed_at").
			WithArgs(int64(2)).
			WillReturnRows(pgxmock.NewRows(todoColumns()))

		repo := postgres.NewTodoRepository(mock)

		todos, err := repo.FindByUserID(ctx, 2)

		require.NoError(t, err)
		assert.Empty(t, todos)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTodoRepository_Update(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное обновление задачи", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		completedAt := now
		rows := pgxmock.NewRows(todoColumns()).
			AddRow(int64(10), int64(1), "buy milk", "", true, nil, &completedAt, now, now)

		mock.ExpectQuery("UPDATE todos").
			WithArgs(int64(10), "buy milk", "", true, (*time.Time)(nil), &completedAt).
			WillReturnRows(rows)

		repo := postgres.NewTodoRepository(mock)

		updated, err := repo.Update(ctx, &entities.Todo{
			ID:          10,
			Title:       "buy milk",
			IsCompleted: true,
			CompletedAt: &completedAt,
		})

		require.NoError(t, err)
		assert.True(t, updated.IsCompleted)
		assert.NotNil(t, updated.CompletedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Задача не найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE todos").
			WithArgs(int64(404), "title", "", false, (*time.Time)(nil), (*time.Time)(nil)).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewTodoRepository(mock)

		updated, err := repo.Update(ctx, &entities.Todo{ID: 404, Title: "title"})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, entities.ErrTodoNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTodoRepository_Delete(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешное удаление задачи", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM todos").
			WithArgs(int64(10)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewTodoRepository(mock)

		require.NoError(t, repo.Delete(ctx, 10))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Задача не найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM todos").
			WithArgs(int64(404)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewTodoRepository(mock)

		err = repo.Delete(ctx, 404)
		assert.ErrorIs(t, err, entities.ErrTodoNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
