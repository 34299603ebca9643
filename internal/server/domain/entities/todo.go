package entities

import (
	"errors"
	"time"
)

// Ошибки домена задач.
var (
	ErrTodoNotFound     = errors.New("todo not found")
	ErrEmptyTodoTitle   = errors.New("todo title cannot be empty")
	ErrTodoTitleTooLong = errors.New("todo title cannot be longer than 200 characters")
)

// MaxTodoTitleLength - максимальная длина заголовка задачи.
const MaxTodoTitleLength = 200

// Todo представляет задачу пользователя.
type Todo struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	IsCompleted bool
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
