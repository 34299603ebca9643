package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyTaken    = errors.New("email is already in use")
	ErrUsernameAlreadyTaken = errors.New("username is already in use")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrInvalidUsername      = errors.New("username must be between 3 and 100 characters")
)

// User представляет основную сущность домена пользователя.
// Username и email глобально уникальны; уникальность гарантируется
// ограничениями на уровне базы данных.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
