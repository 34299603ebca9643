// Package repositories определяет порты слоя хранения.
package repositories

import (
	"context"

	"gotodo/internal/server/domain/entities"
)

// UserRepository определяет интерфейс для операций хранения пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}
