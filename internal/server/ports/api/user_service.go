package api

import (
	"context"

	domain "gotodo/internal/server/domain/services"
)

// UserUseCase определяет основной порт для пользовательских операций.
type UserUseCase interface {
	GetUserByID(ctx context.Context, userID int64) (*domain.UserView, error)
}
