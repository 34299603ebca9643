// Package api определяет основные порты приложения.
package api

import (
	"context"

	domain "gotodo/internal/server/domain/services"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, username, email, password string) (*domain.Session, error)

	Login(ctx context.Context, email, password string) (*domain.Session, error)
}
