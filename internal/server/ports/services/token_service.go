package services

import (
	"context"
	"time"

	"gotodo/internal/server/domain/entities"
	domain "gotodo/internal/server/domain/services"
)

// TokenService определяет интерфейс для операций с токенами.
type TokenService interface {
	IssueAccessToken(ctx context.Context, user *entities.User) (string, time.Time, error)

	ValidateAccessToken(ctx context.Context, token string) (*domain.TokenClaims, error)

	ExtractUserID(ctx context.Context, token string) (int64, error)

	// IsExpired читает срок действия из самого токена без проверки подписи.
	// Только для информационных целей, не для решений о доверии.
	IsExpired(token string) bool

	GenerateRefreshToken() (string, time.Time, error)
}
