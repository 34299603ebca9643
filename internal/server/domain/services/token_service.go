package services

import (
	"errors"
	"time"
)

// Ошибки, связанные с токенами. Любая причина отказа проверки токена
// (подпись, издатель, аудитория, срок действия) схлопывается
// в ErrInvalidToken: подтип намеренно не раскрывается.
var (
	ErrInvalidToken          = errors.New("invalid token")
	ErrTokenGenerationFailed = errors.New("failed to generate token")
)

// TokenClaims - утверждения, встроенные в access токен.
type TokenClaims struct {
	UserID    int64
	Username  string
	Email     string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
