// Package services определяет порты вспомогательных сервисов.
package services

import (
	"context"

	domain "gotodo/internal/server/domain/services"
)

// PasswordService определяет операции работы с паролями.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	// Verify возвращает false для пустого или неразбираемого хэша и при любой
	// внутренней ошибке хэширования: проверка никогда не открывается при сбое.
	Verify(ctx context.Context, password, hash string) bool

	// NeedsRehash сообщает, нужно ли перехэшировать пароль: фактор стоимости
	// в хэше отличается от настроенного либо хэш не разбирается.
	NeedsRehash(hash string) bool

	ValidateStrength(password string) domain.StrengthReport
}
