// Package services содержит реализации сервисных портов приложения.
package services

import (
	"context"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	domain "gotodo/internal/server/domain/services"
	svc "gotodo/internal/server/ports/services"
)

// DefaultBCryptCost - фактор стоимости по умолчанию (2^12 раундов).
const DefaultBCryptCost = 12

// Алгоритм bcrypt учитывает только первые 72 байта пароля. Более длинный
// ввод усекается одинаково при хэшировании и при проверке, поэтому пароли
// до 100 символов остаются допустимыми.
const maxBcryptPasswordBytes = 72

// Сообщения отчета о стойкости пароля.
const (
	strengthErrEmpty    = "password cannot be empty"
	strengthErrTooShort = "password must be at least 6 characters long"
	strengthErrTooLong  = "password cannot be longer than 100 characters"
	strengthWarnDigit   = "password should contain at least one digit"
	strengthWarnUpper   = "password should contain at least one uppercase letter"
	strengthWarnLower   = "password should contain at least one lowercase letter"
	strengthWarnSymbol  = "password should contain at least one special character"
)

// ServiceBcrypt реализует интерфейс PasswordService на основе bcrypt.
// Соль генерируется на каждый вызов и встроена в результат; фактор стоимости
// также встроен в хэш, что позволяет определять необходимость перехэширования
// без внешнего состояния.
type ServiceBcrypt struct {
	cost int
}

// NewBcrypt создает новый экземпляр сервиса bcrypt.
func NewBcrypt(cost int) svc.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBCryptCost
	}
	return &ServiceBcrypt{cost: cost}
}

// Hash хэширует пароль с помощью bcrypt.
func (s *ServiceBcrypt) Hash(_ context.Context, password string) (string, error) {
	if password == "" {
		return "", domain.ErrEmptyPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword(passwordBytes(password), s.cost)
	if err != nil {
		return "", domain.ErrHashingFailed
	}

	return string(hashedBytes), nil
}

// Verify проверяет соответствие пароля хэшу. Возвращает false для пустого
// или испорченного хэша и при любой внутренней ошибке bcrypt: сбой проверки
// никогда не трактуется как совпадение.
func (s *ServiceBcrypt) Verify(_ context.Context, password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), passwordBytes(password)) == nil
}

// Усекает пароль до поддерживаемой bcrypt длины.
func passwordBytes(password string) []byte {
	raw := []byte(password)
	if len(raw) > maxBcryptPasswordBytes {
		raw = raw[:maxBcryptPasswordBytes]
	}
	return raw
}

// NeedsRehash сообщает, нужно ли перехэшировать пароль. Неразбираемый хэш
// считается требующим перехэширования: это позволяет хранилищу
// самовосстанавливаться при следующем успешном входе.
func (s *ServiceBcrypt) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return true
	}
	return cost != s.cost
}

// ValidateStrength проверяет стойкость пароля. Ошибки блокируют регистрацию,
// предупреждения не влияют на валидность.
func (s *ServiceBcrypt) ValidateStrength(password string) domain.StrengthReport {
	report := domain.StrengthReport{Valid: true}

	if password == "" {
		report.Valid = false
		report.Errors = append(report.Errors, strengthErrEmpty)
		return report
	}

	if len(password) < domain.MinPasswordLength {
		report.Valid = false
		report.Errors = append(report.Errors, strengthErrTooShort)
	}
	if len(password) > domain.MaxPasswordLength {
		report.Valid = false
		report.Errors = append(report.Errors, strengthErrTooLong)
	}

	var hasDigit, hasUpper, hasLower, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		default:
			hasSymbol = true
		}
	}

	if !hasDigit {
		report.Warnings = append(report.Warnings, strengthWarnDigit)
	}
	if !hasUpper {
		report.Warnings = append(report.Warnings, strengthWarnUpper)
	}
	if !hasLower {
		report.Warnings = append(report.Warnings, strengthWarnLower)
	}
	if !hasSymbol {
		report.Warnings = append(report.Warnings, strengthWarnSymbol)
	}

	return report
}
