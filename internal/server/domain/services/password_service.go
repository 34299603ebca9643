package services

import (
	"errors"
)

// Ошибки, связанные с паролями.
var (
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrPasswordTooWeak = errors.New("password does not meet strength requirements")
)

// Границы длины пароля.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 100
)

// StrengthReport - результат проверки стойкости пароля. Errors блокируют
// регистрацию; Warnings носят рекомендательный характер и никогда
// не делают пароль невалидным.
type StrengthReport struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// HasWarnings сообщает, есть ли у отчета рекомендательные замечания.
func (r *StrengthReport) HasWarnings() bool {
	return len(r.Warnings) > 0
}
