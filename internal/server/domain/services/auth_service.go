package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации. ErrInvalidCredentials используется и для
// неизвестного email, и для неверного пароля: внешнее сообщение не должно
// раскрывать существование учетной записи.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserView - представление пользователя, отдаваемое клиенту.
type UserView struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session - результат успешной регистрации или входа.
type Session struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	User         UserView  `json:"user"`
}
