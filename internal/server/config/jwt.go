package config

import (
	"errors"
	"fmt"
	"time"
)

// Минимальная длина секретного ключа: 256 бит для HMAC-SHA256.
const MinSecretKeyBytes = 32

// Ошибки валидации настроек JWT. Валидация выполняется один раз при старте
// процесса, а не на каждый запрос.
var (
	ErrEmptySecretKey = errors.New("JWT secret key is not set")
	ErrShortSecretKey = fmt.Errorf("JWT secret key must be at least %d bytes", MinSecretKeyBytes)
	ErrEmptyIssuer    = errors.New("JWT issuer is not set")
	ErrEmptyAudience  = errors.New("JWT audience is not set")
)

// JWTConfig содержит настройки подписи и проверки токенов.
type JWTConfig struct {
	SecretKey             string `yaml:"secret_key" env:"TODO_JWT_SECRET_KEY"`
	Issuer                string `yaml:"issuer" env:"TODO_JWT_ISSUER" env-default:"gotodo"`
	Audience              string `yaml:"audience" env:"TODO_JWT_AUDIENCE" env-default:"gotodo-clients"`
	ExpirationHours       int    `yaml:"expiration_hours" env:"TODO_JWT_EXPIRATION_HOURS" env-default:"24"`
	RefreshExpirationDays int    `yaml:"refresh_expiration_days" env:"TODO_JWT_REFRESH_EXPIRATION_DAYS" env-default:"7"`
	BCryptCost            int    `yaml:"bcrypt_cost" env:"TODO_BCRYPT_COST" env-default:"12"`
}

// Validate проверяет настройки JWT. Ошибка фатальна для старта сервиса.
func (c *JWTConfig) Validate() error {
	if c.SecretKey == "" {
		return ErrEmptySecretKey
	}
	if len(c.SecretKey) < MinSecretKeyBytes {
		return ErrShortSecretKey
	}
	if c.Issuer == "" {
		return ErrEmptyIssuer
	}
	if c.Audience == "" {
		return ErrEmptyAudience
	}
	return nil
}

// GetExpiration возвращает время жизни access токена.
func (c *JWTConfig) GetExpiration() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

// GetRefreshExpiration возвращает время жизни refresh токена.
func (c *JWTConfig) GetRefreshExpiration() time.Duration {
	return time.Duration(c.RefreshExpirationDays) * 24 * time.Hour
}
