package services

import (
	"gotodo/internal/server/config"
	svc "gotodo/internal/server/ports/services"
)

// ServiceFactory создает сервисы паролей и токенов из одной конфигурации.
type ServiceFactory struct {
	jwtConfig *config.JWTConfig
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(jwtConfig *config.JWTConfig) *ServiceFactory {
	return &ServiceFactory{jwtConfig: jwtConfig}
}

// PasswordService возвращает сервис работы с паролями.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return NewBcrypt(f.jwtConfig.BCryptCost)
}

// TokenService возвращает сервис работы с токенами.
func (f *ServiceFactory) TokenService() svc.TokenService {
	return NewJWT(
		f.jwtConfig.SecretKey,
		f.jwtConfig.Issuer,
		f.jwtConfig.Audience,
		f.jwtConfig.GetExpiration(),
		f.jwtConfig.GetRefreshExpiration(),
	)
}
