package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	svc "gotodo/internal/server/ports/services"
	"gotodo/pkg/apperrors"
	"gotodo/pkg/logger"
)

// Константы для логирования и ключ локального значения с id пользователя.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"

	userIDLocalKey = "userID"
	bearerPrefix   = "Bearer "
)

// NewAuthMiddleware создает промежуточное ПО, которое разрешает действующего
// пользователя по bearer токену запроса.
func NewAuthMiddleware(tokenSvc svc.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return apperrors.UnauthorizedError(ErrorNoAuthHeader)
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return apperrors.UnauthorizedError(ErrorInvalidTokenFormat)
		}

		userID, err := tokenSvc.ExtractUserID(requestCtx, strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken)
			return apperrors.UnauthorizedError(ErrorInvalidToken)
		}

		ctx.Locals(userIDLocalKey, userID)

		return ctx.Next()
	}
}

// UserIDFromContext извлекает идентификатор действующего пользователя,
// установленный NewAuthMiddleware.
func UserIDFromContext(ctx fiber.Ctx) (int64, bool) {
	userID, ok := ctx.Locals(userIDLocalKey).(int64)
	return userID, ok
}
