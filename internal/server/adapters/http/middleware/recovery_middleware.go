package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gotodo/pkg/apperrors"
	"gotodo/pkg/logger"
)

// NewRecoveryMiddleware создает промежуточное ПО для восстановления после
// паники. Паника логируется со стеком и превращается в неклассифицированную
// ошибку для диспетчера ответов.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx)

		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				log.Error(requestCtx, "server panic",
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(stack)),
				)

				err = apperrors.InternalError("internal server error", fmt.Errorf("panic: %v", r))
			}
		}()

		return ctx.Next()
	}
}
