package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gotodo/pkg/apperrors"
	"gotodo/pkg/logger"
)

// Константы для логирования диспетчера.
const (
	LogRequestFailed = "request failed"

	attrKind     = "kind"
	attrStatus   = "status"
	attrSeverity = "severity"
)

// NewErrorHandler возвращает обработчик ошибок fiber, который классифицирует
// любую ошибку, покидающую обработчик запроса, по apperrors.Kind,
// устанавливает соответствующий HTTP статус и рендерит единый конверт ответа.
// Диагностика ошибок вида Unclassified логируется на сервере и никогда
// не попадает в ответ клиенту.
func NewErrorHandler() fiber.ErrorHandler {
	return func(ctx fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return renderError(ctx, fiberErr.Code, ErrorResponse(fiberErr.Message, nil))
		}

		appErr, ok := apperrors.AsError(err)
		if !ok {
			appErr = apperrors.InternalError(MsgInternalError, err)
		}

		kind := appErr.Kind()
		status := kind.HTTPStatus()

		logError(ctx, kind, status, appErr)

		message := appErr.Message()
		details := appErr.Details()
		if kind == apperrors.Unclassified {
			message = MsgInternalError
			details = []string{DetailInternalError}
		}
		if len(details) == 0 {
			details = []string{message}
		}

		return renderError(ctx, status, ErrorResponse(message, details))
	}
}

// Логирует ошибку на уровне, заданном отображением Kind -> Severity.
// Только Unclassified несет полную диагностику (причину) в лог.
func logError(ctx fiber.Ctx, kind apperrors.Kind, status int, appErr *apperrors.Error) {
	log := logger.Log(ctx.Context()).With(
		zap.String(attrKind, kind.String()),
		zap.Int(attrStatus, status),
		zap.String("path", ctx.Path()),
		zap.String("method", ctx.Method()),
	)
	requestCtx := ctx.Context()

	switch kind.Severity() {
	case apperrors.SeverityCritical:
		log.Error(requestCtx, LogRequestFailed,
			zap.String(attrSeverity, "critical"), zap.Error(appErr))
	case apperrors.SeverityError:
		log.Error(requestCtx, LogRequestFailed, zap.Error(appErr))
	case apperrors.SeverityWarning:
		log.Warn(requestCtx, LogRequestFailed, zap.String("message", appErr.Message()))
	default:
		log.Info(requestCtx, LogRequestFailed, zap.String("message", appErr.Message()))
	}
}

func renderError(ctx fiber.Ctx, status int, response Response) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if err := ctx.Status(status).JSON(response); err != nil {
		return fmt.Errorf("sending error response: %w", err)
	}
	return nil
}
