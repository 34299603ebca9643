// Package apperrors определяет закрытый набор классифицированных ошибок приложения
// и их отображение на HTTP статусы и уровни логирования.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind классифицирует ошибку приложения. Набор закрыт: новые значения
// добавляются только вместе с записями в обеих таблицах отображения ниже.
type Kind uint8

// Закрытый набор видов ошибок.
const (
	Unclassified Kind = iota
	NotFound
	Validation
	Conflict
	Unauthorized
	BusinessRule
	Exhausted
)

// Severity определяет уровень логирования ошибки для операторского потока.
type Severity uint8

// Уровни важности ошибок.
const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

// Полное отображение Kind -> HTTP статус.
var kindStatuses = map[Kind]int{
	Unclassified: http.StatusInternalServerError,
	NotFound:     http.StatusNotFound,
	Validation:   http.StatusBadRequest,
	Conflict:     http.StatusConflict,
	Unauthorized: http.StatusUnauthorized,
	BusinessRule: http.StatusUnprocessableEntity,
	Exhausted:    http.StatusServiceUnavailable,
}

// Полное отображение Kind -> Severity. Держится рядом с kindStatuses,
// чтобы новый Kind нельзя было добавить только в одну таблицу.
var kindSeverities = map[Kind]Severity{
	Unclassified: SeverityError,
	NotFound:     SeverityInfo,
	Validation:   SeverityInfo,
	Conflict:     SeverityWarning,
	Unauthorized: SeverityInfo,
	BusinessRule: SeverityWarning,
	Exhausted:    SeverityCritical,
}

var kindNames = map[Kind]string{
	Unclassified: "unclassified",
	NotFound:     "not_found",
	Validation:   "validation",
	Conflict:     "conflict",
	Unauthorized: "unauthorized",
	BusinessRule: "business_rule",
	Exhausted:    "exhausted",
}

// HTTPStatus возвращает HTTP статус для данного вида ошибки.
func (k Kind) HTTPStatus() int {
	if status, ok := kindStatuses[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Severity возвращает уровень логирования для данного вида ошибки.
func (k Kind) Severity() Severity {
	if severity, ok := kindSeverities[k]; ok {
		return severity
	}
	return SeverityError
}

// String возвращает строковое представление вида ошибки.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unclassified"
}

// Error - классифицированная ошибка приложения. Каждая ошибка, пересекающая
// границу сервиса, несет ровно один Kind, сообщение для клиента,
// опциональные детали и опциональную причину.
type Error struct {
	kind    Kind
	message string
	details []string
	cause   error
}

// New создает новую классифицированную ошибку.
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Wrap создает классифицированную ошибку с причиной.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{kind: kind, message: message, cause: cause}
}

// WithDetails возвращает копию ошибки с добавленными деталями.
func (e *Error) WithDetails(details ...string) *Error {
	clone := *e
	clone.details = append(append([]string(nil), e.details...), details...)
	return &clone
}

// Error реализует интерфейс error.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

// Unwrap возвращает причину ошибки.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind возвращает вид ошибки.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message возвращает сообщение ошибки, предназначенное клиенту.
func (e *Error) Message() string {
	return e.message
}

// Details возвращает список деталей ошибки.
func (e *Error) Details() []string {
	return e.details
}

// KindOf возвращает вид ошибки или Unclassified для неклассифицированных ошибок.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return Unclassified
}

// AsError извлекает классифицированную ошибку из цепочки.
func AsError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// NotFoundError создает ошибку вида NotFound.
func NotFoundError(message string) *Error {
	return New(NotFound, message)
}

// ValidationError создает ошибку вида Validation.
func ValidationError(message string, details ...string) *Error {
	return New(Validation, message).WithDetails(details...)
}

// ConflictError создает ошибку вида Conflict.
func ConflictError(message string) *Error {
	return New(Conflict, message)
}

// UnauthorizedError создает ошибку вида Unauthorized.
func UnauthorizedError(message string) *Error {
	return New(Unauthorized, message)
}

// BusinessRuleError создает ошибку вида BusinessRule.
func BusinessRuleError(message string) *Error {
	return New(BusinessRule, message)
}

// InternalError создает ошибку вида Unclassified с причиной.
func InternalError(message string, cause error) *Error {
	return Wrap(Unclassified, message, cause)
}
