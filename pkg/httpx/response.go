// Package httpx содержит единый формат HTTP ответов и диспетчер ошибок.
package httpx

import (
	"time"
)

// Сообщения для непредвиденных ошибок. Внутренние детали клиенту не отдаются.
const (
	MsgInternalError    = "an internal server error occurred"
	DetailInternalError = "something went wrong"
)

// Response - единый конверт для всех ответов API, успешных и ошибочных.
type Response struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Errors    []string  `json:"errors"`
	Timestamp time.Time `json:"timestamp"`
}

// SuccessResponse создает успешный ответ с данными.
func SuccessResponse(data any, message string) Response {
	return Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Errors:    []string{},
		Timestamp: time.Now().UTC(),
	}
}

// ErrorResponse создает ответ с ошибкой.
func ErrorResponse(message string, errs []string) Response {
	if errs == nil {
		errs = []string{}
	}
	return Response{
		Success:   false,
		Message:   message,
		Data:      nil,
		Errors:    errs,
		Timestamp: time.Now().UTC(),
	}
}
