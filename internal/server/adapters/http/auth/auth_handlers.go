// Package auth содержит HTTP обработчики регистрации и входа.
package auth

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gotodo/internal/server/adapters/http/middleware"
	"gotodo/internal/server/ports/api"
	"gotodo/pkg/apperrors"
	"gotodo/pkg/httpx"
	"gotodo/pkg/logger"
)

// Константы для логирования и сообщений об ошибках.
const (
	LogRegisterHandler = "register handler"
	LogLoginHandler    = "login handler"
	LogProfileHandler  = "profile handler"

	ErrorInvalidRequestBody = "invalid request body"
	ErrorMissingUserContext = "missing user context"

	MsgUserRegistered = "user registered successfully"
	MsgUserLoggedIn   = "login successful"
)

// RegisterRequest - тело запроса регистрации.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest - тело запроса входа.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Handler обрабатывает HTTP запросы аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
	userUseCase api.UserUseCase
}

// NewHandler создает новый обработчик аутентификации.
func NewHandler(authUseCase api.AuthUseCase, userUseCase api.UserUseCase) *Handler {
	return &Handler{authUseCase: authUseCase, userUseCase: userUseCase}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Register"))
	log.Debug(requestCtx, LogRegisterHandler)

	var req RegisterRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequestBody, zap.Error(err))
		return apperrors.ValidationError(ErrorInvalidRequestBody)
	}

	session, err := h.authUseCase.Register(requestCtx, req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(httpx.SuccessResponse(session, MsgUserRegistered))
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Login"))
	log.Debug(requestCtx, LogLoginHandler)

	var req LoginRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequestBody, zap.Error(err))
		return apperrors.ValidationError(ErrorInvalidRequestBody)
	}

	session, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(httpx.SuccessResponse(session, MsgUserLoggedIn))
}

// Profile возвращает профиль действующего пользователя.
func (h *Handler) Profile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Profile"))
	log.Debug(requestCtx, LogProfileHandler)

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return apperrors.UnauthorizedError(ErrorMissingUserContext)
	}

	user, err := h.userUseCase.GetUserByID(requestCtx, userID)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(httpx.SuccessResponse(user, ""))
}
