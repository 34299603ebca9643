// Package app содержит use case-ы приложения.
package app

import (
	"context"
	"errors"
	"regexp"

	"go.uber.org/zap"

	"gotodo/internal/server/domain/entities"
	domain "gotodo/internal/server/domain/services"
	"gotodo/internal/server/ports/api"
	"gotodo/internal/server/ports/repositories"
	svc "gotodo/internal/server/ports/services"
	"gotodo/pkg/apperrors"
	"gotodo/pkg/logger"
)

// Границы длины имени пользователя.
const (
	minUsernameLength = 3
	maxUsernameLength = 100
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"

	msgStartRegistration  = "starting user registration"
	msgInvalidUsername    = "invalid username"
	msgInvalidEmailFormat = "invalid email format"
	msgWeakPassword       = "password failed strength validation"
	msgEmailTaken         = "email is already bound to an account"
	msgUsernameTaken      = "username is already bound to an account"
	msgUserRegistered     = "user registered successfully"
	msgLoginAttempt       = "login attempt"
	msgLoginUnknownEmail  = "login attempt with unknown email"
	msgLoginWrongPassword = "login attempt with wrong password"
	msgUserLoggedIn       = "user logged in successfully"
	msgRehashingPassword  = "rehashing stored password hash"
	msgRehashFailed       = "opportunistic rehash failed"

	msgErrCheckEmail    = "failed to check email availability"
	msgErrCheckUsername = "failed to check username availability"
	msgErrHashPassword  = "failed to hash password"
	msgErrCreateUser    = "failed to create user"
	msgErrFindUser      = "error finding user by email"
	msgErrIssueSession  = "failed to issue session tokens"
)

// Сообщения классифицированных ошибок, видимые клиенту. Сообщения
// ошибок валидации берутся из доменных ошибок.
const (
	errMsgEmailTaken     = "email is already in use"
	errMsgUsernameTaken  = "username is already in use"
	errMsgRegistration   = "registration failed"
	errMsgLogin          = "login failed"
	errMsgSessionIssue   = "failed to issue authentication tokens"
	errMsgUserNotFound   = "user not found"
	errMsgRetrievingUser = "error retrieving user"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register создает нового пользователя с предоставленными учетными данными
// и выпускает для него сессию. Шаги выполняются последовательно, каждый
// прерывает регистрацию: занятый email, занятый username, слабый пароль.
func (a *AuthUseCaseImpl) Register(ctx context.Context, username, email, password string) (*domain.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		log.Debug(ctx, msgInvalidUsername)
		return nil, apperrors.ValidationError(entities.ErrInvalidUsername.Error())
	}
	if !emailRegex.MatchString(email) {
		log.Debug(ctx, msgInvalidEmailFormat)
		return nil, apperrors.ValidationError(entities.ErrInvalidEmail.Error())
	}

	if _, err := a.userRepo.FindByEmail(ctx, email); err == nil {
		log.Debug(ctx, msgEmailTaken)
		return nil, apperrors.ConflictError(errMsgEmailTaken)
	} else if !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckEmail, zap.Error(err))
		return nil, apperrors.InternalError(errMsgRegistration, err)
	}

	if _, err := a.userRepo.FindByUsername(ctx, username); err == nil {
		log.Debug(ctx, msgUsernameTaken)
		return nil, apperrors.ConflictError(errMsgUsernameTaken)
	} else if !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckUsername, zap.Error(err))
		return nil, apperrors.InternalError(errMsgRegistration, err)
	}

	report := a.passwordSvc.ValidateStrength(password)
	if !report.Valid {
		log.Debug(ctx, msgWeakPassword, zap.Strings("errors", report.Errors))
		return nil, apperrors.ValidationError(domain.ErrPasswordTooWeak.Error(), report.Errors...)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, apperrors.InternalError(errMsgRegistration, err)
	}

	createdUser, err := a.userRepo.Create(ctx, &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		// Ограничение уникальности в базе авторитетно: гонка между проверкой
		// и вставкой схлопывается в тот же конфликт.
		switch {
		case errors.Is(err, entities.ErrEmailAlreadyTaken):
			log.Debug(ctx, msgEmailTaken)
			return nil, apperrors.ConflictError(errMsgEmailTaken)
		case errors.Is(err, entities.ErrUsernameAlreadyTaken):
			log.Debug(ctx, msgUsernameTaken)
			return nil, apperrors.ConflictError(errMsgUsernameTaken)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, apperrors.InternalError(errMsgRegistration, err)
	}

	log.Info(ctx, msgUserRegistered, zap.Int64("userID", createdUser.ID))

	return a.issueSession(ctx, createdUser)
}

// Login аутентифицирует пользователя по email и паролю. Неизвестный email
// и неверный пароль дают одинаковое внешнее сообщение: внешняя сторона
// не должна узнать, существует ли учетная запись.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginUnknownEmail)
			return nil, apperrors.UnauthorizedError(domain.ErrInvalidCredentials.Error())
		}
		log.Error(ctx, msgErrFindUser, zap.Error(err))
		return nil, apperrors.InternalError(errMsgLogin, err)
	}

	if !a.passwordSvc.Verify(ctx, password, user.PasswordHash) {
		log.Debug(ctx, msgLoginWrongPassword, zap.Int64("userID", user.ID))
		return nil, apperrors.UnauthorizedError(domain.ErrInvalidCredentials.Error())
	}

	a.rehashIfNeeded(ctx, user, password)

	log.Info(ctx, msgUserLoggedIn, zap.Int64("userID", user.ID))

	return a.issueSession(ctx, user)
}

// Перехэширует пароль, если настроенный фактор стоимости изменился.
// Запись выполняется по возможности: ее сбой не должен ломать вход.
// Гонка конкурентных входов безопасна: перехэш для одного пароля
// и фактора сходится к эквивалентному значению, последняя запись побеждает.
func (a *AuthUseCaseImpl) rehashIfNeeded(ctx context.Context, user *entities.User, password string) {
	if !a.passwordSvc.NeedsRehash(user.PasswordHash) {
		return
	}

	log := logger.Log(ctx).With(zap.Int64("userID", user.ID))
	log.Debug(ctx, msgRehashingPassword)

	newHash, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Warn(ctx, msgRehashFailed, zap.Error(err))
		return
	}

	if err := a.userRepo.UpdatePasswordHash(ctx, user.ID, newHash); err != nil {
		log.Warn(ctx, msgRehashFailed, zap.Error(err))
	}
}

// Выпускает access токен и refresh токен для пользователя.
func (a *AuthUseCaseImpl) issueSession(ctx context.Context, user *entities.User) (*domain.Session, error) {
	log := logger.Log(ctx).With(zap.Int64("userID", user.ID))

	accessToken, expiresAt, err := a.tokenSvc.IssueAccessToken(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrIssueSession, zap.Error(err))
		return nil, apperrors.InternalError(errMsgSessionIssue, err)
	}

	refreshToken, _, err := a.tokenSvc.GenerateRefreshToken()
	if err != nil {
		log.Error(ctx, msgErrIssueSession, zap.Error(err))
		return nil, apperrors.InternalError(errMsgSessionIssue, err)
	}

	return &domain.Session{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User: domain.UserView{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
