package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"gotodo/internal/server/domain/entities"
	domain "gotodo/internal/server/domain/services"
	"gotodo/internal/server/ports/api"
	"gotodo/internal/server/ports/repositories"
	"gotodo/pkg/apperrors"
	"gotodo/pkg/logger"
)

const (
	methodGetUserByID = "GetUserByID"

	msgGettingUser  = "getting user by id"
	msgUserNotFound = "user not found"
	msgErrGetUser   = "error retrieving user"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
}

// NewUserUseCase создает новый экземпляр пользовательского сервиса.
func NewUserUseCase(userRepo repositories.UserRepository) api.UserUseCase {
	return &UserUseCaseImpl{userRepo: userRepo}
}

// GetUserByID возвращает представление пользователя по идентификатору.
func (u *UserUseCaseImpl) GetUserByID(ctx context.Context, userID int64) (*domain.UserView, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUserByID), zap.Int64("userID", userID))
	log.Debug(ctx, msgGettingUser)

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUserNotFound)
			return nil, apperrors.NotFoundError(errMsgUserNotFound)
		}
		log.Error(ctx, msgErrGetUser, zap.Error(err))
		return nil, apperrors.InternalError(errMsgRetrievingUser, err)
	}

	return &domain.UserView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
