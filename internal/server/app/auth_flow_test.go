package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gotodo/internal/server/adapters/services"
	"gotodo/internal/server/app"
	"gotodo/internal/server/domain/entities"
	"gotodo/pkg/apperrors"
)

// Хранилище пользователей в памяти для сквозных сценариев
// с настоящими bcrypt и JWT сервисами.
type memoryUserRepo struct {
	users  map[int64]*entities.User
	nextID int64
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[int64]*entities.User), nextID: 1}
}

func (r *memoryUserRepo) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, entities.ErrEmailAlreadyTaken
		}
		if existing.Username == user.Username {
			return nil, entities.ErrUsernameAlreadyTaken
		}
	}

	created := *user
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	r.users[created.ID] = &created
	r.nextID++

	return &created, nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id int64) (*entities.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, entities.ErrUserNotFound
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *memoryUserRepo) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *memoryUserRepo) UpdatePasswordHash(_ context.Context, id int64, passwordHash string) error {
	user, ok := r.users[id]
	if !ok {
		return entities.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func TestRegisterLoginContinuity(t *testing.T) {
	ctx := context.Background()

	userRepo := newMemoryUserRepo()
	passwordSvc := services.NewBcrypt(bcrypt.MinCost)
	tokenSvc := services.NewJWT(
		"test-secret-key-with-enough-entropy-0123",
		"gotodo",
		"gotodo-clients",
		time.Hour,
		7*24*time.Hour,
	)

	authUseCase := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)

	registered, err := authUseCase.Register(ctx, testUsername, testEmail, testPassword)
	require.NoError(t, err)
	require.NotNil(t, registered)

	// Токен регистрации удостоверяет созданного пользователя.
	userID, err := tokenSvc.ExtractUserID(ctx, registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, userID)

	loggedIn, err := authUseCase.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)

	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.Equal(t, registered.User.Username, loggedIn.User.Username)
	assert.Equal(t, registered.User.Email, loggedIn.User.Email)

	claims, err := tokenSvc.ValidateAccessToken(ctx, loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, testUsername, claims.Username)
	assert.Equal(t, testEmail, claims.Email)

	// Повторная регистрация на тот же email отклоняется.
	_, err = authUseCase.Register(ctx, "otheruser", testEmail, testPassword)
	assert.Equal(t, apperrors.Conflict, apperrors.KindOf(err))

	// Вход с неверным паролем отклоняется без утечки причины.
	_, err = authUseCase.Login(ctx, testEmail, "wrong-password")
	assert.Equal(t, apperrors.Unauthorized, apperrors.KindOf(err))
}
