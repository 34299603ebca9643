// Package postgres содержит реализации репозиториев поверх Postgres.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"gotodo/internal/server/domain/entities"
	"gotodo/internal/server/ports/repositories"
	"gotodo/pkg/logger"
)

// PgxPoolInterface описывает подмножество pgxpool.Pool, используемое репозиториями.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Close()
}

// Имена уникальных ограничений таблицы users. Нарушение ограничения -
// авторитетный источник конфликта уникальности: гонка проверка-вставка
// схлопывается здесь в доменную ошибку занятости.
const (
	constraintUsersEmail    = "users_email_key"
	constraintUsersUsername = "users_username_key"
)

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Create создает нового пользователя. Нарушение уникальности email или
// username транслируется в соответствующую доменную ошибку.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (username, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING id, username, email, password_hash, created_at, updated_at
    `

	var createdUser entities.User
	err := r.pool.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
	).Scan(
		&createdUser.ID,
		&createdUser.Username,
		&createdUser.Email,
		&createdUser.PasswordHash,
		&createdUser.CreatedAt,
		&createdUser.UpdatedAt,
	)

	if err != nil {
		if domainErr := uniqueViolationError(err); domainErr != nil {
			log.Debug(ctx, "unique constraint violated", zap.Error(domainErr))
			return nil, domainErr
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &createdUser, nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `
        SELECT id, username, email, password_hash, created_at, updated_at
        FROM users
        WHERE id = $1
    `

	return r.scanUser(ctx, log, r.pool.QueryRow(ctx, query, id))
}

// FindByEmail находит пользователя по email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	query := `
        SELECT id, username, email, password_hash, created_at, updated_at
        FROM users
        WHERE email = $1
    `

	return r.scanUser(ctx, log, r.pool.QueryRow(ctx, query, email))
}

// FindByUsername находит пользователя по username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByUsername"))

	query := `
        SELECT id, username, email, password_hash, created_at, updated_at
        FROM users
        WHERE username = $1
    `

	return r.scanUser(ctx, log, r.pool.QueryRow(ctx, query, username))
}

// UpdatePasswordHash перезаписывает хэш пароля пользователя.
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "UpdatePasswordHash"))

	query := `
        UPDATE users
        SET password_hash = $2, updated_at = now()
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		log.Error(ctx, "error updating password hash", zap.Error(err))
		return fmt.Errorf("error updating password hash: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "user not found for password update", zap.Int64("id", id))
		return entities.ErrUserNotFound
	}

	return nil
}

// Сканирует строку в сущность пользователя, транслируя отсутствие строки
// в доменную ошибку.
func (r *UserRepository) scanUser(ctx context.Context, log *logger.Logger, row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found")
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error querying user", zap.Error(err))
		return nil, fmt.Errorf("error querying user: %w", err)
	}

	return &user, nil
}

// Транслирует нарушение уникального ограничения в доменную ошибку.
// Возвращает nil для прочих ошибок.
func uniqueViolationError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}

	switch pgErr.ConstraintName {
	case constraintUsersEmail:
		return entities.ErrEmailAlreadyTaken
	case constraintUsersUsername:
		return entities.ErrUsernameAlreadyTaken
	default:
		return nil
	}
}
