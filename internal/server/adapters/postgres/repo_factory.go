package postgres

import (
	"gotodo/internal/server/ports/repositories"
)

// RepositoryFactory создает репозитории поверх одного пула соединений.
type RepositoryFactory struct {
	pool PgxPoolInterface
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return NewUserRepository(f.pool)
}

// TodoRepository возвращает репозиторий задач.
func (f *RepositoryFactory) TodoRepository() repositories.TodoRepository {
	return NewTodoRepository(f.pool)
}
