package repomanager

import (
	"context"
	"database/sql"

	"postboard/internal/server/posts"
	"postboard/internal/server/users"
)

// InMemoryRepositoryManager backs the repositories with maps. Tests use it
// to exercise the full service stack without a database.
type InMemoryRepositoryManager struct {
	users users.Repository
	posts posts.Repository
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		posts: posts.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Posts() posts.Repository {
	return m.posts
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
