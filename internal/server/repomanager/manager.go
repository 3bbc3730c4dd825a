package repomanager

import (
	"context"
	"database/sql"

	"postboard/internal/server/posts"
	"postboard/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Posts() posts.Repository
	Close() error
}
