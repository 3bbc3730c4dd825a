package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"postboard/internal/common"
	"postboard/internal/dbx"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, post *Post) (*Post, error) {

	query :=
		`INSERT INTO posts (owner_id, title, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, post.OwnerID, post.Title, post.Content).
		Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Post, error) {
	query :=
		`SELECT id, owner_id, title, content, created_at, updated_at FROM posts
		 WHERE id = $1
		 `

	post := &Post{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.OwnerID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Post, error) {
	query :=
		`SELECT id, owner_id, title, content, created_at, updated_at FROM posts
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*Post{}
	for rows.Next() {
		post := &Post{}
		if err := rows.Scan(&post.ID, &post.OwnerID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update rewrites the post body inside a transaction, so a cancelled
// request cannot leave a half-written row. Last-writer-wins by design.
func (r *PostgresRepository) Update(ctx context.Context, id string, title string, content string) (*Post, error) {

	post := &Post{}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query :=
			`UPDATE posts SET title = $2, content = $3, updated_at = now()
			 WHERE id = $1
			 RETURNING id, owner_id, title, content, created_at, updated_at
			 `

		err := tx.QueryRowContext(ctx, query, id, title, content).
			Scan(&post.ID, &post.OwnerID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt)

		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if affected == 0 {
			return common.ErrorNotFound
		}
		return nil
	})
}
