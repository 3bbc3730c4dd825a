package posts

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	GetByID(ctx context.Context, id string) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
	Update(ctx context.Context, id string, title string, content string) (*Post, error)
	Delete(ctx context.Context, id string) error
}
