package posts

import (
	"context"
	"errors"
	"fmt"

	"postboard/internal/common"
	"postboard/internal/server/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new post. The owner is taken from the authenticated
// identity unconditionally; callers cannot set an arbitrary owner.
func (s *Service) Create(ctx context.Context, identity *auth.Identity, title string, content string) (*Post, error) {

	if identity == nil {
		return nil, common.ErrorUnauthorized
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}

	post := &Post{
		OwnerID: identity.UserID,
		Title:   title,
		Content: content,
	}

	post, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	return post, nil
}

// GetByID returns a single post. Reads are public.
func (s *Service) GetByID(ctx context.Context, id string) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all posts, newest first. Reads are public.
func (s *Service) List(ctx context.Context) ([]*Post, error) {
	return s.repo.List(ctx)
}

// Update rewrites a post after the ownership check. On Forbidden nothing
// is written.
func (s *Service) Update(ctx context.Context, identity *auth.Identity, id string, title string, content string) (*Post, error) {

	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if !auth.CanMutate(identity, post.OwnerID) {
		return nil, common.ErrorForbidden
	}

	return s.repo.Update(ctx, id, title, content)
}

// Delete removes a post after the ownership check.
func (s *Service) Delete(ctx context.Context, identity *auth.Identity, id string) error {

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	if !auth.CanMutate(identity, post.OwnerID) {
		return common.ErrorForbidden
	}

	return s.repo.Delete(ctx, id)
}
