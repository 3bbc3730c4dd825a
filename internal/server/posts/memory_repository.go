package posts

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"postboard/internal/common"
)

// MemoryRepository is an in-memory Repository used by tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*Post
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*Post)}
}

func (r *MemoryRepository) Create(ctx context.Context, post *Post) (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	post.ID = uuid.NewString()
	post.CreatedAt = now
	post.UpdatedAt = now

	stored := *post
	r.items[post.ID] = &stored

	return post, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Post, 0, len(r.items))
	for _, p := range r.items {
		copied := *p
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, title string, content string) (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	p.Title = title
	p.Content = content
	p.UpdatedAt = time.Now()

	copied := *p
	return &copied, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}
