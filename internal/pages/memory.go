package pages

import (
	"context"
	"sync"

	"github.com/sproux/cms/pages"
)

// Repository persists page documents.
type Repository interface {
	Insert(ctx context.Context, page *pages.Page) error
	Update(ctx context.Context, page *pages.Page) error
	GetByID(ctx context.Context, id string) (*pages.Page, error)
	GetBySlug(ctx context.Context, slug string) (*pages.Page, error)
	List(ctx context.Context) ([]*pages.Page, error)
}

type memoryRepository struct {
	mu     sync.RWMutex
	byID   map[string]*pages.Page
	bySlug map[string]string
	order  []string
}

// NewMemoryRepository returns an in-memory page repository safe for
// concurrent use. Pages are cloned on the way in and out.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:   make(map[string]*pages.Page),
		bySlug: make(map[string]string),
	}
}

func (r *memoryRepository) Insert(_ context.Context, page *pages.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[page.ID]; ok {
		return pages.ErrPageExists
	}
	if _, ok := r.bySlug[page.Slug]; ok {
		return pages.ErrSlugExists
	}

	r.byID[page.ID] = page.Clone()
	r.bySlug[page.Slug] = page.ID
	r.order = append(r.order, page.ID)
	return nil
}

func (r *memoryRepository) Update(_ context.Context, page *pages.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[page.ID]
	if !ok {
		return pages.ErrPageNotFound
	}
	if page.Slug != current.Slug {
		if owner, taken := r.bySlug[page.Slug]; taken && owner != page.ID {
			return pages.ErrSlugExists
		}
		delete(r.bySlug, current.Slug)
		r.bySlug[page.Slug] = page.ID
	}

	r.byID[page.ID] = page.Clone()
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*pages.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, ok := r.byID[id]
	if !ok {
		return nil, pages.ErrPageNotFound
	}
	return page.Clone(), nil
}

func (r *memoryRepository) GetBySlug(_ context.Context, slug string) (*pages.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySlug[slug]
	if !ok {
		return nil, pages.ErrPageNotFound
	}
	return r.byID[id].Clone(), nil
}

func (r *memoryRepository) List(_ context.Context) ([]*pages.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*pages.Page, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}
