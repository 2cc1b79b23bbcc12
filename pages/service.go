package pages

import (
	"context"

	"github.com/sproux/cms/blocks"
	"github.com/sproux/cms/domain"
)

// Service describes page document management capabilities.
type Service interface {
	Create(ctx context.Context, req CreatePageRequest) (*Page, error)
	Get(ctx context.Context, id string) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	// GetVisible returns a page only when its status is published. Any other
	// outcome is ErrPageNotFound, indistinguishable from an absent slug.
	GetVisible(ctx context.Context, slug string) (*Page, error)
	List(ctx context.Context) ([]*Page, error)
	// ReplaceBlocks swaps a page's entire block sequence and status together.
	ReplaceBlocks(ctx context.Context, req ReplaceBlocksRequest) (*Page, error)
	// Project computes the flat blockID -> rendered value lookup consumed by
	// presentational sections. Image blocks contribute an extra "<id>-alt"
	// entry. The map is computed on demand, never cached.
	Project(ctx context.Context, pageID string) (map[string]string, error)
	// CheckProjection reports expected keys the projection does not satisfy.
	// It is a development-time aid only: production rendering treats missing
	// keys as empty content.
	CheckProjection(ctx context.Context, pageID string, expected []string) ([]string, error)
}

// CreatePageRequest captures the payload required to register a page document.
type CreatePageRequest struct {
	ID     string
	Title  string
	Slug   string
	Status domain.Status
	Blocks []blocks.Block
}

// ReplaceBlocksRequest captures a wholesale blocks/status update, typically
// coming from a publishing editor session.
type ReplaceBlocksRequest struct {
	PageID string
	Blocks []blocks.Block
	Status domain.Status
}
