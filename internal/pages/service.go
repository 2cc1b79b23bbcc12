package pages

import (
	"context"
	"time"

	"github.com/sproux/cms/blocks"
	"github.com/sproux/cms/domain"
	"github.com/sproux/cms/internal/logging"
	"github.com/sproux/cms/internal/markdown"
	"github.com/sproux/cms/pages"
	"github.com/sproux/cms/pkg/interfaces"
)

type service struct {
	repo     Repository
	registry *blocks.Registry
	renderer *markdown.Renderer
	logger   interfaces.Logger
	clock    func() time.Time
}

// Option configures the page service.
type Option func(*service)

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService wires a page service over the given repository.
func NewService(repo Repository, registry *blocks.Registry, renderer *markdown.Renderer, opts ...Option) pages.Service {
	s := &service{
		repo:     repo,
		registry: registry,
		renderer: renderer,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, req pages.CreatePageRequest) (*pages.Page, error) {
	if req.ID == "" {
		return nil, pages.ErrPageIDRequired
	}
	if req.Title == "" {
		return nil, pages.ErrTitleRequired
	}
	if req.Slug == "" {
		return nil, pages.ErrSlugRequired
	}
	status := req.Status
	if status == "" {
		status = domain.StatusDraft
	}
	if !status.Valid() {
		return nil, pages.ErrStatusInvalid
	}
	if err := checkBlockIDs(req.Blocks); err != nil {
		return nil, err
	}

	page := &pages.Page{
		ID:        req.ID,
		Title:     req.Title,
		Slug:      req.Slug,
		Status:    status,
		UpdatedAt: s.clock(),
		Blocks:    blocks.CloneBlocks(req.Blocks),
	}
	if err := s.repo.Insert(ctx, page); err != nil {
		return nil, err
	}

	s.log().Info("page created", "page_id", page.ID, "slug", page.Slug, "blocks", len(page.Blocks))
	return page, nil
}

func (s *service) Get(ctx context.Context, id string) (*pages.Page, error) {
	if id == "" {
		return nil, pages.ErrPageIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*pages.Page, error) {
	if slug == "" {
		return nil, pages.ErrSlugRequired
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) GetVisible(ctx context.Context, slug string) (*pages.Page, error) {
	page, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !page.Status.Visible() {
		return nil, pages.ErrPageNotFound
	}
	return page, nil
}

func (s *service) List(ctx context.Context) ([]*pages.Page, error) {
	return s.repo.List(ctx)
}

func (s *service) ReplaceBlocks(ctx context.Context, req pages.ReplaceBlocksRequest) (*pages.Page, error) {
	if req.PageID == "" {
		return nil, pages.ErrPageIDRequired
	}
	if !req.Status.Valid() {
		return nil, pages.ErrStatusInvalid
	}
	if err := checkBlockIDs(req.Blocks); err != nil {
		return nil, err
	}

	page, err := s.repo.GetByID(ctx, req.PageID)
	if err != nil {
		return nil, err
	}

	page.Blocks = blocks.CloneBlocks(req.Blocks)
	page.Status = req.Status
	page.UpdatedAt = s.clock()

	if err := s.repo.Update(ctx, page); err != nil {
		return nil, err
	}

	s.log().Info("page blocks replaced",
		"page_id", page.ID,
		"status", string(page.Status),
		"blocks", len(page.Blocks),
	)
	return page, nil
}

func (s *service) Project(ctx context.Context, pageID string) (map[string]string, error) {
	page, err := s.Get(ctx, pageID)
	if err != nil {
		return nil, err
	}
	return s.project(page), nil
}

func (s *service) CheckProjection(ctx context.Context, pageID string, expected []string) ([]string, error) {
	page, err := s.Get(ctx, pageID)
	if err != nil {
		return nil, err
	}

	projection := s.project(page)
	var missing []string
	for _, key := range expected {
		if _, ok := projection[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		s.log().Warn("projection missing expected keys",
			"page_id", pageID,
			"missing", missing,
		)
	}
	return missing, nil
}

// project flattens a page's blocks into the id -> value lookup consumed by
// templates. Richtext blocks are rendered to HTML, image blocks carry an
// additional "<id>-alt" entry, and compound blocks keep their stored JSON.
func (s *service) project(page *pages.Page) map[string]string {
	out := make(map[string]string, len(page.Blocks))
	for _, block := range page.Blocks {
		switch block.Type {
		case blocks.TypeRichText:
			out[block.ID] = s.renderer.RenderString(block.Value)
		case blocks.TypeImage:
			out[block.ID] = block.Value
			if block.Metadata.Alt != "" {
				out[block.ID+"-alt"] = block.Metadata.Alt
			}
		default:
			out[block.ID] = block.Value
		}
	}
	return out
}

func (s *service) log() interfaces.Logger {
	if s.logger == nil {
		return logging.NoOp()
	}
	return s.logger
}

func checkBlockIDs(list []blocks.Block) error {
	seen := make(map[string]struct{}, len(list))
	for _, block := range list {
		if _, dup := seen[block.ID]; dup {
			return pages.ErrDuplicateBlockID
		}
		seen[block.ID] = struct{}{}
	}
	return nil
}
