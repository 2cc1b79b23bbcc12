package posts

import (
	"context"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/sproux/cms/internal/identity"
	"github.com/sproux/cms/internal/logging"
	"github.com/sproux/cms/internal/markdown"
	"github.com/sproux/cms/pkg/interfaces"
	"github.com/sproux/cms/posts"
)

type service struct {
	mu sync.RWMutex

	posts         map[string]*posts.Post
	slugs         map[string]string
	postOrder     []string
	categories    map[string]*posts.Category
	categoryOrder []string

	renderer *markdown.Renderer
	logger   interfaces.Logger
	clock    func() time.Time
}

// Option configures the post service.
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

// NewService builds an empty blog store.
func NewService(renderer *markdown.Renderer, opts ...Option) posts.Service {
	s := &service{
		posts:      make(map[string]*posts.Post),
		slugs:      make(map[string]string),
		categories: make(map[string]*posts.Category),
		renderer:   renderer,
		logger:     logging.NoOp(),
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(_ context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, posts.ErrTitleRequired
	}
	status := req.Status
	if status == "" {
		status = posts.StatusDraft
	}
	if !status.Valid() {
		return nil, posts.ErrStatusInvalid
	}

	postSlug := req.Slug
	if postSlug == "" {
		normalized, err := slug.Normalize(req.Title)
		if err != nil {
			return nil, err
		}
		postSlug = normalized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.slugs[postSlug]; taken {
		return nil, posts.ErrPostExists
	}
	for _, categoryID := range req.CategoryIDs {
		if _, ok := s.categories[categoryID]; !ok {
			return nil, posts.ErrCategoryNotFound
		}
	}

	now := s.clock()
	post := &posts.Post{
		ID:          identity.PostID(postSlug),
		Title:       req.Title,
		Slug:        postSlug,
		Excerpt:     req.Excerpt,
		Author:      req.Author,
		AuthorID:    req.AuthorID,
		Content:     req.Content,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
		CategoryIDs: append([]string(nil), req.CategoryIDs...),
		Tags:        append([]string(nil), req.Tags...),
		CoverImage:  req.CoverImage,
		SEO:         req.SEO,
	}
	if status == posts.StatusPublished {
		post.PublishedAt = now
	}

	s.posts[post.ID] = post
	s.slugs[post.Slug] = post.ID
	s.postOrder = append(s.postOrder, post.ID)

	s.logger.Debug("post created", "post_id", post.ID, "slug", post.Slug, "status", string(post.Status))
	return post.Clone(), nil
}

func (s *service) Get(_ context.Context, id string) (*posts.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, posts.ErrPostNotFound
	}
	return post.Clone(), nil
}

func (s *service) GetBySlug(_ context.Context, postSlug string) (*posts.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.slugs[postSlug]
	if !ok {
		return nil, posts.ErrPostNotFound
	}
	return s.posts[id].Clone(), nil
}

func (s *service) Update(_ context.Context, req posts.UpdatePostRequest) (*posts.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.posts[req.ID]
	if !ok {
		return nil, posts.ErrPostNotFound
	}

	// Reject the whole request before mutating anything so a failed update
	// leaves the stored post exactly as it was.
	if req.Status != nil && !req.Status.Valid() {
		return nil, posts.ErrStatusInvalid
	}
	if req.CategoryIDs != nil {
		for _, categoryID := range *req.CategoryIDs {
			if _, exists := s.categories[categoryID]; !exists {
				return nil, posts.ErrCategoryNotFound
			}
		}
	}

	post := stored.Clone()
	if req.Status != nil {
		if *req.Status == posts.StatusPublished && post.PublishedAt.IsZero() {
			post.PublishedAt = s.clock()
		}
		post.Status = *req.Status
	}
	if req.CategoryIDs != nil {
		post.CategoryIDs = append([]string(nil), *req.CategoryIDs...)
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Tags != nil {
		post.Tags = append([]string(nil), *req.Tags...)
	}
	if req.CoverImage != nil {
		post.CoverImage = *req.CoverImage
	}
	if req.SEO != nil {
		post.SEO = *req.SEO
	}
	post.UpdatedAt = s.clock()

	s.posts[req.ID] = post
	return post.Clone(), nil
}

func (s *service) List(_ context.Context, filter posts.Filter) ([]*posts.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*posts.Post, 0, len(s.postOrder))
	for _, id := range s.postOrder {
		post := s.posts[id]
		if !filter.Matches(post) {
			continue
		}
		out = append(out, post.Clone())
	}
	return out, nil
}

func (s *service) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return posts.ErrPostNotFound
	}

	delete(s.posts, id)
	delete(s.slugs, post.Slug)
	s.postOrder = removeID(s.postOrder, id)
	s.logger.Info("post deleted", "post_id", id)
	return nil
}

func (s *service) RenderContent(ctx context.Context, id string) (string, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	// Seeded posts carry HTML bodies already. Only markdown sources need a
	// rendering pass.
	if strings.HasPrefix(strings.TrimSpace(post.Content), "<") {
		return post.Content, nil
	}
	return s.renderer.RenderString(post.Content), nil
}

func (s *service) ImportDirectory(ctx context.Context, fsys fs.FS, dir string) ([]*posts.Post, error) {
	docs, err := markdown.LoadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	imported := make([]*posts.Post, 0, len(docs))
	for _, doc := range docs {
		status := posts.Status(doc.FrontMatter.Status)
		if status == "" {
			status = posts.StatusDraft
		}

		post, err := s.Create(ctx, posts.CreatePostRequest{
			Title:       doc.FrontMatter.Title,
			Slug:        doc.FrontMatter.Slug,
			Excerpt:     doc.FrontMatter.Excerpt,
			Author:      doc.FrontMatter.Author,
			Content:     string(doc.Body),
			Status:      status,
			Tags:        doc.FrontMatter.Tags,
			CategoryIDs: s.resolveCategories(doc.FrontMatter.Categories),
			CoverImage:  doc.FrontMatter.CoverImage,
		})
		if err != nil {
			s.logger.Warn("markdown import skipped document", "path", doc.Path, "error", err)
			continue
		}
		imported = append(imported, post)
	}

	s.logger.Info("markdown import finished", "dir", dir, "imported", len(imported), "scanned", len(docs))
	return imported, nil
}

// resolveCategories maps front matter category names to known category ids,
// dropping names with no match.
func (s *service) resolveCategories(names []string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for _, name := range names {
		for _, id := range s.categoryOrder {
			category := s.categories[id]
			if strings.EqualFold(category.Name, name) || category.Slug == name || category.ID == name {
				out = append(out, category.ID)
				break
			}
		}
	}
	return out
}

func (s *service) CreateCategory(_ context.Context, req posts.CreateCategoryRequest) (*posts.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, posts.ErrTitleRequired
	}

	categorySlug := req.Slug
	if categorySlug == "" {
		normalized, err := slug.Normalize(req.Name)
		if err != nil {
			return nil, err
		}
		categorySlug = normalized
	}
	id := req.ID
	if id == "" {
		id = categorySlug
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; ok {
		return nil, posts.ErrCategoryExists
	}
	if req.ParentID != "" {
		if _, ok := s.categories[req.ParentID]; !ok {
			return nil, posts.ErrCategoryNotFound
		}
	}

	category := &posts.Category{
		ID:          id,
		Name:        req.Name,
		Slug:        categorySlug,
		Description: req.Description,
		ParentID:    req.ParentID,
	}
	s.categories[category.ID] = category
	s.categoryOrder = append(s.categoryOrder, category.ID)

	out := *category
	return &out, nil
}

func (s *service) ListCategories(_ context.Context) ([]*posts.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*posts.Category, 0, len(s.categoryOrder))
	for _, id := range s.categoryOrder {
		clone := *s.categories[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (s *service) DeleteCategory(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return posts.ErrCategoryNotFound
	}
	for _, postID := range s.postOrder {
		for _, categoryID := range s.posts[postID].CategoryIDs {
			if categoryID == id {
				return posts.ErrCategoryInUse
			}
		}
	}

	delete(s.categories, id)
	s.categoryOrder = removeID(s.categoryOrder, id)
	return nil
}

func removeID(order []string, id string) []string {
	out := order[:0]
	for _, candidate := range order {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}
