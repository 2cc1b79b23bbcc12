package posts

import (
	"context"
	"io/fs"
)

// Service manages blog posts and their categories.
type Service interface {
	Create(ctx context.Context, req CreatePostRequest) (*Post, error)
	Get(ctx context.Context, id string) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	Update(ctx context.Context, req UpdatePostRequest) (*Post, error)
	List(ctx context.Context, filter Filter) ([]*Post, error)
	Delete(ctx context.Context, id string) error
	// RenderContent returns the post body as HTML. Markdown sources are
	// rendered, already-HTML bodies pass through unchanged.
	RenderContent(ctx context.Context, id string) (string, error)
	// ImportDirectory loads markdown documents with front matter from a
	// directory tree and creates a post per document.
	ImportDirectory(ctx context.Context, fsys fs.FS, dir string) ([]*Post, error)

	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CreatePostRequest carries the fields required to author a post. A missing
// slug is derived from the title.
type CreatePostRequest struct {
	Title       string
	Slug        string
	Excerpt     string
	Author      string
	AuthorID    string
	Content     string
	Status      Status
	CategoryIDs []string
	Tags        []string
	CoverImage  string
	SEO         SEO
}

// UpdatePostRequest mutates an existing post. Nil pointers skip the field.
type UpdatePostRequest struct {
	ID          string
	Title       *string
	Excerpt     *string
	Content     *string
	Status      *Status
	CategoryIDs *[]string
	Tags        *[]string
	CoverImage  *string
	SEO         *SEO
}

// Filter narrows post listings. Zero-value fields match everything.
type Filter struct {
	Status        Status
	CategoryID    string
	Tag           string
	PublishedOnly bool
}

// Matches reports whether the post satisfies every set filter field.
func (f Filter) Matches(post *Post) bool {
	if f.Status != "" && post.Status != f.Status {
		return false
	}
	if f.PublishedOnly && !post.Status.Visible() {
		return false
	}
	if f.CategoryID != "" && !contains(post.CategoryIDs, f.CategoryID) {
		return false
	}
	if f.Tag != "" && !contains(post.Tags, f.Tag) {
		return false
	}
	return true
}

// CreateCategoryRequest registers a blog category.
type CreateCategoryRequest struct {
	ID          string
	Name        string
	Slug        string
	Description string
	ParentID    string
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
