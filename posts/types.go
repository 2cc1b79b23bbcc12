package posts

import "time"

// Status tracks a blog post through its publication lifecycle. Posts have a
// wider lifecycle than pages: they can also be scheduled or archived.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusScheduled Status = "scheduled"
	StatusArchived  Status = "archived"
)

// Valid reports whether the status is part of the lifecycle.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusScheduled, StatusArchived:
		return true
	}
	return false
}

// Visible reports whether the post should appear on the public blog.
func (s Status) Visible() bool {
	return s == StatusPublished
}

// SEO carries the per-post search and social metadata.
type SEO struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Keywords      string `json:"keywords,omitempty"`
	OGTitle       string `json:"ogTitle,omitempty"`
	OGDescription string `json:"ogDescription,omitempty"`
	OGImage       string `json:"ogImage,omitempty"`
	Canonical     string `json:"canonical,omitempty"`
}

// Post is a blog entry. Content is stored as authored and rendered to HTML
// on demand.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Author      string    `json:"author"`
	AuthorID    string    `json:"authorId"`
	Content     string    `json:"content"`
	Status      Status    `json:"status"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CategoryIDs []string  `json:"categoryIds"`
	Tags        []string  `json:"tags"`
	CoverImage  string    `json:"coverImage"`
	SEO         SEO       `json:"seo"`
}

// Clone returns a deep copy of the post.
func (p *Post) Clone() *Post {
	out := *p
	out.CategoryIDs = append([]string(nil), p.CategoryIDs...)
	out.Tags = append([]string(nil), p.Tags...)
	return &out
}

// Category labels blog posts. Categories may nest through ParentID.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
}
