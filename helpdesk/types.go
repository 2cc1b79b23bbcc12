package helpdesk

import (
	"time"

	"github.com/sproux/cms/domain"
)

// Audience partitions the help center between the two visitor segments.
type Audience string

const (
	AudienceCreator Audience = "creator"
	AudienceBacker  Audience = "backer"
)

// Valid reports whether the audience tag is one of the known segments.
func (a Audience) Valid() bool {
	return a == AudienceCreator || a == AudienceBacker
}

// Category is the top level of the help center taxonomy. Each category is
// scoped to a single audience.
type Category struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Audience    Audience `json:"audience"`
}

// Topic is the middle taxonomy level. A topic belongs to exactly one category.
type Topic struct {
	ID          string `json:"id"`
	CategoryID  string `json:"categoryId"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Article is a help center document. Its audience is copied from the owning
// category when the article is created and does not track later taxonomy
// changes.
type Article struct {
	ID             string        `json:"id"`
	Slug           string        `json:"slug"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Content        string        `json:"content"`
	ReadingTime    int           `json:"readingTime"`
	Audience       Audience      `json:"audience"`
	CategoryID     string        `json:"categoryId"`
	TopicID        string        `json:"topicId"`
	Icon           string        `json:"icon"`
	Critical       bool          `json:"isCritical,omitempty"`
	Status         domain.Status `json:"status"`
	SEOTitle       string        `json:"seoTitle,omitempty"`
	SEODescription string        `json:"seoDescription,omitempty"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// ArticleFilter narrows article listings. Zero-value fields match everything.
type ArticleFilter struct {
	Audience      Audience
	CategoryID    string
	TopicID       string
	PublishedOnly bool
}

// Matches reports whether the article satisfies every set filter field.
func (f ArticleFilter) Matches(article Article) bool {
	if f.Audience != "" && article.Audience != f.Audience {
		return false
	}
	if f.CategoryID != "" && article.CategoryID != f.CategoryID {
		return false
	}
	if f.TopicID != "" && article.TopicID != f.TopicID {
		return false
	}
	if f.PublishedOnly && !article.Status.Visible() {
		return false
	}
	return true
}
