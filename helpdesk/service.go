package helpdesk

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sproux/cms/domain"
)

// Service manages the help center taxonomy and its articles.
type Service interface {
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error)
	GetCategory(ctx context.Context, id string) (*Category, error)
	ListCategories(ctx context.Context, audience Audience) ([]*Category, error)
	// DeleteCategory fails with ErrCategoryInUse while any topic still
	// references the category.
	DeleteCategory(ctx context.Context, id string) error

	CreateTopic(ctx context.Context, req CreateTopicRequest) (*Topic, error)
	GetTopic(ctx context.Context, id string) (*Topic, error)
	ListTopics(ctx context.Context, categoryID string) ([]*Topic, error)
	// DeleteTopic fails with ErrTopicInUse while any article still references
	// the topic.
	DeleteTopic(ctx context.Context, id string) error

	CreateArticle(ctx context.Context, req CreateArticleRequest) (*Article, error)
	GetArticle(ctx context.Context, id string) (*Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*Article, error)
	UpdateArticle(ctx context.Context, req UpdateArticleRequest) (*Article, error)
	ListArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)
	DeleteArticle(ctx context.Context, id string) error
}

// CreateCategoryRequest registers a new top-level category.
type CreateCategoryRequest struct {
	ID          string
	Label       string
	Description string
	Icon        string
	Audience    Audience
}

// Validate checks the request before any state is touched.
func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Label, validation.Required),
		validation.Field(&r.Audience, validation.Required, validation.By(func(value any) error {
			if !value.(Audience).Valid() {
				return validation.NewError("helpdesk.category.audience_invalid", "audience must be creator or backer")
			}
			return nil
		})),
	)
}

// CreateTopicRequest registers a topic under an existing category.
type CreateTopicRequest struct {
	ID          string
	CategoryID  string
	Label       string
	Description string
	Icon        string
}

// Validate checks the request before any state is touched.
func (r CreateTopicRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.CategoryID, validation.Required),
		validation.Field(&r.Label, validation.Required),
	)
}

// CreateArticleRequest registers an article under an existing topic. The
// article's audience is derived from the topic's category, never supplied.
type CreateArticleRequest struct {
	Slug           string
	Title          string
	Description    string
	Content        string
	ReadingTime    int
	TopicID        string
	Icon           string
	Critical       bool
	Status         domain.Status
	SEOTitle       string
	SEODescription string
}

// Validate checks the request before any state is touched.
func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.TopicID, validation.Required),
		validation.Field(&r.ReadingTime, validation.Min(0)),
	)
}

// UpdateArticleRequest mutates an existing article's editable fields. Nil
// pointers leave the corresponding field unchanged.
type UpdateArticleRequest struct {
	ID             string
	Title          *string
	Description    *string
	Content        *string
	ReadingTime    *int
	Icon           *string
	Critical       *bool
	Status         *domain.Status
	SEOTitle       *string
	SEODescription *string
}

// Validate checks the request before any state is touched.
func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
	)
}
