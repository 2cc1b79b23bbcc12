package helpdesk

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/sproux/cms/domain"
	"github.com/sproux/cms/helpdesk"
	"github.com/sproux/cms/internal/identity"
	"github.com/sproux/cms/internal/logging"
	"github.com/sproux/cms/pkg/interfaces"
)

// service is an in-memory help center catalog. Referential integrity between
// the taxonomy levels is enforced here, there is no database underneath.
type service struct {
	mu sync.RWMutex

	categories    map[string]*helpdesk.Category
	categoryOrder []string
	topics        map[string]*helpdesk.Topic
	topicOrder    []string
	articles      map[string]*helpdesk.Article
	articleSlugs  map[string]string
	articleOrder  []string

	logger interfaces.Logger
	clock  func() time.Time
}

// Option configures the help desk service.
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

// NewService builds an empty help center catalog.
func NewService(opts ...Option) helpdesk.Service {
	s := &service{
		categories:   make(map[string]*helpdesk.Category),
		topics:       make(map[string]*helpdesk.Topic),
		articles:     make(map[string]*helpdesk.Article),
		articleSlugs: make(map[string]string),
		logger:       logging.NoOp(),
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateCategory(_ context.Context, req helpdesk.CreateCategoryRequest) (*helpdesk.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[req.ID]; ok {
		return nil, helpdesk.ErrCategoryExists
	}

	category := &helpdesk.Category{
		ID:          req.ID,
		Label:       req.Label,
		Description: req.Description,
		Icon:        req.Icon,
		Audience:    req.Audience,
	}
	s.categories[category.ID] = category
	s.categoryOrder = append(s.categoryOrder, category.ID)

	s.logger.Debug("category created", "category_id", category.ID, "audience", string(category.Audience))
	out := *category
	return &out, nil
}

func (s *service) GetCategory(_ context.Context, id string) (*helpdesk.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, helpdesk.ErrCategoryNotFound
	}
	out := *category
	return &out, nil
}

func (s *service) ListCategories(_ context.Context, audience helpdesk.Audience) ([]*helpdesk.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*helpdesk.Category, 0, len(s.categoryOrder))
	for _, id := range s.categoryOrder {
		category := s.categories[id]
		if audience != "" && category.Audience != audience {
			continue
		}
		clone := *category
		out = append(out, &clone)
	}
	return out, nil
}

func (s *service) DeleteCategory(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return helpdesk.ErrCategoryNotFound
	}
	for _, topicID := range s.topicOrder {
		if s.topics[topicID].CategoryID == id {
			return helpdesk.ErrCategoryInUse
		}
	}

	delete(s.categories, id)
	s.categoryOrder = removeID(s.categoryOrder, id)
	s.logger.Info("category deleted", "category_id", id)
	return nil
}

func (s *service) CreateTopic(_ context.Context, req helpdesk.CreateTopicRequest) (*helpdesk.Topic, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.topics[req.ID]; ok {
		return nil, helpdesk.ErrTopicExists
	}
	if _, ok := s.categories[req.CategoryID]; !ok {
		return nil, helpdesk.ErrCategoryNotFound
	}

	topic := &helpdesk.Topic{
		ID:          req.ID,
		CategoryID:  req.CategoryID,
		Label:       req.Label,
		Description: req.Description,
		Icon:        req.Icon,
	}
	s.topics[topic.ID] = topic
	s.topicOrder = append(s.topicOrder, topic.ID)

	s.logger.Debug("topic created", "topic_id", topic.ID, "category_id", topic.CategoryID)
	out := *topic
	return &out, nil
}

func (s *service) GetTopic(_ context.Context, id string) (*helpdesk.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topic, ok := s.topics[id]
	if !ok {
		return nil, helpdesk.ErrTopicNotFound
	}
	out := *topic
	return &out, nil
}

func (s *service) ListTopics(_ context.Context, categoryID string) ([]*helpdesk.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*helpdesk.Topic, 0, len(s.topicOrder))
	for _, id := range s.topicOrder {
		topic := s.topics[id]
		if categoryID != "" && topic.CategoryID != categoryID {
			continue
		}
		clone := *topic
		out = append(out, &clone)
	}
	return out, nil
}

func (s *service) DeleteTopic(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.topics[id]; !ok {
		return helpdesk.ErrTopicNotFound
	}
	for _, articleID := range s.articleOrder {
		if s.articles[articleID].TopicID == id {
			return helpdesk.ErrTopicInUse
		}
	}

	delete(s.topics, id)
	s.topicOrder = removeID(s.topicOrder, id)
	s.logger.Info("topic deleted", "topic_id", id)
	return nil
}

func (s *service) CreateArticle(_ context.Context, req helpdesk.CreateArticleRequest) (*helpdesk.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	topic, ok := s.topics[req.TopicID]
	if !ok {
		return nil, helpdesk.ErrTopicNotFound
	}
	category := s.categories[topic.CategoryID]

	articleSlug := req.Slug
	if articleSlug == "" {
		normalized, err := slug.Normalize(req.Title)
		if err != nil {
			return nil, err
		}
		articleSlug = normalized
	}
	if _, taken := s.articleSlugs[articleSlug]; taken {
		return nil, helpdesk.ErrArticleExists
	}

	id := identity.ArticleID(articleSlug)
	if _, taken := s.articles[id]; taken {
		return nil, helpdesk.ErrArticleExists
	}

	status := req.Status
	if status == "" {
		status = domain.StatusDraft
	}
	if !status.Valid() {
		return nil, helpdesk.ErrStatusInvalid
	}

	// Audience is fixed at assignment time. It does not follow the category
	// if the taxonomy is reorganized later.
	article := &helpdesk.Article{
		ID:             id,
		Slug:           articleSlug,
		Title:          req.Title,
		Description:    req.Description,
		Content:        req.Content,
		ReadingTime:    req.ReadingTime,
		Audience:       category.Audience,
		CategoryID:     category.ID,
		TopicID:        topic.ID,
		Icon:           req.Icon,
		Critical:       req.Critical,
		Status:         status,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		UpdatedAt:      s.clock(),
	}
	s.articles[article.ID] = article
	s.articleSlugs[article.Slug] = article.ID
	s.articleOrder = append(s.articleOrder, article.ID)

	s.logger.Debug("article created",
		"article_id", article.ID,
		"topic_id", article.TopicID,
		"audience", string(article.Audience),
	)
	out := *article
	return &out, nil
}

func (s *service) GetArticle(_ context.Context, id string) (*helpdesk.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, ok := s.articles[id]
	if !ok {
		return nil, helpdesk.ErrArticleNotFound
	}
	out := *article
	return &out, nil
}

func (s *service) GetArticleBySlug(_ context.Context, articleSlug string) (*helpdesk.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.articleSlugs[articleSlug]
	if !ok {
		return nil, helpdesk.ErrArticleNotFound
	}
	out := *s.articles[id]
	return &out, nil
}

func (s *service) UpdateArticle(_ context.Context, req helpdesk.UpdateArticleRequest) (*helpdesk.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	article, ok := s.articles[req.ID]
	if !ok {
		return nil, helpdesk.ErrArticleNotFound
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, helpdesk.ErrStatusInvalid
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Description != nil {
		article.Description = *req.Description
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.ReadingTime != nil {
		article.ReadingTime = *req.ReadingTime
	}
	if req.Icon != nil {
		article.Icon = *req.Icon
	}
	if req.Critical != nil {
		article.Critical = *req.Critical
	}
	if req.Status != nil {
		article.Status = *req.Status
	}
	if req.SEOTitle != nil {
		article.SEOTitle = *req.SEOTitle
	}
	if req.SEODescription != nil {
		article.SEODescription = *req.SEODescription
	}
	article.UpdatedAt = s.clock()

	out := *article
	return &out, nil
}

func (s *service) ListArticles(_ context.Context, filter helpdesk.ArticleFilter) ([]*helpdesk.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*helpdesk.Article, 0, len(s.articleOrder))
	for _, id := range s.articleOrder {
		article := s.articles[id]
		if !filter.Matches(*article) {
			continue
		}
		clone := *article
		out = append(out, &clone)
	}
	return out, nil
}

func (s *service) DeleteArticle(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	article, ok := s.articles[id]
	if !ok {
		return helpdesk.ErrArticleNotFound
	}

	delete(s.articles, id)
	delete(s.articleSlugs, article.Slug)
	s.articleOrder = removeID(s.articleOrder, id)
	s.logger.Info("article deleted", "article_id", id)
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
