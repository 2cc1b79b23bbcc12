package helpdesk_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sproux/cms/domain"
	"github.com/sproux/cms/helpdesk"
	internalhelpdesk "github.com/sproux/cms/internal/helpdesk"
)

func seedTaxonomy(t *testing.T) helpdesk.Service {
	t.Helper()

	svc := internalhelpdesk.NewService()
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, helpdesk.CreateCategoryRequest{
		ID: "getting-started", Label: "Getting Started", Audience: helpdesk.AudienceCreator,
	}); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if _, err := svc.CreateCategory(ctx, helpdesk.CreateCategoryRequest{
		ID: "pledges", Label: "Pledges", Audience: helpdesk.AudienceBacker,
	}); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if _, err := svc.CreateTopic(ctx, helpdesk.CreateTopicRequest{
		ID: "first-campaign", CategoryID: "getting-started", Label: "Your First Campaign",
	}); err != nil {
		t.Fatalf("create topic failed: %v", err)
	}
	return svc
}

func TestCreateCategoryValidation(t *testing.T) {
	svc := internalhelpdesk.NewService()
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, helpdesk.CreateCategoryRequest{Label: "No ID", Audience: helpdesk.AudienceCreator}); err == nil {
		t.Fatalf("expected validation error for missing id")
	}
	if _, err := svc.CreateCategory(ctx, helpdesk.CreateCategoryRequest{ID: "c1", Label: "Bad", Audience: "staff"}); err == nil {
		t.Fatalf("expected validation error for unknown audience")
	}

	if _, err := svc.CreateCategory(ctx, helpdesk.CreateCategoryRequest{ID: "c1", Label: "OK", Audience: helpdesk.AudienceBacker}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateCategory(ctx, helpdesk.CreateCategoryRequest{ID: "c1", Label: "Dup", Audience: helpdesk.AudienceBacker}); !errors.Is(err, helpdesk.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestTopicRequiresExistingCategory(t *testing.T) {
	svc := internalhelpdesk.NewService()

	_, err := svc.CreateTopic(context.Background(), helpdesk.CreateTopicRequest{
		ID: "t1", CategoryID: "nope", Label: "Orphan",
	})
	if !errors.Is(err, helpdesk.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestDeleteGuards(t *testing.T) {
	svc := seedTaxonomy(t)
	ctx := context.Background()

	if err := svc.DeleteCategory(ctx, "getting-started"); !errors.Is(err, helpdesk.ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}

	article, err := svc.CreateArticle(ctx, helpdesk.CreateArticleRequest{
		Title: "Launch checklist", TopicID: "first-campaign",
	})
	if err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	if err := svc.DeleteTopic(ctx, "first-campaign"); !errors.Is(err, helpdesk.ErrTopicInUse) {
		t.Fatalf("expected ErrTopicInUse, got %v", err)
	}

	// Unwinding the references bottom-up makes each level deletable.
	if err := svc.DeleteArticle(ctx, article.ID); err != nil {
		t.Fatalf("delete article failed: %v", err)
	}
	if err := svc.DeleteTopic(ctx, "first-campaign"); err != nil {
		t.Fatalf("delete topic failed: %v", err)
	}
	if err := svc.DeleteCategory(ctx, "getting-started"); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}

	remaining, err := svc.ListCategories(ctx, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != "pledges" {
		t.Fatalf("unexpected categories %+v", remaining)
	}
}

func TestRejectedDeleteLeavesStateUnchanged(t *testing.T) {
	svc := seedTaxonomy(t)
	ctx := context.Background()

	if err := svc.DeleteCategory(ctx, "getting-started"); !errors.Is(err, helpdesk.ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}
	if _, err := svc.GetCategory(ctx, "getting-started"); err != nil {
		t.Fatalf("rejected delete must keep the category, got %v", err)
	}
	topics, err := svc.ListTopics(ctx, "getting-started")
	if err != nil {
		t.Fatalf("list topics failed: %v", err)
	}
	if len(topics) != 1 {
		t.Fatalf("rejected delete must keep child topics, got %d", len(topics))
	}
}

func TestArticleInheritsAudienceAtAssignment(t *testing.T) {
	svc := seedTaxonomy(t)
	ctx := context.Background()

	article, err := svc.CreateArticle(ctx, helpdesk.CreateArticleRequest{
		Title:   "How to set a funding goal",
		TopicID: "first-campaign",
		Status:  domain.StatusPublished,
	})
	if err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	if article.Audience != helpdesk.AudienceCreator {
		t.Fatalf("expected inherited creator audience, got %s", article.Audience)
	}
	if article.CategoryID != "getting-started" || article.TopicID != "first-campaign" {
		t.Fatalf("unexpected taxonomy references %+v", article)
	}
	if article.Slug != "how-to-set-a-funding-goal" {
		t.Fatalf("unexpected slug %q", article.Slug)
	}
	if article.ID == "" {
		t.Fatalf("expected derived article id")
	}

	bySlug, err := svc.GetArticleBySlug(ctx, article.Slug)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if bySlug.ID != article.ID {
		t.Fatalf("slug lookup mismatch: %s != %s", bySlug.ID, article.ID)
	}
}

func TestListArticlesFilters(t *testing.T) {
	svc := seedTaxonomy(t)
	ctx := context.Background()

	if _, err := svc.CreateTopic(ctx, helpdesk.CreateTopicRequest{
		ID: "refunds", CategoryID: "pledges", Label: "Refunds",
	}); err != nil {
		t.Fatalf("create topic failed: %v", err)
	}

	seeds := []helpdesk.CreateArticleRequest{
		{Title: "Campaign basics", TopicID: "first-campaign", Status: domain.StatusPublished},
		{Title: "Campaign drafts", TopicID: "first-campaign"},
		{Title: "Requesting a refund", TopicID: "refunds", Status: domain.StatusPublished},
	}
	for _, seed := range seeds {
		if _, err := svc.CreateArticle(ctx, seed); err != nil {
			t.Fatalf("create article %q failed: %v", seed.Title, err)
		}
	}

	published, err := svc.ListArticles(ctx, helpdesk.ArticleFilter{PublishedOnly: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(published) != 2 {
		t.Fatalf("expected 2 published articles, got %d", len(published))
	}

	creators, err := svc.ListArticles(ctx, helpdesk.ArticleFilter{Audience: helpdesk.AudienceCreator})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(creators) != 2 {
		t.Fatalf("expected 2 creator articles, got %d", len(creators))
	}

	refunds, err := svc.ListArticles(ctx, helpdesk.ArticleFilter{TopicID: "refunds", PublishedOnly: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(refunds) != 1 || refunds[0].Title != "Requesting a refund" {
		t.Fatalf("unexpected refund articles %+v", refunds)
	}
}

func TestUpdateArticle(t *testing.T) {
	svc := seedTaxonomy(t)
	ctx := context.Background()

	article, err := svc.CreateArticle(ctx, helpdesk.CreateArticleRequest{
		Title: "Launch checklist", TopicID: "first-campaign",
	})
	if err != nil {
		t.Fatalf("create article failed: %v", err)
	}

	title := "Launch checklist, revised"
	status := domain.StatusPublished
	updated, err := svc.UpdateArticle(ctx, helpdesk.UpdateArticleRequest{
		ID:     article.ID,
		Title:  &title,
		Status: &status,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != title || updated.Status != domain.StatusPublished {
		t.Fatalf("unexpected article %+v", updated)
	}
	if updated.Description != article.Description {
		t.Fatalf("untouched fields must survive the update")
	}

	if _, err := svc.UpdateArticle(ctx, helpdesk.UpdateArticleRequest{ID: "missing"}); !errors.Is(err, helpdesk.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestArticleStatusMustBeValid(t *testing.T) {
	svc := seedTaxonomy(t)
	ctx := context.Background()

	if _, err := svc.CreateArticle(ctx, helpdesk.CreateArticleRequest{
		Title: "Bad status", TopicID: "first-campaign", Status: "archived",
	}); !errors.Is(err, helpdesk.ErrStatusInvalid) {
		t.Fatalf("expected ErrStatusInvalid, got %v", err)
	}

	article, err := svc.CreateArticle(ctx, helpdesk.CreateArticleRequest{
		Title: "Stays published", TopicID: "first-campaign", Status: domain.StatusPublished,
	})
	if err != nil {
		t.Fatalf("create article failed: %v", err)
	}

	bogus := domain.Status("retired")
	if _, err := svc.UpdateArticle(ctx, helpdesk.UpdateArticleRequest{
		ID: article.ID, Status: &bogus,
	}); !errors.Is(err, helpdesk.ErrStatusInvalid) {
		t.Fatalf("expected ErrStatusInvalid, got %v", err)
	}

	stored, err := svc.GetArticle(ctx, article.ID)
	if err != nil {
		t.Fatalf("get article failed: %v", err)
	}
	if stored.Status != domain.StatusPublished {
		t.Fatalf("rejected update mutated status: got %q", stored.Status)
	}

	published, err := svc.ListArticles(ctx, helpdesk.ArticleFilter{PublishedOnly: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(published) != 1 {
		t.Fatalf("expected article still published, got %d", len(published))
	}
}
