package cms_test

import (
	"context"
	"strings"
	"testing"

	cms "github.com/sproux/cms"
	"github.com/sproux/cms/domain"
	"github.com/sproux/cms/helpdesk"
	pagescmd "github.com/sproux/cms/internal/commands/pages"
	"github.com/sproux/cms/pages"
	"github.com/sproux/cms/posts"
)

func newSeededModule(t *testing.T) *cms.Module {
	t.Helper()

	cfg := cms.DefaultConfig()
	cfg.Seed = true
	m, err := cms.New(cfg)
	if err != nil {
		t.Fatalf("expected module got error %v", err)
	}
	return m
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := cms.DefaultConfig()
	cfg.Logging.Format = "xml"
	if _, err := cms.New(cfg); err == nil {
		t.Fatal("expected config error got nil")
	}
}

func TestSeedServesVisiblePages(t *testing.T) {
	m := newSeededModule(t)
	ctx := context.Background()

	for _, slug := range []string{"/", "/pricing", "/how-it-works", "/help-desk"} {
		page, err := m.Pages().GetVisible(ctx, slug)
		if err != nil {
			t.Fatalf("expected page for %q got %v", slug, err)
		}
		if page.Status != domain.StatusPublished {
			t.Fatalf("expected published got %v", page.Status)
		}
		if len(page.Blocks) == 0 {
			t.Fatalf("expected blocks for %q got none", slug)
		}
	}

	if _, err := m.Pages().GetVisible(ctx, "/no-such-page"); err != pages.ErrPageNotFound {
		t.Fatalf("expected ErrPageNotFound got %v", err)
	}
}

func TestSeedProjectsHomePage(t *testing.T) {
	m := newSeededModule(t)
	ctx := context.Background()

	content, err := m.Pages().Project(ctx, "p-home")
	if err != nil {
		t.Fatalf("expected projection got %v", err)
	}
	if got := content["problem-title"]; got != "Where Most Creators Get Stuck" {
		t.Fatalf("expected problem title got %q", got)
	}
	if got := content["problem-img-1-alt"]; got != "Frustrated Creator" {
		t.Fatalf("expected alt entry got %q", got)
	}
	if _, ok := content["problem-img-2-alt"]; !ok {
		t.Fatal("expected alt entry for second card image")
	}
}

func TestSeedPricingPlansDecode(t *testing.T) {
	m := newSeededModule(t)
	ctx := context.Background()

	page, err := m.Pages().Get(ctx, "p-pricing")
	if err != nil {
		t.Fatalf("expected page got %v", err)
	}
	block, ok := page.BlockByID("plan-2")
	if !ok {
		t.Fatal("expected plan-2 block")
	}
	plan := m.Blocks().PricingPlan(block.Value)
	if plan.Name != "Subscription" {
		t.Fatalf("expected Subscription got %q", plan.Name)
	}
	if plan.Highlight != "Most Sustainable" {
		t.Fatalf("expected highlight got %q", plan.Highlight)
	}
	if !block.Metadata.Highlighted {
		t.Fatal("expected plan-2 marked highlighted")
	}

	faq, ok := page.BlockByID("faq-1")
	if !ok {
		t.Fatal("expected faq-1 block")
	}
	item := m.Blocks().FAQItem(faq.Value)
	if item.Question != "Can I switch between plans?" {
		t.Fatalf("expected question got %q", item.Question)
	}
}

func TestSeedHelpDeskTaxonomy(t *testing.T) {
	m := newSeededModule(t)
	ctx := context.Background()

	creator, err := m.HelpDesk().ListCategories(ctx, helpdesk.AudienceCreator)
	if err != nil {
		t.Fatalf("expected categories got %v", err)
	}
	if len(creator) != 5 {
		t.Fatalf("expected 5 creator categories got %d", len(creator))
	}
	backer, err := m.HelpDesk().ListCategories(ctx, helpdesk.AudienceBacker)
	if err != nil {
		t.Fatalf("expected categories got %v", err)
	}
	if len(backer) != 2 {
		t.Fatalf("expected 2 backer categories got %d", len(backer))
	}

	article, err := m.HelpDesk().GetArticleBySlug(ctx, "how-escrow-works-creator")
	if err != nil {
		t.Fatalf("expected article got %v", err)
	}
	if !article.Critical {
		t.Fatal("expected escrow article marked critical")
	}
	if article.Audience != helpdesk.AudienceCreator {
		t.Fatalf("expected creator audience got %v", article.Audience)
	}
	if article.CategoryID != "deliver" {
		t.Fatalf("expected category deliver got %q", article.CategoryID)
	}

	published, err := m.HelpDesk().ListArticles(ctx, helpdesk.ArticleFilter{PublishedOnly: true})
	if err != nil {
		t.Fatalf("expected articles got %v", err)
	}
	if len(published) != 14 {
		t.Fatalf("expected 14 published articles got %d", len(published))
	}
}

func TestSeedBlogAndMedia(t *testing.T) {
	m := newSeededModule(t)
	ctx := context.Background()

	post, err := m.Posts().GetBySlug(ctx, "future-knowledge-autonomy")
	if err != nil {
		t.Fatalf("expected post got %v", err)
	}
	if post.Status != posts.StatusPublished {
		t.Fatalf("expected published got %v", post.Status)
	}
	if post.PublishedAt.IsZero() {
		t.Fatal("expected publish time set")
	}

	categories, err := m.Posts().ListCategories(ctx)
	if err != nil {
		t.Fatalf("expected categories got %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("expected 3 categories got %d", len(categories))
	}

	images, err := m.Media().ListImages(ctx)
	if err != nil {
		t.Fatalf("expected images got %v", err)
	}
	if len(images) != 1 || images[0].FileName != "hero-banner.jpg" {
		t.Fatalf("expected seeded hero banner got %+v", images)
	}
}

func TestSeedAuthenticatesAdmin(t *testing.T) {
	m := newSeededModule(t)
	ctx := context.Background()

	user, err := m.Auth().Authenticate(ctx, "admin@sproux.com", "admin123")
	if err != nil {
		t.Fatalf("expected login got %v", err)
	}
	if user.Name != "SprouX Admin" {
		t.Fatalf("expected admin name got %q", user.Name)
	}
	if user.Password != "" {
		t.Fatal("expected password stripped from result")
	}
}

func TestSeedSettingsDefaults(t *testing.T) {
	m := newSeededModule(t)

	settings, err := m.Settings().Get(context.Background())
	if err != nil {
		t.Fatalf("expected settings got %v", err)
	}
	if settings.General.SiteTitle != "SprouX" {
		t.Fatalf("expected SprouX got %q", settings.General.SiteTitle)
	}
}

func TestEditorSessionEndToEnd(t *testing.T) {
	m := newSeededModule(t)
	ctx := context.Background()

	session, err := m.Editor().Open(ctx, "p-home")
	if err != nil {
		t.Fatalf("expected session got %v", err)
	}
	if session.HasChanges() {
		t.Fatal("expected fresh session without changes")
	}

	groups := session.Groups()
	if len(groups) == 0 || groups[0].Name != "Problem Section" {
		t.Fatalf("expected Problem Section first got %+v", groups)
	}

	if err := session.UpdateValue("cta-btn", "Start Building", nil); err != nil {
		t.Fatalf("expected update got %v", err)
	}
	if err := session.Publish(ctx); err != nil {
		t.Fatalf("expected publish got %v", err)
	}
	if !session.Closed() {
		t.Fatal("expected session closed after publish")
	}

	content, err := m.Pages().Project(ctx, "p-home")
	if err != nil {
		t.Fatalf("expected projection got %v", err)
	}
	if content["cta-btn"] != "Start Building" {
		t.Fatalf("expected published edit got %q", content["cta-btn"])
	}
}

func TestCommandsPublishPage(t *testing.T) {
	m := newSeededModule(t)
	ctx := context.Background()

	page, err := m.Pages().Get(ctx, "p-help-desk")
	if err != nil {
		t.Fatalf("expected page got %v", err)
	}

	err = m.Commands().PublishPage.Execute(ctx, pagescmd.PublishPageCommand{
		PageID: page.ID,
		Status: domain.StatusDraft,
		Blocks: page.Blocks,
	})
	if err != nil {
		t.Fatalf("expected publish got %v", err)
	}

	if _, err := m.Pages().GetVisible(ctx, "/help-desk"); err != pages.ErrPageNotFound {
		t.Fatalf("expected page hidden after draft publish got %v", err)
	}
}

func TestSeedIsNotRepeatable(t *testing.T) {
	m := newSeededModule(t)

	err := m.SeedSiteContent(context.Background())
	if err == nil {
		t.Fatal("expected duplicate error on second seed")
	}
	if !strings.Contains(err.Error(), "seed") {
		t.Fatalf("expected wrapped seed error got %v", err)
	}
}
