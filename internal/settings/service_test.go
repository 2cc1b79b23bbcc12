package settings_test

import (
	"context"
	"errors"
	"testing"

	internalsettings "github.com/sproux/cms/internal/settings"
	"github.com/sproux/cms/settings"
)

func TestGetReturnsSeededDocument(t *testing.T) {
	svc := internalsettings.NewService(settings.Default())

	current, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if current.General.SiteTitle != "SprouX" {
		t.Fatalf("unexpected site title %q", current.General.SiteTitle)
	}
	if current.Reading.HomepageDisplay != settings.HomepageStatic {
		t.Fatalf("unexpected homepage mode %q", current.Reading.HomepageDisplay)
	}
}

func TestUpdateReplacesDocument(t *testing.T) {
	svc := internalsettings.NewService(settings.Default())
	ctx := context.Background()

	next, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	next.General.Tagline = "Back the people building the future"
	next.Branding.HeaderLogo = "https://cdn.sproux.ai/logo-header.svg"

	saved, err := svc.Update(ctx, next)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if saved.General.Tagline != next.General.Tagline {
		t.Fatalf("unexpected tagline %q", saved.General.Tagline)
	}

	reread, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if reread.Branding.HeaderLogo != next.Branding.HeaderLogo {
		t.Fatalf("update must persist, got %q", reread.Branding.HeaderLogo)
	}
}

func TestUpdateRejectsInvalidDocument(t *testing.T) {
	svc := internalsettings.NewService(settings.Default())
	ctx := context.Background()

	bad := settings.Default()
	bad.General.SiteTitle = ""
	if _, err := svc.Update(ctx, bad); !errors.Is(err, settings.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}

	bad = settings.Default()
	bad.Reading.HomepageDisplay = "carousel"
	if _, err := svc.Update(ctx, bad); !errors.Is(err, settings.ErrInvalidHomepage) {
		t.Fatalf("expected ErrInvalidHomepage, got %v", err)
	}

	current, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if current.General.SiteTitle != "SprouX" {
		t.Fatalf("rejected update must leave the document unchanged")
	}
}
