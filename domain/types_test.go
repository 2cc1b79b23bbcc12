package domain_test

import (
	"testing"

	"github.com/sproux/cms/domain"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		input string
		want  domain.Status
	}{
		{"", domain.StatusDraft},
		{"  ", domain.StatusDraft},
		{"Published", domain.StatusPublished},
		{" PRIVATE ", domain.StatusPrivate},
		{"draft", domain.StatusDraft},
	}
	for _, tc := range cases {
		if got := domain.NormalizeStatus(tc.input); got != tc.want {
			t.Fatalf("expected %v for %q got %v", tc.want, tc.input, got)
		}
	}
}

func TestStatusValidAndVisible(t *testing.T) {
	if !domain.StatusPublished.Valid() || !domain.StatusPublished.Visible() {
		t.Fatal("expected published valid and visible")
	}
	if !domain.StatusDraft.Valid() || domain.StatusDraft.Visible() {
		t.Fatal("expected draft valid and hidden")
	}
	if !domain.StatusPrivate.Valid() || domain.StatusPrivate.Visible() {
		t.Fatal("expected private valid and hidden")
	}
	if domain.Status("archived").Valid() {
		t.Fatal("expected unknown status invalid")
	}
}
