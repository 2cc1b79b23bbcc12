package editor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sproux/cms/blocks"
	"github.com/sproux/cms/domain"
	"github.com/sproux/cms/editor"
	interneditor "github.com/sproux/cms/internal/editor"
	"github.com/sproux/cms/internal/markdown"
	internalpages "github.com/sproux/cms/internal/pages"
	"github.com/sproux/cms/pages"
)

func newFixture(t *testing.T, seed []blocks.Block) (pages.Service, editor.Manager) {
	t.Helper()

	registry := blocks.NewRegistry()
	pageService := internalpages.NewService(
		internalpages.NewMemoryRepository(),
		registry,
		markdown.NewRenderer(markdown.Options{}),
	)
	if _, err := pageService.Create(context.Background(), pages.CreatePageRequest{
		ID:     "p-home",
		Title:  "Home",
		Slug:   "home",
		Status: domain.StatusPublished,
		Blocks: seed,
	}); err != nil {
		t.Fatalf("seed page failed: %v", err)
	}
	return pageService, interneditor.NewManager(pageService, registry)
}

func openSession(t *testing.T, mgr editor.Manager) editor.Session {
	t.Helper()

	session, err := mgr.Open(context.Background(), "p-home")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	return session
}

func TestOpenClonesDocument(t *testing.T) {
	store, mgr := newFixture(t, []blocks.Block{
		{ID: "t1", Type: blocks.TypeText, Value: "old"},
	})
	session := openSession(t, mgr)

	if session.HasChanges() {
		t.Fatalf("fresh session must not report changes")
	}
	if _, ok := session.Selected(); ok {
		t.Fatalf("fresh session must have no selection")
	}

	if err := session.UpdateValue("t1", "draft-only", nil); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	stored, err := store.Get(context.Background(), "p-home")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Blocks[0].Value != "old" {
		t.Fatalf("draft edit leaked into store: %q", stored.Blocks[0].Value)
	}
}

func TestSelectDoesNotDirty(t *testing.T) {
	_, mgr := newFixture(t, []blocks.Block{
		{ID: "t1", Type: blocks.TypeText, Value: "a"},
	})
	session := openSession(t, mgr)

	if err := session.Select("t1"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if session.HasChanges() {
		t.Fatalf("selection must not mark the draft dirty")
	}
	if selected, ok := session.Selected(); !ok || selected.ID != "t1" {
		t.Fatalf("expected t1 selected, got %+v ok=%v", selected, ok)
	}
	if err := session.Select("missing"); !errors.Is(err, editor.ErrBlockNotFound) {
		t.Fatalf("expected ErrBlockNotFound, got %v", err)
	}
}

func TestUpdateValueMergesMetadata(t *testing.T) {
	_, mgr := newFixture(t, []blocks.Block{
		{ID: "img", Type: blocks.TypeImage, Value: "https://img/a.jpg", Metadata: blocks.Metadata{Group: "Hero", Alt: "old alt"}},
	})
	session := openSession(t, mgr)

	alt := "new alt"
	if err := session.UpdateValue("img", "https://img/b.jpg", &blocks.MetadataPatch{Alt: &alt}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !session.HasChanges() {
		t.Fatalf("update must mark the draft dirty")
	}

	got := session.Blocks()[0]
	if got.Value != "https://img/b.jpg" {
		t.Fatalf("unexpected value %q", got.Value)
	}
	if got.Metadata.Alt != "new alt" {
		t.Fatalf("expected patched alt, got %q", got.Metadata.Alt)
	}
	if got.Metadata.Group != "Hero" {
		t.Fatalf("unpatched metadata must survive, got group %q", got.Metadata.Group)
	}
}

func TestAddBlockAppendsAndSelects(t *testing.T) {
	_, mgr := newFixture(t, []blocks.Block{
		{ID: "t1", Type: blocks.TypeText, Value: "a"},
	})
	session := openSession(t, mgr)

	added, err := session.AddBlock(blocks.TypePricingPlan)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !session.HasChanges() {
		t.Fatalf("add must mark the draft dirty")
	}

	draft := session.Blocks()
	if draft[len(draft)-1].ID != added.ID {
		t.Fatalf("new block must be appended at the end")
	}
	if selected, ok := session.Selected(); !ok || selected.ID != added.ID {
		t.Fatalf("new block must be auto-selected, got %+v ok=%v", selected, ok)
	}

	if _, err := session.AddBlock(blocks.Type("carousel")); !errors.Is(err, blocks.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestAddBlockIDsUniqueWithinDraft(t *testing.T) {
	_, mgr := newFixture(t, []blocks.Block{
		{ID: "t1", Type: blocks.TypeText, Value: "a"},
	})
	session := openSession(t, mgr)

	seen := map[string]bool{"t1": true}
	for i := 0; i < 40; i++ {
		added, err := session.AddBlock(blocks.TypeText)
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if seen[added.ID] {
			t.Fatalf("duplicate block id %q in draft", added.ID)
		}
		seen[added.ID] = true
	}
}

func TestTwoStepDelete(t *testing.T) {
	_, mgr := newFixture(t, []blocks.Block{
		{ID: "t1", Type: blocks.TypeText, Value: "a"},
		{ID: "t2", Type: blocks.TypeText, Value: "b"},
	})
	session := openSession(t, mgr)

	if err := session.ConfirmDelete(); !errors.Is(err, editor.ErrNoPendingDelete) {
		t.Fatalf("expected ErrNoPendingDelete, got %v", err)
	}

	if err := session.RequestDelete("t1"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	session.CancelDelete()
	if _, pending := session.PendingDelete(); pending {
		t.Fatalf("cancel must clear the pending delete")
	}
	if len(session.Blocks()) != 2 || session.HasChanges() {
		t.Fatalf("cancelled delete must not change the draft")
	}

	if err := session.RequestDelete("t1"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if err := session.ConfirmDelete(); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	draft := session.Blocks()
	if len(draft) != 1 || draft[0].ID != "t2" {
		t.Fatalf("unexpected draft after delete %+v", draft)
	}
	if !session.HasChanges() {
		t.Fatalf("delete must mark the draft dirty")
	}
}

func TestDeleteClearsSelectionOnlyForDeletedBlock(t *testing.T) {
	_, mgr := newFixture(t, []blocks.Block{
		{ID: "t1", Type: blocks.TypeText, Value: "a"},
		{ID: "t2", Type: blocks.TypeText, Value: "b"},
	})

	session := openSession(t, mgr)
	if err := session.Select("t1"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if err := session.RequestDelete("t1"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if err := session.ConfirmDelete(); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if _, ok := session.Selected(); ok {
		t.Fatalf("deleting the selected block must clear selection")
	}

	session = openSession(t, mgr)
	if err := session.Select("t2"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if err := session.RequestDelete("t1"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if err := session.ConfirmDelete(); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if selected, ok := session.Selected(); !ok || selected.ID != "t2" {
		t.Fatalf("deleting another block must keep selection, got %+v ok=%v", selected, ok)
	}
}

func TestMoveSwapsAndRespectsBoundaries(t *testing.T) {
	_, mgr := newFixture(t, []blocks.Block{
		{ID: "a", Type: blocks.TypeText},
		{ID: "b", Type: blocks.TypeText},
		{ID: "c", Type: blocks.TypeText},
	})
	session := openSession(t, mgr)

	if err := session.Move("a", editor.MoveUp); err != nil {
		t.Fatalf("boundary move failed: %v", err)
	}
	if err := session.Move("c", editor.MoveDown); err != nil {
		t.Fatalf("boundary move failed: %v", err)
	}
	if session.HasChanges() {
		t.Fatalf("boundary no-ops must not dirty the draft")
	}

	if err := session.Move("b", editor.MoveUp); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	order := ids(session.Blocks())
	if order[0] != "b" || order[1] != "a" || order[2] != "c" {
		t.Fatalf("unexpected order %v", order)
	}
	if !session.HasChanges() {
		t.Fatalf("a real move must dirty the draft")
	}

	if err := session.Move("b", "sideways"); !errors.Is(err, editor.ErrDirectionInvalid) {
		t.Fatalf("expected ErrDirectionInvalid, got %v", err)
	}
}

func TestMoveCanCrossGroups(t *testing.T) {
	_, mgr := newFixture(t, []blocks.Block{
		{ID: "h1", Type: blocks.TypeText, Metadata: blocks.Metadata{Group: "Hero"}},
		{ID: "f1", Type: blocks.TypeText, Metadata: blocks.Metadata{Group: "Footer"}},
		{ID: "h2", Type: blocks.TypeText, Metadata: blocks.Metadata{Group: "Hero"}},
	})
	session := openSession(t, mgr)

	if err := session.Move("h2", editor.MoveUp); err != nil {
		t.Fatalf("move failed: %v", err)
	}

	groups := session.Groups()
	if len(groups) != 2 || groups[0].Name != "Hero" || groups[1].Name != "Footer" {
		t.Fatalf("unexpected groups %+v", groups)
	}
	if len(groups[0].Blocks) != 2 || groups[0].Blocks[0].ID != "h1" || groups[0].Blocks[1].ID != "h2" {
		t.Fatalf("unexpected hero group %v", ids(groups[0].Blocks))
	}
	if order := ids(session.Blocks()); order[1] != "h2" || order[2] != "f1" {
		t.Fatalf("flat order must reflect the cross-group swap, got %v", order)
	}
}

func TestGroupsDefaultAndFirstSeenOrder(t *testing.T) {
	_, mgr := newFixture(t, []blocks.Block{
		{ID: "a", Type: blocks.TypeText, Metadata: blocks.Metadata{Group: "Hero"}},
		{ID: "b", Type: blocks.TypeText},
		{ID: "c", Type: blocks.TypeText, Metadata: blocks.Metadata{Group: "Hero"}},
	})
	session := openSession(t, mgr)

	groups := session.Groups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Name != "Hero" || groups[1].Name != editor.DefaultGroup {
		t.Fatalf("unexpected group order %q, %q", groups[0].Name, groups[1].Name)
	}
	if got := ids(groups[0].Blocks); got[0] != "a" || got[1] != "c" {
		t.Fatalf("group must keep flat order, got %v", got)
	}
}

func TestPickImage(t *testing.T) {
	_, mgr := newFixture(t, []blocks.Block{
		{ID: "img", Type: blocks.TypeImage, Value: "https://img/old.jpg"},
		{ID: "txt", Type: blocks.TypeText, Value: "a"},
	})
	session := openSession(t, mgr)

	if err := session.PickImage("txt", editor.ImagePick{URL: "x"}); !errors.Is(err, editor.ErrBlockNotImage) {
		t.Fatalf("expected ErrBlockNotImage, got %v", err)
	}
	if err := session.PickImage("img", editor.ImagePick{URL: "https://img/new.jpg", Alt: "Campaign banner"}); err != nil {
		t.Fatalf("pick failed: %v", err)
	}

	got := session.Blocks()[0]
	if got.Value != "https://img/new.jpg" || got.Metadata.Alt != "Campaign banner" {
		t.Fatalf("unexpected block after pick %+v", got)
	}
}

func TestPublishWritesDraftAndCloses(t *testing.T) {
	store, mgr := newFixture(t, []blocks.Block{
		{ID: "t1", Type: blocks.TypeText, Value: "old"},
	})
	session := openSession(t, mgr)
	ctx := context.Background()

	if err := session.UpdateValue("t1", "new", nil); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := session.SetStatus(domain.StatusDraft); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if err := session.Publish(ctx); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if !session.Closed() {
		t.Fatalf("publish must close the session")
	}

	stored, err := store.Get(ctx, "p-home")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Blocks[0].Value != "new" {
		t.Fatalf("expected published value, got %q", stored.Blocks[0].Value)
	}
	if stored.Status != domain.StatusDraft {
		t.Fatalf("expected published status change, got %s", stored.Status)
	}

	if err := session.Publish(ctx); !errors.Is(err, editor.ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestPublishWithoutChangesWritesNothing(t *testing.T) {
	store, mgr := newFixture(t, []blocks.Block{
		{ID: "t1", Type: blocks.TypeText, Value: "old"},
	})
	ctx := context.Background()

	before, err := store.Get(ctx, "p-home")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	session := openSession(t, mgr)
	if err := session.Select("t1"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if err := session.Publish(ctx); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if session.Closed() {
		t.Fatalf("no-change publish must leave the session open")
	}

	after, err := store.Get(ctx, "p-home")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("no-change publish must not touch the store")
	}

	// The open session is still usable: a real edit publishes and closes.
	if err := session.UpdateValue("t1", "new", nil); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := session.Publish(ctx); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if !session.Closed() {
		t.Fatalf("publish with changes must close the session")
	}
}

func TestDiscardLeavesStoreUntouched(t *testing.T) {
	store, mgr := newFixture(t, []blocks.Block{
		{ID: "t1", Type: blocks.TypeText, Value: "old"},
	})
	session := openSession(t, mgr)
	ctx := context.Background()

	if err := session.UpdateValue("t1", "scrapped", nil); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	session.Discard()
	if !session.Closed() {
		t.Fatalf("discard must close the session")
	}

	stored, err := store.Get(ctx, "p-home")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Blocks[0].Value != "old" {
		t.Fatalf("discard must leave the store untouched, got %q", stored.Blocks[0].Value)
	}
}

func ids(list []blocks.Block) []string {
	out := make([]string, len(list))
	for i, block := range list {
		out[i] = block.ID
	}
	return out
}
