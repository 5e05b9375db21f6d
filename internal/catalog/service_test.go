// README: Catalog provider tests (refresh, failure fallback, subscriber notification).
package catalog

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"menuboard/internal/config"
)

type fakeSource struct {
	categories []Category
	items      []Item
	sections   []Section
	season     string
	err        error
}

func (f *fakeSource) Categories(ctx context.Context) ([]Category, error) {
	return f.categories, f.err
}
func (f *fakeSource) Items(ctx context.Context) ([]Item, error)       { return f.items, f.err }
func (f *fakeSource) Sections(ctx context.Context) ([]Section, error) { return f.sections, f.err }
func (f *fakeSource) Season(ctx context.Context) (string, error)      { return f.season, f.err }

func newTestService(src *fakeSource) *Service {
	return NewService(src, nil, config.CatalogConfig{RefreshSeconds: 30}, zap.NewNop())
}

func TestServiceStartsEmpty(t *testing.T) {
	svc := newTestService(&fakeSource{})
	snap := svc.Snapshot()
	if snap == nil {
		t.Fatal("snapshot should never be nil")
	}
	if len(snap.Items) != 0 {
		t.Errorf("expected empty catalog before refresh, got %d items", len(snap.Items))
	}
}

func TestServiceRefreshSwapsSnapshot(t *testing.T) {
	src := &fakeSource{
		categories: []Category{{ID: "c1", Name: "Frappes"}},
		items:      []Item{{ID: "p1", Name: "Frappe de Oreo", CategoryID: "c1"}},
		season:     "verano",
	}
	svc := newTestService(src)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	snap := svc.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0].ID != "p1" {
		t.Errorf("items = %v", snap.Items)
	}
	if snap.Season != "verano" {
		t.Errorf("season = %q", snap.Season)
	}
}

func TestServiceRefreshFailureKeepsPrevious(t *testing.T) {
	src := &fakeSource{
		items: []Item{{ID: "p1", Name: "Frappe", CategoryID: "c1"}},
	}
	svc := newTestService(src)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("first refresh: %v", err)
	}

	src.err = errors.New("rtdb down")
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("failed refresh should keep serving: %v", err)
	}
	if len(svc.Snapshot().Items) != 1 {
		t.Error("previous snapshot was lost on failure")
	}
}

func TestServiceRefreshFailureWithoutSnapshot(t *testing.T) {
	svc := newTestService(&fakeSource{err: errors.New("rtdb down")})

	if err := svc.Refresh(context.Background()); err != ErrNotLoaded {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
	if svc.Snapshot() == nil {
		t.Fatal("snapshot must stay non-nil even unloaded")
	}
}

func TestServiceSubscribe(t *testing.T) {
	src := &fakeSource{items: []Item{{ID: "p1", Name: "Frappe"}}}
	svc := newTestService(src)

	var got *Snapshot
	svc.Subscribe(func(s *Snapshot) { got = s })

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got == nil || len(got.Items) != 1 {
		t.Error("subscriber did not receive the new snapshot")
	}
}
