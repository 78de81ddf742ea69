package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shoplight/shoplight/internal/cache"
	"github.com/shoplight/shoplight/internal/catalog"
	"github.com/shoplight/shoplight/internal/domain"
	"github.com/shoplight/shoplight/internal/search"
)

func newTestModel(t *testing.T) (Model, *cache.Cache) {
	t.Helper()
	qc := cache.New(nil)
	cat := catalog.New(nil, qc, nil)
	return NewModel(cat, search.NewService(qc, nil), nil), qc
}

func seedCache(t *testing.T, qc *cache.Cache, key string, value any) {
	t.Helper()
	if _, err := qc.Fetch(context.Background(), key, func(ctx context.Context) (any, error) {
		return value, nil
	}); err != nil {
		t.Fatalf("seeding %q failed: %v", key, err)
	}
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestSearchModeRanksCachedContent(t *testing.T) {
	m, qc := newTestModel(t)
	seedCache(t, qc, catalog.KeyBlogPosts, []domain.BlogPost{
		{ID: "b1", Title: "Summer sale recap"},
	})
	seedCache(t, qc, catalog.KeyLinks, []domain.LinkItem{
		{ID: "l1", TextLabel: "Summer menu"},
	})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = next.(Model)
	if !m.searching {
		t.Fatal("f did not enter search mode")
	}

	m = typeString(t, m, "summer")
	if len(m.results) != 2 {
		t.Fatalf("got %d results, want 2", len(m.results))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.searching {
		t.Error("esc did not leave search mode")
	}
	if m.results != nil {
		t.Error("results survived leaving search mode")
	}
}

func TestSearchEnterJumpsToOwningPane(t *testing.T) {
	m, qc := newTestModel(t)
	seedCache(t, qc, catalog.KeyLinks, []domain.LinkItem{
		{ID: "l1", TextLabel: "Booking page", URL: "https://example.com"},
	})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = typeString(t, next.(Model), "booking")
	if len(m.results) != 1 {
		t.Fatalf("got %d results, want 1", len(m.results))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.searching {
		t.Error("still in search mode after enter")
	}
	if m.pane != PaneLinks {
		t.Errorf("landed on pane %v, want %v", m.pane, PaneLinks)
	}

	// The jumped-to row is selected once the pane's rows arrive
	next, _ = m.Update(RowsLoadedMsg{Pane: PaneLinks, Rows: []Row{
		{ID: "l0", Title: "Home"},
		{ID: "l1", Title: "Booking page"},
	}})
	m = next.(Model)
	if m.selected != 1 {
		t.Errorf("selected = %d, want 1", m.selected)
	}
}

func TestPaneForKind(t *testing.T) {
	tests := []struct {
		kind search.Kind
		want Pane
	}{
		{search.KindBlogPost, PaneBlog},
		{search.KindStoreItem, PaneStore},
		{search.KindTrack, PaneMusic},
		{search.KindPlaylist, PaneMusic},
		{search.KindLink, PaneLinks},
		{search.KindLivestream, PaneLivestreams},
	}
	for _, tt := range tests {
		if got := paneForKind(tt.kind); got != tt.want {
			t.Errorf("paneForKind(%q) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestWatchedInvalidationReloadsPane(t *testing.T) {
	m, qc := newTestModel(t)
	if len(m.notices) == 0 {
		t.Fatal("no invalidation watch registered for the initial pane")
	}

	cmd := WatchInvalidationsCmd(m.pane, m.notices[0])
	qc.Invalidate(catalog.KeyBlogPosts)

	msg := cmd()
	inv, ok := msg.(QueryInvalidatedMsg)
	if !ok {
		t.Fatalf("got %T, want QueryInvalidatedMsg", msg)
	}
	if inv.Pane != PaneBlog {
		t.Errorf("notice for pane %v, want %v", inv.Pane, PaneBlog)
	}

	m.loading = false
	next, followup := m.Update(inv)
	m = next.(Model)
	if !m.loading {
		t.Error("pane did not start reloading after invalidation")
	}
	if followup == nil {
		t.Error("watch was not re-armed")
	}
}

func TestSwitchPaneMovesWatch(t *testing.T) {
	m, qc := newTestModel(t)
	old := m.notices[0]

	next, _ := m.switchPane(1)
	m = next.(Model)
	if m.pane != PaneStore {
		t.Fatalf("pane = %v, want %v", m.pane, PaneStore)
	}

	// The old pane's subscription is cancelled; its watch ends cleanly
	if msg := WatchInvalidationsCmd(PaneBlog, old)(); msg != nil {
		t.Errorf("cancelled watch produced %T", msg)
	}

	// Invalidations for the new pane reach the new watch
	qc.Invalidate(catalog.KeyStoreItems)
	msg := WatchInvalidationsCmd(m.pane, m.notices[0])()
	if _, ok := msg.(QueryInvalidatedMsg); !ok {
		t.Errorf("got %T, want QueryInvalidatedMsg", msg)
	}
}
