package search

import (
	"context"
	"testing"

	"github.com/shoplight/shoplight/internal/cache"
	"github.com/shoplight/shoplight/internal/catalog"
	"github.com/shoplight/shoplight/internal/domain"
)

func seededCache(t *testing.T) *cache.Cache {
	t.Helper()
	qc := cache.New(nil)

	seed := map[string]any{
		catalog.KeyBlogPosts: []domain.BlogPost{
			{ID: "b1", Title: "Grand Opening"},
			{ID: "b2", Title: "Summer Sale Announcement"},
		},
		catalog.KeyStoreItems: []domain.StoreItem{
			{ID: "s1", Title: "Sunset Mug"},
			{ID: "s2", Title: "Sale Poster"},
		},
		catalog.KeyMp3Tracks: []domain.Mp3Track{
			{ID: "t1", Title: "Opening Theme", Artist: "House Band"},
		},
	}
	for key, value := range seed {
		v := value
		if _, err := qc.Fetch(context.Background(), key, func(ctx context.Context) (any, error) {
			return v, nil
		}); err != nil {
			t.Fatalf("seeding %q failed: %v", key, err)
		}
	}
	return qc
}

func TestSearchFindsAcrossKinds(t *testing.T) {
	svc := NewService(seededCache(t), nil)

	results := svc.Search("sale", nil)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(results), results)
	}

	found := map[Kind]bool{}
	for _, r := range results {
		found[r.Kind] = true
	}
	if !found[KindBlogPost] || !found[KindStoreItem] {
		t.Errorf("missing expected kinds in %+v", results)
	}
}

func TestSearchKindFilter(t *testing.T) {
	svc := NewService(seededCache(t), nil)

	results := svc.Search("opening", []Kind{KindTrack})
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1: %+v", len(results), results)
	}
	if results[0].Kind != KindTrack || results[0].ID != "t1" {
		t.Errorf("got %+v, want the track", results[0])
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := NewService(seededCache(t), nil)

	if results := svc.Search("", nil); results != nil {
		t.Errorf("empty query returned %+v", results)
	}
}

func TestSearchColdCache(t *testing.T) {
	svc := NewService(cache.New(nil), nil)

	if results := svc.Search("anything", nil); len(results) != 0 {
		t.Errorf("cold cache returned %+v", results)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	svc := NewService(seededCache(t), nil)

	results := svc.Search("GRAND", []Kind{KindBlogPost})
	if len(results) != 1 || results[0].ID != "b1" {
		t.Fatalf("got %+v, want Grand Opening", results)
	}
}
