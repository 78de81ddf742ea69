// Package search provides fuzzy lookup across locally cached site
// content. It only inspects what the query cache already holds; a
// search never triggers a network fetch.
package search

import (
	"log/slog"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/shoplight/shoplight/internal/cache"
	"github.com/shoplight/shoplight/internal/catalog"
	"github.com/shoplight/shoplight/internal/domain"
)

// Kind identifies the entity class of a search result
type Kind string

const (
	KindBlogPost   Kind = "blog_post"
	KindStoreItem  Kind = "store_item"
	KindTrack      Kind = "track"
	KindPlaylist   Kind = "playlist"
	KindLink       Kind = "link"
	KindLivestream Kind = "livestream"
)

// Result is one ranked match. Score is an edit distance; lower is
// better.
type Result struct {
	Kind  Kind
	ID    string
	Title string
	Score int
}

// Service searches cached catalog data
type Service struct {
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService creates a search service over the catalog's query cache
func NewService(qc *cache.Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cache: qc, logger: logger}
}

type candidate struct {
	kind  Kind
	id    string
	title string
}

// Search ranks cached content against the query. kinds restricts the
// entity classes searched; nil means all.
func (s *Service) Search(query string, kinds []Kind) []Result {
	if query == "" {
		return nil
	}

	kindSet := makeKindSet(kinds)
	items := s.gather(kindSet)
	if len(items) == 0 {
		return nil
	}

	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.title
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Sort(ranks)

	results := make([]Result, 0, len(ranks))
	for _, r := range ranks {
		item := items[r.OriginalIndex]
		results = append(results, Result{
			Kind:  item.kind,
			ID:    item.id,
			Title: item.title,
			Score: r.Distance,
		})
	}
	return results
}

func (s *Service) gather(kinds map[Kind]bool) []candidate {
	var items []candidate

	allowed := func(k Kind) bool {
		return len(kinds) == 0 || kinds[k]
	}

	if allowed(KindBlogPost) {
		if posts, ok := peek[[]domain.BlogPost](s.cache, catalog.KeyBlogPosts); ok {
			for _, p := range posts {
				items = append(items, candidate{KindBlogPost, p.ID, p.Title})
			}
		}
	}
	if allowed(KindStoreItem) {
		if goods, ok := peek[[]domain.StoreItem](s.cache, catalog.KeyStoreItems); ok {
			for _, g := range goods {
				items = append(items, candidate{KindStoreItem, g.ID, g.Title})
			}
		}
	}
	if allowed(KindTrack) {
		if tracks, ok := peek[[]domain.Mp3Track](s.cache, catalog.KeyMp3Tracks); ok {
			for _, t := range tracks {
				items = append(items, candidate{KindTrack, t.ID, t.Title})
			}
		}
	}
	if allowed(KindPlaylist) {
		if lists, ok := peek[[]domain.Playlist](s.cache, catalog.KeyPlaylists); ok {
			for _, p := range lists {
				items = append(items, candidate{KindPlaylist, p.ID, p.Name})
			}
		}
	}
	if allowed(KindLink) {
		if links, ok := peek[[]domain.LinkItem](s.cache, catalog.KeyLinks); ok {
			for _, l := range links {
				items = append(items, candidate{KindLink, l.ID, l.TextLabel})
			}
		}
	}
	if allowed(KindLivestream) {
		if streams, ok := peek[[]domain.Livestream](s.cache, catalog.KeyLivestreams); ok {
			for _, ls := range streams {
				items = append(items, candidate{KindLivestream, ls.ID, ls.Title})
			}
		}
	}

	return items
}

func peek[T any](qc *cache.Cache, key string) (T, bool) {
	var zero T
	v, ok := qc.Peek(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

func makeKindSet(kinds []Kind) map[Kind]bool {
	if len(kinds) == 0 {
		return nil
	}
	set := make(map[Kind]bool)
	for _, k := range kinds {
		set[k] = true
	}
	return set
}
