package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shoplight/shoplight/internal/cache"
	"github.com/shoplight/shoplight/internal/domain"
)

// mockBackend overrides just the methods a test exercises; calling an
// unconfigured method panics through the embedded nil interface.
type mockBackend struct {
	domain.Backend

	getAllBlogPosts    func(ctx context.Context) ([]domain.BlogPost, error)
	createBlogPost     func(ctx context.Context, title, content, excerpt string) (string, error)
	deleteBlogPost     func(ctx context.Context, id string) error
	getAllStoreItems   func(ctx context.Context) ([]domain.StoreItem, error)
	reorderMp3Tracks   func(ctx context.Context, playlistID string, newOrder []string) error
	getAllMp3Tracks    func(ctx context.Context) ([]domain.Mp3Track, error)
	getTracksByList    func(ctx context.Context, playlistID string) ([]domain.Mp3Track, error)
	saveCallerProfile  func(ctx context.Context, profile domain.UserProfile) error
	getAnalyticsData   func(ctx context.Context) (*domain.AnalyticsData, error)
	trackPageVisit     func(ctx context.Context, page string) error
	trackUniqueVisitor func(ctx context.Context, sessionID string) (domain.VisitAck, error)
	isCallerAdmin      func(ctx context.Context) (bool, error)
}

func (m *mockBackend) GetAllBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return m.getAllBlogPosts(ctx)
}

func (m *mockBackend) CreateBlogPost(ctx context.Context, title, content, excerpt string) (string, error) {
	return m.createBlogPost(ctx, title, content, excerpt)
}

func (m *mockBackend) DeleteBlogPost(ctx context.Context, id string) error {
	return m.deleteBlogPost(ctx, id)
}

func (m *mockBackend) GetAllStoreItems(ctx context.Context) ([]domain.StoreItem, error) {
	return m.getAllStoreItems(ctx)
}

func (m *mockBackend) ReorderMp3Tracks(ctx context.Context, playlistID string, newOrder []string) error {
	return m.reorderMp3Tracks(ctx, playlistID, newOrder)
}

func (m *mockBackend) GetAllMp3Tracks(ctx context.Context) ([]domain.Mp3Track, error) {
	return m.getAllMp3Tracks(ctx)
}

func (m *mockBackend) GetMp3TracksByPlaylist(ctx context.Context, playlistID string) ([]domain.Mp3Track, error) {
	return m.getTracksByList(ctx, playlistID)
}

func (m *mockBackend) SaveCallerUserProfile(ctx context.Context, profile domain.UserProfile) error {
	return m.saveCallerProfile(ctx, profile)
}

func (m *mockBackend) GetAnalyticsData(ctx context.Context) (*domain.AnalyticsData, error) {
	return m.getAnalyticsData(ctx)
}

func (m *mockBackend) TrackPageVisit(ctx context.Context, page string) error {
	return m.trackPageVisit(ctx, page)
}

func (m *mockBackend) TrackUniqueVisitor(ctx context.Context, sessionID string) (domain.VisitAck, error) {
	return m.trackUniqueVisitor(ctx, sessionID)
}

func (m *mockBackend) IsCallerAdmin(ctx context.Context) (bool, error) {
	return m.isCallerAdmin(ctx)
}

// fakeSnapshots is an in-memory domain.SnapshotStore
type fakeSnapshots struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{data: make(map[string][]byte)}
}

func (f *fakeSnapshots) GetSnapshot(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.data[key]
	return data, ok
}

func (f *fakeSnapshots) SaveSnapshot(key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = data
	return nil
}

func (f *fakeSnapshots) DeleteSnapshots(prefix string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k := range f.data {
		if k == prefix {
			delete(f.data, k)
		}
	}
}

func (f *fakeSnapshots) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = make(map[string][]byte)
}

func newReadyCatalog(backend domain.Backend, opts ...Option) *Catalog {
	c := New(backend, cache.New(nil), nil, opts...)
	c.SetState(domain.Ready)
	return c
}

func TestQueryCachesAcrossCalls(t *testing.T) {
	calls := 0
	backend := &mockBackend{
		getAllBlogPosts: func(ctx context.Context) ([]domain.BlogPost, error) {
			calls++
			return []domain.BlogPost{{ID: "1", Title: "Hello"}}, nil
		},
	}
	c := newReadyCatalog(backend)

	for i := 0; i < 3; i++ {
		posts, err := c.AllBlogPosts(context.Background())
		if err != nil {
			t.Fatalf("AllBlogPosts failed: %v", err)
		}
		if len(posts) != 1 || posts[0].Title != "Hello" {
			t.Fatalf("unexpected posts: %+v", posts)
		}
	}

	if calls != 1 {
		t.Errorf("backend called %d times, want 1", calls)
	}
}

func TestMutationInvalidatesListQuery(t *testing.T) {
	listCalls := 0
	backend := &mockBackend{
		getAllBlogPosts: func(ctx context.Context) ([]domain.BlogPost, error) {
			listCalls++
			if listCalls == 1 {
				return nil, nil
			}
			return []domain.BlogPost{{ID: "new", Title: "Post"}}, nil
		},
		createBlogPost: func(ctx context.Context, title, content, excerpt string) (string, error) {
			return "new", nil
		},
	}
	c := newReadyCatalog(backend)

	ctx := context.Background()
	if _, err := c.AllBlogPosts(ctx); err != nil {
		t.Fatalf("initial read failed: %v", err)
	}

	id, err := c.CreateBlogPost(ctx, "Post", "body", "excerpt")
	if err != nil {
		t.Fatalf("CreateBlogPost failed: %v", err)
	}
	if id != "new" {
		t.Errorf("got id %q, want new", id)
	}

	posts, err := c.AllBlogPosts(ctx)
	if err != nil {
		t.Fatalf("read after mutation failed: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("stale list after mutation: %+v", posts)
	}
	if listCalls != 2 {
		t.Errorf("list fetched %d times, want 2", listCalls)
	}
}

func TestFailedMutationLeavesCacheIntact(t *testing.T) {
	listCalls := 0
	backend := &mockBackend{
		getAllBlogPosts: func(ctx context.Context) ([]domain.BlogPost, error) {
			listCalls++
			return []domain.BlogPost{{ID: "1"}}, nil
		},
		deleteBlogPost: func(ctx context.Context, id string) error {
			return errors.New("boom")
		},
	}
	c := newReadyCatalog(backend)

	ctx := context.Background()
	c.AllBlogPosts(ctx)

	if err := c.DeleteBlogPost(ctx, "1"); err == nil {
		t.Fatal("expected delete to fail")
	}

	c.AllBlogPosts(ctx)
	if listCalls != 1 {
		t.Errorf("failed mutation invalidated the cache; list fetched %d times, want 1", listCalls)
	}
}

func TestConcurrentReadsSingleBackendCall(t *testing.T) {
	var calls atomic.Int32
	backend := &mockBackend{
		getAllStoreItems: func(ctx context.Context) ([]domain.StoreItem, error) {
			calls.Add(1)
			time.Sleep(20 * time.Millisecond)
			return []domain.StoreItem{{ID: "s1", Title: "Shirt"}}, nil
		},
	}
	c := newReadyCatalog(backend)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := c.AllStoreItems(context.Background())
			if err != nil {
				t.Errorf("AllStoreItems failed: %v", err)
				return
			}
			if len(items) != 1 {
				t.Errorf("unexpected items: %+v", items)
			}
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("backend called %d times, want 1", got)
	}
}

func TestReorderTracksInvalidatesBothLists(t *testing.T) {
	allCalls, byListCalls := 0, 0
	backend := &mockBackend{
		getAllMp3Tracks: func(ctx context.Context) ([]domain.Mp3Track, error) {
			allCalls++
			return []domain.Mp3Track{{ID: "t1"}}, nil
		},
		getTracksByList: func(ctx context.Context, playlistID string) ([]domain.Mp3Track, error) {
			byListCalls++
			return []domain.Mp3Track{{ID: "t1", PlaylistID: playlistID}}, nil
		},
		reorderMp3Tracks: func(ctx context.Context, playlistID string, newOrder []string) error {
			return nil
		},
	}
	c := newReadyCatalog(backend)

	ctx := context.Background()
	c.AllMp3Tracks(ctx)
	c.Mp3TracksByPlaylist(ctx, "p1")

	if err := c.ReorderMp3Tracks(ctx, "p1", []string{"t1"}); err != nil {
		t.Fatalf("ReorderMp3Tracks failed: %v", err)
	}

	c.AllMp3Tracks(ctx)
	c.Mp3TracksByPlaylist(ctx, "p1")

	if allCalls != 2 {
		t.Errorf("global list fetched %d times, want 2", allCalls)
	}
	if byListCalls != 2 {
		t.Errorf("playlist list fetched %d times, want 2", byListCalls)
	}
}

func TestSaveProfileDoesNotTouchOtherQueries(t *testing.T) {
	analyticsCalls := 0
	backend := &mockBackend{
		getAnalyticsData: func(ctx context.Context) (*domain.AnalyticsData, error) {
			analyticsCalls++
			return &domain.AnalyticsData{}, nil
		},
		saveCallerProfile: func(ctx context.Context, profile domain.UserProfile) error {
			return nil
		},
	}
	c := newReadyCatalog(backend)

	ctx := context.Background()
	c.AnalyticsData(ctx)

	if err := c.SaveCallerUserProfile(ctx, domain.UserProfile{Name: "A"}); err != nil {
		t.Fatalf("SaveCallerUserProfile failed: %v", err)
	}

	c.AnalyticsData(ctx)
	if analyticsCalls != 1 {
		t.Errorf("profile save invalidated analytics; fetched %d times, want 1", analyticsCalls)
	}
}

func TestReadsDegradeWhenNotReady(t *testing.T) {
	backend := &mockBackend{
		getAllBlogPosts: func(ctx context.Context) ([]domain.BlogPost, error) {
			t.Fatal("backend must not be called while connecting")
			return nil, nil
		},
	}
	c := New(backend, cache.New(nil), nil)

	posts, err := c.AllBlogPosts(context.Background())
	if err != nil {
		t.Fatalf("degraded read returned error: %v", err)
	}
	if posts != nil {
		t.Errorf("degraded read returned data: %+v", posts)
	}
}

func TestReadsServeSnapshotWhenNotReady(t *testing.T) {
	snaps := newFakeSnapshots()
	data, _ := json.Marshal([]domain.BlogPost{{ID: "cached", Title: "From last run"}})
	snaps.SaveSnapshot(KeyBlogPosts, data)

	backend := &mockBackend{}
	c := New(backend, cache.New(nil), nil, WithSnapshots(snaps))

	posts, err := c.AllBlogPosts(context.Background())
	if err != nil {
		t.Fatalf("snapshot read returned error: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "cached" {
		t.Errorf("got %+v, want the persisted snapshot", posts)
	}
}

func TestWritesRejectWhenNotReady(t *testing.T) {
	backend := &mockBackend{
		createBlogPost: func(ctx context.Context, title, content, excerpt string) (string, error) {
			t.Fatal("backend must not be called while connecting")
			return "", nil
		},
	}
	c := New(backend, cache.New(nil), nil)

	_, err := c.CreateBlogPost(context.Background(), "Title", "body", "")
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Errorf("got %v, want ErrBackendUnavailable", err)
	}
}

func TestCreateBlogPostRejectsEmptyTitle(t *testing.T) {
	backend := &mockBackend{
		createBlogPost: func(ctx context.Context, title, content, excerpt string) (string, error) {
			t.Fatal("backend must not see invalid input")
			return "", nil
		},
	}
	c := newReadyCatalog(backend)

	_, err := c.CreateBlogPost(context.Background(), "   ", "body", "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestFireAndForgetTrackersNoOpWhenNotReady(t *testing.T) {
	backend := &mockBackend{
		trackPageVisit: func(ctx context.Context, page string) error {
			t.Fatal("tracker must not call the backend while connecting")
			return nil
		},
	}
	c := New(backend, cache.New(nil), nil)

	if err := c.TrackPageVisit(context.Background(), "/"); err != nil {
		t.Errorf("fire-and-forget tracker surfaced error: %v", err)
	}
}

func TestTrackUniqueVisitorRejectsWhenNotReady(t *testing.T) {
	backend := &mockBackend{}
	c := New(backend, cache.New(nil), nil)

	_, err := c.TrackUniqueVisitor(context.Background(), "visitor_x")
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Errorf("got %v, want ErrBackendUnavailable", err)
	}
}

func TestAdminStatus(t *testing.T) {
	tests := []struct {
		name  string
		state domain.ConnState
		admin bool
		err   error
		want  domain.AdminStatus
	}{
		{"not ready", domain.Connecting, false, nil, domain.AdminUnknown},
		{"check fails", domain.Ready, false, errors.New("boom"), domain.AdminUnknown},
		{"admin", domain.Ready, true, nil, domain.AdminYes},
		{"non-admin", domain.Ready, false, nil, domain.AdminNo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &mockBackend{
				isCallerAdmin: func(ctx context.Context) (bool, error) {
					return tt.admin, tt.err
				},
			}
			c := New(backend, cache.New(nil), nil)
			c.SetState(tt.state)

			if got := c.AdminStatus(context.Background()); got != tt.want {
				t.Errorf("AdminStatus = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEdgeTableCoversEveryMutation(t *testing.T) {
	mutations := []string{
		MutCreateBlogPost, MutUpdateBlogPost, MutUpdateExcerpt, MutDeleteBlogPost,
		MutAddBlogFile, MutDeleteBlogFile, MutAddBlogImage, MutUpdateBlogImage,
		MutDeleteBlogImage, MutUpdateBlogTitle, MutUpdateBlogDesc,
		MutAddStoreItem, MutUpdateStoreItem,
		MutAddMeetingSlot, MutUpdateMeetingSlot, MutBookAppointment, MutCancelAppointment,
		MutAddLivestream, MutUpdateLivestream, MutDeleteLivestream,
		MutAddLink, MutUpdateLink, MutDeleteLink, MutReorderLinks,
		MutAddSection, MutUpdateSection, MutDeleteSection, MutReorderSections, MutToggleSection,
		MutUpdateSiteContent, MutUpdateBizTitle,
		MutUploadTrack, MutUpdateTrack, MutDeleteTrack, MutReorderTracks, MutToggleTrack,
		MutCreatePlaylist, MutUpdatePlaylist, MutTogglePlaylist,
		MutIncrementPlays, MutResetPlays, MutResetAllPlays,
		MutTrackVisitor, MutSaveProfile, MutAssignRole,
	}

	knownKeys := map[string]bool{
		KeyBlogPosts: true, KeyBlogPost: true,
		KeyStoreItems: true, KeyStoreItem: true,
		KeyMeetingSlots: true, KeyAllMeetingSlots: true, KeyMeetingSlot: true,
		KeyMyAppointments: true, KeyAllAppointments: true,
		KeyLivestreams: true, KeyLivestream: true,
		KeyLinks: true, KeyHomepageSections: true, KeySiteContent: true,
		KeyMp3Tracks: true, KeyMp3TracksByPlaylist: true,
		KeyPlaylists: true, KeyPublicPlaylists: true,
		KeyTrackPlayCounts: true, KeyTrackPlayCount: true,
		KeyAnalytics: true, KeyCurrentUserProfile: true, KeyUserProfile: true,
		KeyCallerRole: true, KeyIsAdmin: true, KeyCheckoutConfigured: true,
	}

	for _, name := range mutations {
		prefixes, ok := Edges[name]
		if !ok {
			t.Errorf("mutation %q has no invalidation edges", name)
			continue
		}
		if len(prefixes) == 0 {
			t.Errorf("mutation %q has an empty edge set", name)
		}
		for _, prefix := range prefixes {
			if !knownKeys[prefix] {
				t.Errorf("mutation %q invalidates unknown key %q", name, prefix)
			}
		}
	}

	if len(Edges) != len(mutations) {
		t.Errorf("edge table has %d rows, want %d", len(Edges), len(mutations))
	}
}
