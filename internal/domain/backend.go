package domain

import "context"

// ConnState tracks the lifecycle of the backend handle. The catalog
// branches on it explicitly: reads degrade to empty defaults until the
// handle is Ready, writes reject.
type ConnState int32

const (
	Connecting ConnState = iota
	Ready
	Failed
)

func (s ConnState) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Backend is the single authenticated handle through which all domain
// operations are invoked. The remote service owns persistence,
// authorization and business rules; this client only consumes it.
//
// Conventions: read-one operations return (nil, nil) for a missing id.
// Update operations take the full field set; the backend does not merge
// partial updates. Deleting a parent entity also removes its dependent
// attachments server-side.
type Backend interface {
	// === Blog ===
	GetAllBlogPosts(ctx context.Context) ([]BlogPost, error)
	GetBlogPost(ctx context.Context, id string) (*BlogPost, error)
	CreateBlogPost(ctx context.Context, title, content, excerpt string) (string, error)
	UpdateBlogPost(ctx context.Context, id, title, content, excerpt string) error
	UpdateExcerpt(ctx context.Context, id, excerpt string) error
	DeleteBlogPost(ctx context.Context, id string) error
	AddBlogFile(ctx context.Context, blogID string, file Blob) (string, error)
	DeleteBlogFile(ctx context.Context, blogID, filePath string) error
	AddBlogImage(ctx context.Context, blogID string, image Blob, position int64, altText, size string) (string, error)
	UpdateBlogImage(ctx context.Context, blogID, imageID string, position int64, size, altText string) error
	DeleteBlogImage(ctx context.Context, blogID, imageID string) error
	UpdateBlogTitle(ctx context.Context, title string) error
	UpdateBlogDescription(ctx context.Context, description string) error

	// === Store ===
	GetAllStoreItems(ctx context.Context) ([]StoreItem, error)
	GetStoreItem(ctx context.Context, id string) (*StoreItem, error)
	AddStoreItem(ctx context.Context, item StoreItem) (string, error)
	UpdateStoreItem(ctx context.Context, item StoreItem) error

	// === Meetings ===
	GetAvailableMeetingSlots(ctx context.Context) ([]MeetingSlot, error)
	GetAllMeetingSlots(ctx context.Context) ([]MeetingSlot, error)
	GetMeetingSlot(ctx context.Context, id string) (*MeetingSlot, error)
	AddMeetingSlot(ctx context.Context, startTime, durationMinutes int64, description string) (string, error)
	UpdateMeetingSlot(ctx context.Context, id string, startTime, durationMinutes int64, description string) error
	BookAppointment(ctx context.Context, customerName, timeSlotID string) (string, error)
	CancelAppointment(ctx context.Context, appointmentID string) error
	GetMyAppointments(ctx context.Context) ([]Appointment, error)
	GetAllAppointments(ctx context.Context) ([]Appointment, error)

	// === Livestreams ===
	GetAllLivestreams(ctx context.Context) ([]Livestream, error)
	GetLivestream(ctx context.Context, id string) (*Livestream, error)
	AddLivestream(ctx context.Context, title string, startTime int64, externalLink, buttonLabel, description string) (string, error)
	UpdateLivestream(ctx context.Context, ls Livestream) error
	DeleteLivestream(ctx context.Context, id string) error

	// === Links ===
	GetAllLinks(ctx context.Context) ([]LinkItem, error)
	AddLink(ctx context.Context, textLabel, url string, order int64) (string, error)
	UpdateLink(ctx context.Context, link LinkItem) error
	DeleteLink(ctx context.Context, id string) error
	ReorderLinks(ctx context.Context, newOrder []string) error

	// === Homepage sections ===
	GetHomepageSections(ctx context.Context) ([]HomepageSection, error)
	AddHomepageSection(ctx context.Context, section HomepageSection) error
	UpdateHomepageSection(ctx context.Context, id string, section HomepageSection) error
	DeleteHomepageSection(ctx context.Context, id string) error
	ReorderHomepageSections(ctx context.Context, newOrder []string) error
	ToggleSectionVisibility(ctx context.Context, id string, visible bool) error

	// === Site content ===
	GetSiteContent(ctx context.Context) (*SiteContent, error)
	UpdateSiteContent(ctx context.Context, content SiteContent) error
	UpdateBusinessTitle(ctx context.Context, title string) error

	// === MP3 player ===
	GetAllMp3Tracks(ctx context.Context) ([]Mp3Track, error)
	GetMp3TracksByPlaylist(ctx context.Context, playlistID string) ([]Mp3Track, error)
	UploadMp3Track(ctx context.Context, title, artist string, duration int64, file Blob, playlistID string, order int64) (string, error)
	UpdateMp3Track(ctx context.Context, id, title, artist string, duration int64, playlistID string, visible bool, order int64) error
	DeleteMp3Track(ctx context.Context, id string) error
	ReorderMp3Tracks(ctx context.Context, playlistID string, newOrder []string) error
	ToggleMp3TrackVisibility(ctx context.Context, id string, visible bool) error
	GetAllPlaylists(ctx context.Context) ([]Playlist, error)
	GetPublicPlaylists(ctx context.Context) ([]Playlist, error)
	CreatePlaylist(ctx context.Context, name string) (string, error)
	UpdatePlaylist(ctx context.Context, id, name string, order int64, visible bool) error
	TogglePlaylistVisibility(ctx context.Context, id string, visible bool) error

	// === Play counts ===
	IncrementPlayCount(ctx context.Context, trackID string) error
	GetTrackPlayCount(ctx context.Context, trackID string) (int64, error)
	GetAllTrackPlayCounts(ctx context.Context) ([]CountEntry, error)
	ResetTrackPlayCount(ctx context.Context, trackID string) error
	ResetAllTrackPlayCounts(ctx context.Context) error

	// === Analytics ===
	GetAnalyticsData(ctx context.Context) (*AnalyticsData, error)
	TrackPageVisit(ctx context.Context, page string) error
	TrackElementClick(ctx context.Context, element string) error
	TrackSectionView(ctx context.Context, sectionID string) error
	TrackUniqueVisitor(ctx context.Context, sessionID string) (VisitAck, error)

	// === Profile and roles ===
	GetCallerUserProfile(ctx context.Context) (*UserProfile, error)
	SaveCallerUserProfile(ctx context.Context, profile UserProfile) error
	GetUserProfile(ctx context.Context, principal string) (*UserProfile, error)
	GetCallerUserRole(ctx context.Context) (UserRole, error)
	AssignUserRole(ctx context.Context, principal string, role UserRole) error
	IsCallerAdmin(ctx context.Context) (bool, error)

	// === Checkout passthrough ===
	CreateCheckoutSession(ctx context.Context, items []ShoppingItem, successURL, cancelURL string) (string, error)
	GetCheckoutSessionStatus(ctx context.Context, sessionID string) (*CheckoutStatus, error)
	IsCheckoutConfigured(ctx context.Context) (bool, error)
}
