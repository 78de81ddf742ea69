package catalog

// Mutation names. Each names exactly one backend write operation and
// addresses its row in the invalidation table.
const (
	MutCreateBlogPost    = "createBlogPost"
	MutUpdateBlogPost    = "updateBlogPost"
	MutUpdateExcerpt     = "updateExcerpt"
	MutDeleteBlogPost    = "deleteBlogPost"
	MutAddBlogFile       = "addBlogFile"
	MutDeleteBlogFile    = "deleteBlogFile"
	MutAddBlogImage      = "addBlogImage"
	MutUpdateBlogImage   = "updateBlogImage"
	MutDeleteBlogImage   = "deleteBlogImage"
	MutUpdateBlogTitle   = "updateBlogTitle"
	MutUpdateBlogDesc    = "updateBlogDescription"
	MutAddStoreItem      = "addStoreItem"
	MutUpdateStoreItem   = "updateStoreItem"
	MutAddMeetingSlot    = "addMeetingSlot"
	MutUpdateMeetingSlot = "updateMeetingSlot"
	MutBookAppointment   = "bookAppointment"
	MutCancelAppointment = "cancelAppointment"
	MutAddLivestream     = "addLivestream"
	MutUpdateLivestream  = "updateLivestream"
	MutDeleteLivestream  = "deleteLivestream"
	MutAddLink           = "addLink"
	MutUpdateLink        = "updateLink"
	MutDeleteLink        = "deleteLink"
	MutReorderLinks      = "reorderLinks"
	MutAddSection        = "addHomepageSection"
	MutUpdateSection     = "updateHomepageSection"
	MutDeleteSection     = "deleteHomepageSection"
	MutReorderSections   = "reorderHomepageSections"
	MutToggleSection     = "toggleSectionVisibility"
	MutUpdateSiteContent = "updateSiteContent"
	MutUpdateBizTitle    = "updateBusinessTitle"
	MutUploadTrack       = "uploadMp3Track"
	MutUpdateTrack       = "updateMp3Track"
	MutDeleteTrack       = "deleteMp3Track"
	MutReorderTracks     = "reorderMp3Tracks"
	MutToggleTrack       = "toggleMp3TrackVisibility"
	MutCreatePlaylist    = "createPlaylist"
	MutUpdatePlaylist    = "updatePlaylist"
	MutTogglePlaylist    = "togglePlaylistVisibility"
	MutIncrementPlays    = "incrementPlayCount"
	MutResetPlays        = "resetTrackPlayCount"
	MutResetAllPlays     = "resetAllTrackPlayCounts"
	MutTrackVisitor      = "trackUniqueVisitor"
	MutSaveProfile       = "saveCallerUserProfile"
	MutAssignRole        = "assignUserRole"
)

// Shared invalidation sets. A mutation that touches an entity family
// invalidates both the list queries and the read-one prefix for that
// family; over-invalidating costs a refetch, under-invalidating costs a
// stale UI.
var (
	blogEdges     = []string{KeyBlogPosts, KeyBlogPost}
	storeEdges    = []string{KeyStoreItems, KeyStoreItem}
	slotEdges     = []string{KeyMeetingSlots, KeyAllMeetingSlots, KeyMeetingSlot}
	streamEdges   = []string{KeyLivestreams, KeyLivestream}
	trackEdges    = []string{KeyMp3Tracks, KeyMp3TracksByPlaylist}
	playlistEdges = []string{KeyPlaylists, KeyPublicPlaylists}
	playEdges     = []string{KeyMp3Tracks, KeyMp3TracksByPlaylist, KeyTrackPlayCounts, KeyTrackPlayCount}
)

// Edges maps every mutation to the query-key prefixes it invalidates on
// success. Every backend write that can change data behind a query must
// have a row here.
var Edges = map[string][]string{
	MutCreateBlogPost:  blogEdges,
	MutUpdateBlogPost:  blogEdges,
	MutUpdateExcerpt:   blogEdges,
	MutDeleteBlogPost:  blogEdges,
	MutAddBlogFile:     blogEdges,
	MutDeleteBlogFile:  blogEdges,
	MutAddBlogImage:    blogEdges,
	MutUpdateBlogImage: blogEdges,
	MutDeleteBlogImage: blogEdges,

	// Blog title/description live in the site content record
	MutUpdateBlogTitle: {KeySiteContent},
	MutUpdateBlogDesc:  {KeySiteContent},

	MutAddStoreItem:    storeEdges,
	MutUpdateStoreItem: storeEdges,

	MutAddMeetingSlot:    slotEdges,
	MutUpdateMeetingSlot: slotEdges,

	// Booking flips a slot's availability and grows the caller's list
	MutBookAppointment:   {KeyMeetingSlots, KeyAllMeetingSlots, KeyMeetingSlot, KeyMyAppointments, KeyAllAppointments},
	MutCancelAppointment: {KeyMeetingSlots, KeyAllMeetingSlots, KeyMeetingSlot, KeyMyAppointments, KeyAllAppointments},

	MutAddLivestream:    streamEdges,
	MutUpdateLivestream: streamEdges,
	MutDeleteLivestream: streamEdges,

	MutAddLink:      {KeyLinks},
	MutUpdateLink:   {KeyLinks},
	MutDeleteLink:   {KeyLinks},
	MutReorderLinks: {KeyLinks},

	MutAddSection:      {KeyHomepageSections},
	MutUpdateSection:   {KeyHomepageSections},
	MutDeleteSection:   {KeyHomepageSections},
	MutReorderSections: {KeyHomepageSections},
	MutToggleSection:   {KeyHomepageSections},

	MutUpdateSiteContent: {KeySiteContent},
	MutUpdateBizTitle:    {KeySiteContent},

	// Track mutations affect both the global list and the per-playlist
	// lists; reordering within one playlist still invalidates both.
	MutUploadTrack:   trackEdges,
	MutUpdateTrack:   trackEdges,
	MutDeleteTrack:   trackEdges,
	MutReorderTracks: trackEdges,
	MutToggleTrack:   trackEdges,

	MutCreatePlaylist: playlistEdges,
	MutUpdatePlaylist: playlistEdges,
	MutTogglePlaylist: playlistEdges,

	MutIncrementPlays: playEdges,
	MutResetPlays:     playEdges,
	MutResetAllPlays:  playEdges,

	MutTrackVisitor: {KeyAnalytics},

	// Caller-scoped: must not touch data visible to other callers
	MutSaveProfile: {KeyCurrentUserProfile},

	// A role change can flip the target's profile view and the caller's
	// own admin checks when self-assigned
	MutAssignRole: {KeyUserProfile, KeyCallerRole, KeyIsAdmin},
}
