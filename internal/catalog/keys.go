package catalog

// Query cache keys. Parameterized queries append the parameter after a
// colon (e.g. blogPost:{id}), so distinct parameter values never share
// a cache slot and a bare key addresses the whole family.
const (
	// KeyBlogPosts is the cache key for the full blog post list
	KeyBlogPosts = "blogPosts"

	// KeyBlogPost is the prefix for single post caches (blogPost:{id})
	KeyBlogPost = "blogPost"

	// KeyStoreItems is the cache key for the storefront listing
	KeyStoreItems = "storeItems"

	// KeyStoreItem is the prefix for single item caches (storeItem:{id})
	KeyStoreItem = "storeItem"

	// KeyMeetingSlots is the cache key for unbooked meeting slots
	KeyMeetingSlots = "meetingSlots"

	// KeyAllMeetingSlots is the cache key for every slot, booked or not
	KeyAllMeetingSlots = "allMeetingSlots"

	// KeyMeetingSlot is the prefix for single slot caches (meetingSlot:{id})
	KeyMeetingSlot = "meetingSlot"

	// KeyMyAppointments is the cache key for the caller's appointments
	KeyMyAppointments = "myAppointments"

	// KeyAllAppointments is the cache key for all appointments (admin)
	KeyAllAppointments = "allAppointments"

	// KeyLivestreams is the cache key for the livestream list
	KeyLivestreams = "livestreams"

	// KeyLivestream is the prefix for single stream caches (livestream:{id})
	KeyLivestream = "livestream"

	// KeyLinks is the cache key for the ordered link list
	KeyLinks = "links"

	// KeyHomepageSections is the cache key for the homepage section list
	KeyHomepageSections = "homepageSections"

	// KeySiteContent is the cache key for the editable site copy
	KeySiteContent = "siteContent"

	// KeyMp3Tracks is the cache key for the full track list
	KeyMp3Tracks = "mp3Tracks"

	// KeyMp3TracksByPlaylist is the prefix for per-playlist track caches
	// (mp3TracksByPlaylist:{playlistID})
	KeyMp3TracksByPlaylist = "mp3TracksByPlaylist"

	// KeyPlaylists is the cache key for all playlists
	KeyPlaylists = "playlists"

	// KeyPublicPlaylists is the cache key for visitor-visible playlists
	KeyPublicPlaylists = "publicPlaylists"

	// KeyTrackPlayCounts is the cache key for all play counters
	KeyTrackPlayCounts = "trackPlayCounts"

	// KeyTrackPlayCount is the prefix for one counter (trackPlayCount:{id})
	KeyTrackPlayCount = "trackPlayCount"

	// KeyAnalytics is the cache key for the aggregated analytics record
	KeyAnalytics = "analytics"

	// KeyCurrentUserProfile is the cache key for the caller's profile
	KeyCurrentUserProfile = "currentUserProfile"

	// KeyUserProfile is the prefix for profile lookups (userProfile:{principal})
	KeyUserProfile = "userProfile"

	// KeyCallerRole is the cache key for the caller's backend role
	KeyCallerRole = "callerRole"

	// KeyIsAdmin is the cache key for the admin check
	KeyIsAdmin = "isAdmin"

	// KeyCheckoutConfigured is the cache key for the checkout probe
	KeyCheckoutConfigured = "checkoutConfigured"
)

// paramKey builds a parameterized cache key (prefix:param)
func paramKey(prefix, param string) string {
	return prefix + ":" + param
}
