package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shoplight/shoplight/internal/domain"
)

// === Blog ===

func (c *Client) GetAllBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return getList[domain.BlogPost](ctx, c, "/api/blog-posts")
}

func (c *Client) GetBlogPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	return getOne[domain.BlogPost](ctx, c, "/api/blog-posts/"+url.PathEscape(id))
}

func (c *Client) CreateBlogPost(ctx context.Context, title, content, excerpt string) (string, error) {
	return c.postForID(ctx, "/api/blog-posts", map[string]string{
		"title": title, "content": content, "excerpt": excerpt,
	})
}

func (c *Client) UpdateBlogPost(ctx context.Context, id, title, content, excerpt string) error {
	return c.do(ctx, http.MethodPut, "/api/blog-posts/"+url.PathEscape(id), map[string]string{
		"title": title, "content": content, "excerpt": excerpt,
	}, nil)
}

func (c *Client) UpdateExcerpt(ctx context.Context, id, excerpt string) error {
	return c.do(ctx, http.MethodPut, "/api/blog-posts/"+url.PathEscape(id)+"/excerpt", map[string]string{
		"excerpt": excerpt,
	}, nil)
}

func (c *Client) DeleteBlogPost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/blog-posts/"+url.PathEscape(id), nil, nil)
}

func (c *Client) AddBlogFile(ctx context.Context, blogID string, file domain.Blob) (string, error) {
	return c.postForID(ctx, "/api/blog-posts/"+url.PathEscape(blogID)+"/files", file)
}

func (c *Client) DeleteBlogFile(ctx context.Context, blogID, filePath string) error {
	return c.do(ctx, http.MethodDelete, "/api/blog-posts/"+url.PathEscape(blogID)+"/files/"+url.PathEscape(filePath), nil, nil)
}

func (c *Client) AddBlogImage(ctx context.Context, blogID string, image domain.Blob, position int64, altText, size string) (string, error) {
	return c.postForID(ctx, "/api/blog-posts/"+url.PathEscape(blogID)+"/images", map[string]any{
		"url": image, "position": position, "altText": altText, "size": size,
	})
}

func (c *Client) UpdateBlogImage(ctx context.Context, blogID, imageID string, position int64, size, altText string) error {
	return c.do(ctx, http.MethodPut, "/api/blog-posts/"+url.PathEscape(blogID)+"/images/"+url.PathEscape(imageID), map[string]any{
		"position": position, "size": size, "altText": altText,
	}, nil)
}

func (c *Client) DeleteBlogImage(ctx context.Context, blogID, imageID string) error {
	return c.do(ctx, http.MethodDelete, "/api/blog-posts/"+url.PathEscape(blogID)+"/images/"+url.PathEscape(imageID), nil, nil)
}

func (c *Client) UpdateBlogTitle(ctx context.Context, title string) error {
	return c.do(ctx, http.MethodPut, "/api/site-content/blog-title", map[string]string{"title": title}, nil)
}

func (c *Client) UpdateBlogDescription(ctx context.Context, description string) error {
	return c.do(ctx, http.MethodPut, "/api/site-content/blog-description", map[string]string{"description": description}, nil)
}

// === Store ===

func (c *Client) GetAllStoreItems(ctx context.Context) ([]domain.StoreItem, error) {
	return getList[domain.StoreItem](ctx, c, "/api/store-items")
}

func (c *Client) GetStoreItem(ctx context.Context, id string) (*domain.StoreItem, error) {
	return getOne[domain.StoreItem](ctx, c, "/api/store-items/"+url.PathEscape(id))
}

func (c *Client) AddStoreItem(ctx context.Context, item domain.StoreItem) (string, error) {
	return c.postForID(ctx, "/api/store-items", item)
}

func (c *Client) UpdateStoreItem(ctx context.Context, item domain.StoreItem) error {
	return c.do(ctx, http.MethodPut, "/api/store-items/"+url.PathEscape(item.ID), item, nil)
}

// === Meetings ===

func (c *Client) GetAvailableMeetingSlots(ctx context.Context) ([]domain.MeetingSlot, error) {
	return getList[domain.MeetingSlot](ctx, c, "/api/meeting-slots?available=true")
}

func (c *Client) GetAllMeetingSlots(ctx context.Context) ([]domain.MeetingSlot, error) {
	return getList[domain.MeetingSlot](ctx, c, "/api/meeting-slots")
}

func (c *Client) GetMeetingSlot(ctx context.Context, id string) (*domain.MeetingSlot, error) {
	return getOne[domain.MeetingSlot](ctx, c, "/api/meeting-slots/"+url.PathEscape(id))
}

func (c *Client) AddMeetingSlot(ctx context.Context, startTime, durationMinutes int64, description string) (string, error) {
	return c.postForID(ctx, "/api/meeting-slots", map[string]any{
		"startTime": startTime, "durationMinutes": durationMinutes, "description": description,
	})
}

func (c *Client) UpdateMeetingSlot(ctx context.Context, id string, startTime, durationMinutes int64, description string) error {
	return c.do(ctx, http.MethodPut, "/api/meeting-slots/"+url.PathEscape(id), map[string]any{
		"startTime": startTime, "durationMinutes": durationMinutes, "description": description,
	}, nil)
}

func (c *Client) BookAppointment(ctx context.Context, customerName, timeSlotID string) (string, error) {
	return c.postForID(ctx, "/api/appointments", map[string]string{
		"customerName": customerName, "timeSlotId": timeSlotID,
	})
}

func (c *Client) CancelAppointment(ctx context.Context, appointmentID string) error {
	return c.do(ctx, http.MethodDelete, "/api/appointments/"+url.PathEscape(appointmentID), nil, nil)
}

func (c *Client) GetMyAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return getList[domain.Appointment](ctx, c, "/api/appointments?scope=mine")
}

func (c *Client) GetAllAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return getList[domain.Appointment](ctx, c, "/api/appointments")
}

// === Livestreams ===

func (c *Client) GetAllLivestreams(ctx context.Context) ([]domain.Livestream, error) {
	return getList[domain.Livestream](ctx, c, "/api/livestreams")
}

func (c *Client) GetLivestream(ctx context.Context, id string) (*domain.Livestream, error) {
	return getOne[domain.Livestream](ctx, c, "/api/livestreams/"+url.PathEscape(id))
}

func (c *Client) AddLivestream(ctx context.Context, title string, startTime int64, externalLink, buttonLabel, description string) (string, error) {
	return c.postForID(ctx, "/api/livestreams", map[string]any{
		"title": title, "startTime": startTime, "externalLink": externalLink,
		"buttonLabel": buttonLabel, "description": description,
	})
}

func (c *Client) UpdateLivestream(ctx context.Context, ls domain.Livestream) error {
	return c.do(ctx, http.MethodPut, "/api/livestreams/"+url.PathEscape(ls.ID), ls, nil)
}

func (c *Client) DeleteLivestream(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/livestreams/"+url.PathEscape(id), nil, nil)
}

// === Links ===

func (c *Client) GetAllLinks(ctx context.Context) ([]domain.LinkItem, error) {
	return getList[domain.LinkItem](ctx, c, "/api/links")
}

func (c *Client) AddLink(ctx context.Context, textLabel, linkURL string, order int64) (string, error) {
	return c.postForID(ctx, "/api/links", map[string]any{
		"textLabel": textLabel, "url": linkURL, "order": order,
	})
}

func (c *Client) UpdateLink(ctx context.Context, link domain.LinkItem) error {
	return c.do(ctx, http.MethodPut, "/api/links/"+url.PathEscape(link.ID), link, nil)
}

func (c *Client) DeleteLink(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/links/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ReorderLinks(ctx context.Context, newOrder []string) error {
	return c.do(ctx, http.MethodPut, "/api/links/order", map[string]any{"order": newOrder}, nil)
}

// === Homepage sections ===

func (c *Client) GetHomepageSections(ctx context.Context) ([]domain.HomepageSection, error) {
	return getList[domain.HomepageSection](ctx, c, "/api/homepage-sections")
}

func (c *Client) AddHomepageSection(ctx context.Context, section domain.HomepageSection) error {
	return c.do(ctx, http.MethodPost, "/api/homepage-sections", section, nil)
}

func (c *Client) UpdateHomepageSection(ctx context.Context, id string, section domain.HomepageSection) error {
	return c.do(ctx, http.MethodPut, "/api/homepage-sections/"+url.PathEscape(id), section, nil)
}

func (c *Client) DeleteHomepageSection(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/homepage-sections/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ReorderHomepageSections(ctx context.Context, newOrder []string) error {
	return c.do(ctx, http.MethodPut, "/api/homepage-sections/order", map[string]any{"order": newOrder}, nil)
}

func (c *Client) ToggleSectionVisibility(ctx context.Context, id string, visible bool) error {
	return c.do(ctx, http.MethodPut, "/api/homepage-sections/"+url.PathEscape(id)+"/visibility", map[string]bool{"visible": visible}, nil)
}

// === Site content ===

func (c *Client) GetSiteContent(ctx context.Context) (*domain.SiteContent, error) {
	return getOne[domain.SiteContent](ctx, c, "/api/site-content")
}

func (c *Client) UpdateSiteContent(ctx context.Context, content domain.SiteContent) error {
	return c.do(ctx, http.MethodPut, "/api/site-content", content, nil)
}

func (c *Client) UpdateBusinessTitle(ctx context.Context, title string) error {
	return c.do(ctx, http.MethodPut, "/api/site-content/business-title", map[string]string{"title": title}, nil)
}

// === MP3 player ===

func (c *Client) GetAllMp3Tracks(ctx context.Context) ([]domain.Mp3Track, error) {
	return getList[domain.Mp3Track](ctx, c, "/api/tracks")
}

func (c *Client) GetMp3TracksByPlaylist(ctx context.Context, playlistID string) ([]domain.Mp3Track, error) {
	return getList[domain.Mp3Track](ctx, c, "/api/playlists/"+url.PathEscape(playlistID)+"/tracks")
}

func (c *Client) UploadMp3Track(ctx context.Context, title, artist string, duration int64, file domain.Blob, playlistID string, order int64) (string, error) {
	return c.postForID(ctx, "/api/tracks", map[string]any{
		"title": title, "artist": artist, "duration": duration,
		"file": file, "playlistId": playlistID, "order": order,
	})
}

func (c *Client) UpdateMp3Track(ctx context.Context, id, title, artist string, duration int64, playlistID string, visible bool, order int64) error {
	return c.do(ctx, http.MethodPut, "/api/tracks/"+url.PathEscape(id), map[string]any{
		"title": title, "artist": artist, "duration": duration,
		"playlistId": playlistID, "visible": visible, "order": order,
	}, nil)
}

func (c *Client) DeleteMp3Track(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tracks/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ReorderMp3Tracks(ctx context.Context, playlistID string, newOrder []string) error {
	return c.do(ctx, http.MethodPut, "/api/playlists/"+url.PathEscape(playlistID)+"/tracks/order", map[string]any{"order": newOrder}, nil)
}

func (c *Client) ToggleMp3TrackVisibility(ctx context.Context, id string, visible bool) error {
	return c.do(ctx, http.MethodPut, "/api/tracks/"+url.PathEscape(id)+"/visibility", map[string]bool{"visible": visible}, nil)
}

func (c *Client) GetAllPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	return getList[domain.Playlist](ctx, c, "/api/playlists")
}

func (c *Client) GetPublicPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	return getList[domain.Playlist](ctx, c, "/api/playlists?public=true")
}

func (c *Client) CreatePlaylist(ctx context.Context, name string) (string, error) {
	return c.postForID(ctx, "/api/playlists", map[string]string{"name": name})
}

func (c *Client) UpdatePlaylist(ctx context.Context, id, name string, order int64, visible bool) error {
	return c.do(ctx, http.MethodPut, "/api/playlists/"+url.PathEscape(id), map[string]any{
		"name": name, "order": order, "visible": visible,
	}, nil)
}

func (c *Client) TogglePlaylistVisibility(ctx context.Context, id string, visible bool) error {
	return c.do(ctx, http.MethodPut, "/api/playlists/"+url.PathEscape(id)+"/visibility", map[string]bool{"visible": visible}, nil)
}

// === Play counts ===

func (c *Client) IncrementPlayCount(ctx context.Context, trackID string) error {
	return c.do(ctx, http.MethodPost, "/api/tracks/"+url.PathEscape(trackID)+"/plays", nil, nil)
}

func (c *Client) GetTrackPlayCount(ctx context.Context, trackID string) (int64, error) {
	var out struct {
		Count int64 `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/tracks/"+url.PathEscape(trackID)+"/plays", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *Client) GetAllTrackPlayCounts(ctx context.Context) ([]domain.CountEntry, error) {
	return getList[domain.CountEntry](ctx, c, "/api/tracks/plays")
}

func (c *Client) ResetTrackPlayCount(ctx context.Context, trackID string) error {
	return c.do(ctx, http.MethodDelete, "/api/tracks/"+url.PathEscape(trackID)+"/plays", nil, nil)
}

func (c *Client) ResetAllTrackPlayCounts(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/tracks/plays", nil, nil)
}

// === Analytics ===

func (c *Client) GetAnalyticsData(ctx context.Context) (*domain.AnalyticsData, error) {
	return getOne[domain.AnalyticsData](ctx, c, "/api/analytics")
}

func (c *Client) TrackPageVisit(ctx context.Context, page string) error {
	return c.do(ctx, http.MethodPost, "/api/analytics/page-visits", map[string]string{"page": page}, nil)
}

func (c *Client) TrackElementClick(ctx context.Context, element string) error {
	return c.do(ctx, http.MethodPost, "/api/analytics/element-clicks", map[string]string{"element": element}, nil)
}

func (c *Client) TrackSectionView(ctx context.Context, sectionID string) error {
	return c.do(ctx, http.MethodPost, "/api/analytics/section-views", map[string]string{"sectionId": sectionID}, nil)
}

func (c *Client) TrackUniqueVisitor(ctx context.Context, sessionID string) (domain.VisitAck, error) {
	var ack domain.VisitAck
	err := c.do(ctx, http.MethodPost, "/api/analytics/unique-visitors", map[string]string{"sessionId": sessionID}, &ack)
	return ack, err
}

// === Profile and roles ===

func (c *Client) GetCallerUserProfile(ctx context.Context) (*domain.UserProfile, error) {
	return getOne[domain.UserProfile](ctx, c, "/api/profile")
}

func (c *Client) SaveCallerUserProfile(ctx context.Context, profile domain.UserProfile) error {
	return c.do(ctx, http.MethodPut, "/api/profile", profile, nil)
}

func (c *Client) GetUserProfile(ctx context.Context, principal string) (*domain.UserProfile, error) {
	return getOne[domain.UserProfile](ctx, c, "/api/users/"+url.PathEscape(principal)+"/profile")
}

func (c *Client) GetCallerUserRole(ctx context.Context) (domain.UserRole, error) {
	var out struct {
		Role domain.UserRole `json:"role"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/profile/role", nil, &out); err != nil {
		return "", err
	}
	return out.Role, nil
}

func (c *Client) AssignUserRole(ctx context.Context, principal string, role domain.UserRole) error {
	return c.do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(principal)+"/role", map[string]domain.UserRole{"role": role}, nil)
}

func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {
	var out struct {
		Admin bool `json:"admin"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/profile/admin", nil, &out); err != nil {
		return false, err
	}
	return out.Admin, nil
}

// === Checkout passthrough ===

func (c *Client) CreateCheckoutSession(ctx context.Context, items []domain.ShoppingItem, successURL, cancelURL string) (string, error) {
	return c.postForID(ctx, "/api/checkout/sessions", map[string]any{
		"items": items, "successUrl": successURL, "cancelUrl": cancelURL,
	})
}

func (c *Client) GetCheckoutSessionStatus(ctx context.Context, sessionID string) (*domain.CheckoutStatus, error) {
	return getOne[domain.CheckoutStatus](ctx, c, "/api/checkout/sessions/"+url.PathEscape(sessionID))
}

func (c *Client) IsCheckoutConfigured(ctx context.Context) (bool, error) {
	var out struct {
		Configured bool `json:"configured"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/checkout/configured", nil, &out); err != nil {
		return false, err
	}
	return out.Configured, nil
}
