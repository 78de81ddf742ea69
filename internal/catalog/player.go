package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shoplight/shoplight/internal/domain"
)

// AllMp3Tracks returns every uploaded track
func (c *Catalog) AllMp3Tracks(ctx context.Context) ([]domain.Mp3Track, error) {
	return query(ctx, c, KeyMp3Tracks, c.backend.GetAllMp3Tracks)
}

// Mp3TracksByPlaylist returns one playlist's tracks. The playlist id is
// part of the cache key, so lists for different playlists never share a
// slot.
func (c *Catalog) Mp3TracksByPlaylist(ctx context.Context, playlistID string) ([]domain.Mp3Track, error) {
	return query(ctx, c, paramKey(KeyMp3TracksByPlaylist, playlistID), func(ctx context.Context) ([]domain.Mp3Track, error) {
		return c.backend.GetMp3TracksByPlaylist(ctx, playlistID)
	})
}

// UploadMp3Track registers an uploaded audio file and returns its id
func (c *Catalog) UploadMp3Track(ctx context.Context, title, artist string, duration int64, file domain.Blob, playlistID string, order int64) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("%w: track title is required", domain.ErrInvalidInput)
	}
	if file.IsZero() {
		return "", fmt.Errorf("%w: track file is required", domain.ErrInvalidInput)
	}
	return mutate(ctx, c, MutUploadTrack, func(ctx context.Context) (string, error) {
		return c.backend.UploadMp3Track(ctx, title, artist, duration, file, playlistID, order)
	})
}

// UpdateMp3Track replaces a track's metadata
func (c *Catalog) UpdateMp3Track(ctx context.Context, id, title, artist string, duration int64, playlistID string, visible bool, order int64) error {
	return mutateVoid(ctx, c, MutUpdateTrack, func(ctx context.Context) error {
		return c.backend.UpdateMp3Track(ctx, id, title, artist, duration, playlistID, visible, order)
	})
}

// DeleteMp3Track removes a track
func (c *Catalog) DeleteMp3Track(ctx context.Context, id string) error {
	return mutateVoid(ctx, c, MutDeleteTrack, func(ctx context.Context) error {
		return c.backend.DeleteMp3Track(ctx, id)
	})
}

// ReorderMp3Tracks applies a new track ordering within one playlist
func (c *Catalog) ReorderMp3Tracks(ctx context.Context, playlistID string, newOrder []string) error {
	return mutateVoid(ctx, c, MutReorderTracks, func(ctx context.Context) error {
		return c.backend.ReorderMp3Tracks(ctx, playlistID, newOrder)
	})
}

// ToggleMp3TrackVisibility shows or hides a track
func (c *Catalog) ToggleMp3TrackVisibility(ctx context.Context, id string, visible bool) error {
	return mutateVoid(ctx, c, MutToggleTrack, func(ctx context.Context) error {
		return c.backend.ToggleMp3TrackVisibility(ctx, id, visible)
	})
}

// AllPlaylists returns every playlist (admin view)
func (c *Catalog) AllPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	return query(ctx, c, KeyPlaylists, c.backend.GetAllPlaylists)
}

// PublicPlaylists returns visitor-visible playlists
func (c *Catalog) PublicPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	return query(ctx, c, KeyPublicPlaylists, c.backend.GetPublicPlaylists)
}

// CreatePlaylist creates an empty playlist and returns its id
func (c *Catalog) CreatePlaylist(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: playlist name is required", domain.ErrInvalidInput)
	}
	return mutate(ctx, c, MutCreatePlaylist, func(ctx context.Context) (string, error) {
		return c.backend.CreatePlaylist(ctx, name)
	})
}

// UpdatePlaylist replaces a playlist's full field set
func (c *Catalog) UpdatePlaylist(ctx context.Context, id, name string, order int64, visible bool) error {
	return mutateVoid(ctx, c, MutUpdatePlaylist, func(ctx context.Context) error {
		return c.backend.UpdatePlaylist(ctx, id, name, order, visible)
	})
}

// TogglePlaylistVisibility shows or hides a playlist
func (c *Catalog) TogglePlaylistVisibility(ctx context.Context, id string, visible bool) error {
	return mutateVoid(ctx, c, MutTogglePlaylist, func(ctx context.Context) error {
		return c.backend.TogglePlaylistVisibility(ctx, id, visible)
	})
}

// IncrementPlayCount bumps a track's play counter
func (c *Catalog) IncrementPlayCount(ctx context.Context, trackID string) error {
	return mutateVoid(ctx, c, MutIncrementPlays, func(ctx context.Context) error {
		return c.backend.IncrementPlayCount(ctx, trackID)
	})
}

// TrackPlayCount returns one track's play counter
func (c *Catalog) TrackPlayCount(ctx context.Context, trackID string) (int64, error) {
	return query(ctx, c, paramKey(KeyTrackPlayCount, trackID), func(ctx context.Context) (int64, error) {
		return c.backend.GetTrackPlayCount(ctx, trackID)
	})
}

// AllTrackPlayCounts returns every play counter
func (c *Catalog) AllTrackPlayCounts(ctx context.Context) ([]domain.CountEntry, error) {
	return query(ctx, c, KeyTrackPlayCounts, c.backend.GetAllTrackPlayCounts)
}

// ResetTrackPlayCount zeroes one track's counter
func (c *Catalog) ResetTrackPlayCount(ctx context.Context, trackID string) error {
	return mutateVoid(ctx, c, MutResetPlays, func(ctx context.Context) error {
		return c.backend.ResetTrackPlayCount(ctx, trackID)
	})
}

// ResetAllTrackPlayCounts zeroes every counter
func (c *Catalog) ResetAllTrackPlayCounts(ctx context.Context) error {
	return mutateVoid(ctx, c, MutResetAllPlays, func(ctx context.Context) error {
		return c.backend.ResetAllTrackPlayCounts(ctx)
	})
}
