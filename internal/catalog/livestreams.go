package catalog

import (
	"context"

	"github.com/shoplight/shoplight/internal/domain"
)

// AllLivestreams returns every announced stream
func (c *Catalog) AllLivestreams(ctx context.Context) ([]domain.Livestream, error) {
	return query(ctx, c, KeyLivestreams, c.backend.GetAllLivestreams)
}

// Livestream returns one stream, or nil if the id is unknown
func (c *Catalog) Livestream(ctx context.Context, id string) (*domain.Livestream, error) {
	return query(ctx, c, paramKey(KeyLivestream, id), func(ctx context.Context) (*domain.Livestream, error) {
		return c.backend.GetLivestream(ctx, id)
	})
}

// AddLivestream announces a new stream and returns its id
func (c *Catalog) AddLivestream(ctx context.Context, title string, startTime int64, externalLink, buttonLabel, description string) (string, error) {
	if err := validateURL(externalLink); err != nil {
		return "", err
	}
	return mutate(ctx, c, MutAddLivestream, func(ctx context.Context) (string, error) {
		return c.backend.AddLivestream(ctx, title, startTime, externalLink, buttonLabel, description)
	})
}

// UpdateLivestream replaces a stream's full field set
func (c *Catalog) UpdateLivestream(ctx context.Context, ls domain.Livestream) error {
	if err := validateURL(ls.ExternalLink); err != nil {
		return err
	}
	return mutateVoid(ctx, c, MutUpdateLivestream, func(ctx context.Context) error {
		return c.backend.UpdateLivestream(ctx, ls)
	})
}

// DeleteLivestream removes an announcement
func (c *Catalog) DeleteLivestream(ctx context.Context, id string) error {
	return mutateVoid(ctx, c, MutDeleteLivestream, func(ctx context.Context) error {
		return c.backend.DeleteLivestream(ctx, id)
	})
}
