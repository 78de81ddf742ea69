package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shoplight/shoplight/internal/domain"
)

// AllLinks returns the ordered link list
func (c *Catalog) AllLinks(ctx context.Context) ([]domain.LinkItem, error) {
	return query(ctx, c, KeyLinks, c.backend.GetAllLinks)
}

// AddLink appends a link and returns its id
func (c *Catalog) AddLink(ctx context.Context, textLabel, linkURL string, order int64) (string, error) {
	if err := validateURL(linkURL); err != nil {
		return "", err
	}
	if strings.TrimSpace(textLabel) == "" {
		return "", fmt.Errorf("%w: link label is required", domain.ErrInvalidInput)
	}
	return mutate(ctx, c, MutAddLink, func(ctx context.Context) (string, error) {
		return c.backend.AddLink(ctx, textLabel, linkURL, order)
	})
}

// UpdateLink replaces a link's full field set
func (c *Catalog) UpdateLink(ctx context.Context, link domain.LinkItem) error {
	if err := validateURL(link.URL); err != nil {
		return err
	}
	return mutateVoid(ctx, c, MutUpdateLink, func(ctx context.Context) error {
		return c.backend.UpdateLink(ctx, link)
	})
}

// DeleteLink removes a link
func (c *Catalog) DeleteLink(ctx context.Context, id string) error {
	return mutateVoid(ctx, c, MutDeleteLink, func(ctx context.Context) error {
		return c.backend.DeleteLink(ctx, id)
	})
}

// ReorderLinks applies a new ordering of link ids
func (c *Catalog) ReorderLinks(ctx context.Context, newOrder []string) error {
	return mutateVoid(ctx, c, MutReorderLinks, func(ctx context.Context) error {
		return c.backend.ReorderLinks(ctx, newOrder)
	})
}

// validateURL rejects malformed or non-web URLs before any network call
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: malformed URL %q", domain.ErrInvalidInput, raw)
	}
	return nil
}
