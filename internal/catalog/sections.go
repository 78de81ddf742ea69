package catalog

import (
	"context"

	"github.com/shoplight/shoplight/internal/domain"
)

// HomepageSections returns the ordered homepage section list
func (c *Catalog) HomepageSections(ctx context.Context) ([]domain.HomepageSection, error) {
	return query(ctx, c, KeyHomepageSections, c.backend.GetHomepageSections)
}

// AddHomepageSection appends a section to the homepage
func (c *Catalog) AddHomepageSection(ctx context.Context, section domain.HomepageSection) error {
	return mutateVoid(ctx, c, MutAddSection, func(ctx context.Context) error {
		return c.backend.AddHomepageSection(ctx, section)
	})
}

// UpdateHomepageSection replaces a section's full field set
func (c *Catalog) UpdateHomepageSection(ctx context.Context, id string, section domain.HomepageSection) error {
	return mutateVoid(ctx, c, MutUpdateSection, func(ctx context.Context) error {
		return c.backend.UpdateHomepageSection(ctx, id, section)
	})
}

// DeleteHomepageSection removes a section
func (c *Catalog) DeleteHomepageSection(ctx context.Context, id string) error {
	return mutateVoid(ctx, c, MutDeleteSection, func(ctx context.Context) error {
		return c.backend.DeleteHomepageSection(ctx, id)
	})
}

// ReorderHomepageSections applies a new ordering of section ids
func (c *Catalog) ReorderHomepageSections(ctx context.Context, newOrder []string) error {
	return mutateVoid(ctx, c, MutReorderSections, func(ctx context.Context) error {
		return c.backend.ReorderHomepageSections(ctx, newOrder)
	})
}

// ToggleSectionVisibility shows or hides a section
func (c *Catalog) ToggleSectionVisibility(ctx context.Context, id string, visible bool) error {
	return mutateVoid(ctx, c, MutToggleSection, func(ctx context.Context) error {
		return c.backend.ToggleSectionVisibility(ctx, id, visible)
	})
}

// SiteContent returns the editable site copy and toggles
func (c *Catalog) SiteContent(ctx context.Context) (*domain.SiteContent, error) {
	return query(ctx, c, KeySiteContent, c.backend.GetSiteContent)
}

// UpdateSiteContent replaces the full site content record
func (c *Catalog) UpdateSiteContent(ctx context.Context, content domain.SiteContent) error {
	return mutateVoid(ctx, c, MutUpdateSiteContent, func(ctx context.Context) error {
		return c.backend.UpdateSiteContent(ctx, content)
	})
}

// UpdateBusinessTitle edits only the business title
func (c *Catalog) UpdateBusinessTitle(ctx context.Context, title string) error {
	return mutateVoid(ctx, c, MutUpdateBizTitle, func(ctx context.Context) error {
		return c.backend.UpdateBusinessTitle(ctx, title)
	})
}
