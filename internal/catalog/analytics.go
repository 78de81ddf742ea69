package catalog

import (
	"context"

	"github.com/shoplight/shoplight/internal/domain"
)

// AnalyticsData returns the aggregated visitor counters
func (c *Catalog) AnalyticsData(ctx context.Context) (*domain.AnalyticsData, error) {
	return query(ctx, c, KeyAnalytics, c.backend.GetAnalyticsData)
}

// TrackPageVisit bumps a page counter. Fire-and-forget: a not-ready
// handle is a silent no-op and no query is invalidated.
func (c *Catalog) TrackPageVisit(ctx context.Context, page string) error {
	if c.State() != domain.Ready {
		return nil
	}
	return c.backend.TrackPageVisit(ctx, page)
}

// TrackElementClick bumps an element counter. Fire-and-forget.
func (c *Catalog) TrackElementClick(ctx context.Context, element string) error {
	if c.State() != domain.Ready {
		return nil
	}
	return c.backend.TrackElementClick(ctx, element)
}

// TrackSectionView bumps a section counter. Fire-and-forget.
func (c *Catalog) TrackSectionView(ctx context.Context, sectionID string) error {
	if c.State() != domain.Ready {
		return nil
	}
	return c.backend.TrackSectionView(ctx, sectionID)
}

// TrackUniqueVisitor reports a unique-visit event and returns the
// backend's day-bucket acknowledgment. Unlike the other trackers this
// is a real mutation: the caller persists its local marker only on
// success, so a not-ready handle must reject rather than no-op.
func (c *Catalog) TrackUniqueVisitor(ctx context.Context, sessionID string) (domain.VisitAck, error) {
	return mutate(ctx, c, MutTrackVisitor, func(ctx context.Context) (domain.VisitAck, error) {
		return c.backend.TrackUniqueVisitor(ctx, sessionID)
	})
}
