// Package visitor implements the daily unique visitor protocol: report
// a stable per-profile session id to the backend at most once per local
// calendar day, and only for confirmed non-admin sessions.
package visitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shoplight/shoplight/internal/domain"
)

// Storage keys for the persisted markers
const (
	keySessionID   = "visitor_session_id"
	keyLastTracked = "last_tracked_date"
)

// Reporter sends the unique-visit event to the backend
type Reporter interface {
	TrackUniqueVisitor(ctx context.Context, sessionID string) (domain.VisitAck, error)
}

// Tracker decides once per page load whether to report a unique visit.
// Storage failures degrade to tracking every load; they never crash.
type Tracker struct {
	storage  domain.LocalStorage
	reporter Reporter
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Tracker
type Option func(*Tracker)

// WithClock overrides the time source (tests)
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New creates a tracker over the given storage and reporter
func New(storage domain.LocalStorage, reporter Reporter, logger *slog.Logger, opts ...Option) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tracker{storage: storage, reporter: reporter, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Track runs the protocol for one page load. It reports only when the
// admin check resolved to a confirmed non-admin and no report succeeded
// yet today. The last-tracked marker is persisted only after a
// successful report, so a failed report retries on the next load.
// Returns true if a report was sent and acknowledged.
func (t *Tracker) Track(ctx context.Context, admin domain.AdminStatus) bool {
	if admin != domain.AdminNo {
		return false
	}

	today := t.localDate()
	if last, ok := t.storage.Get(keyLastTracked); ok && last == today {
		return false
	}

	sessionID := t.sessionID()
	ack, err := t.reporter.TrackUniqueVisitor(ctx, sessionID)
	if err != nil {
		// Non-fatal and invisible to the visitor; the marker stays
		// unset so the next load retries.
		t.logger.Warn("unique visit report failed", "error", err)
		return false
	}

	t.storage.Set(keyLastTracked, today)

	if ack.DayKey != today {
		// The backend buckets days on its own clock; the local marker
		// is not reconciled with it.
		t.logger.Debug("backend day key differs from local date", "dayKey", ack.DayKey, "local", today)
	}
	t.logger.Info("unique visit tracked", "dayKey", ack.DayKey, "count", ack.Count)
	return true
}

// sessionID returns the stable per-profile session identifier, creating
// and persisting it on first use. If storage is unavailable the id is
// regenerated every load, which the backend sees as a new visitor.
func (t *Tracker) sessionID() string {
	if id, ok := t.storage.Get(keySessionID); ok && id != "" {
		return id
	}
	id := "visitor_" + uuid.NewString()
	t.storage.Set(keySessionID, id)
	return id
}

// localDate formats the current local calendar date as YYYY-MM-DD.
// Local time, not UTC: a "day" is visitor-local.
func (t *Tracker) localDate() string {
	return t.now().Local().Format("2006-01-02")
}
