package visitor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shoplight/shoplight/internal/domain"
)

// memStorage is an in-memory domain.LocalStorage
type memStorage struct {
	data map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string]string)}
}

func (m *memStorage) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memStorage) Set(key, value string) {
	m.data[key] = value
}

// brokenStorage loses every write and finds nothing
type brokenStorage struct{}

func (brokenStorage) Get(key string) (string, bool) { return "", false }
func (brokenStorage) Set(key, value string)         {}

// mockReporter records unique-visit reports
type mockReporter struct {
	calls    []string
	ack      domain.VisitAck
	err      error
	dayKeyFn func() string
}

func (m *mockReporter) TrackUniqueVisitor(ctx context.Context, sessionID string) (domain.VisitAck, error) {
	m.calls = append(m.calls, sessionID)
	if m.err != nil {
		return domain.VisitAck{}, m.err
	}
	ack := m.ack
	if m.dayKeyFn != nil {
		ack.DayKey = m.dayKeyFn()
	}
	return ack, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTrackOncePerDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	storage := newMemStorage()
	reporter := &mockReporter{ack: domain.VisitAck{DayKey: "2026-03-14", Count: 1}}
	tracker := New(storage, reporter, nil, WithClock(fixedClock(now)))

	if !tracker.Track(context.Background(), domain.AdminNo) {
		t.Fatal("first track of the day should report")
	}
	if tracker.Track(context.Background(), domain.AdminNo) {
		t.Fatal("second track same day should not report")
	}
	if len(reporter.calls) != 1 {
		t.Errorf("reporter called %d times, want 1", len(reporter.calls))
	}
}

func TestTrackAgainNextDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 50, 0, 0, time.Local)
	storage := newMemStorage()
	reporter := &mockReporter{dayKeyFn: func() string { return now.Format("2006-01-02") }}
	tracker := New(storage, reporter, nil, WithClock(func() time.Time { return now }))

	if !tracker.Track(context.Background(), domain.AdminNo) {
		t.Fatal("first day should report")
	}

	now = now.Add(20 * time.Minute) // crosses midnight

	if !tracker.Track(context.Background(), domain.AdminNo) {
		t.Fatal("new local day should report again")
	}
	if len(reporter.calls) != 2 {
		t.Errorf("reporter called %d times, want 2", len(reporter.calls))
	}
}

func TestSessionIDStableAcrossDays(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	storage := newMemStorage()
	reporter := &mockReporter{dayKeyFn: func() string { return now.Format("2006-01-02") }}
	tracker := New(storage, reporter, nil, WithClock(func() time.Time { return now }))

	tracker.Track(context.Background(), domain.AdminNo)
	now = now.Add(24 * time.Hour)
	tracker.Track(context.Background(), domain.AdminNo)

	if len(reporter.calls) != 2 {
		t.Fatalf("reporter called %d times, want 2", len(reporter.calls))
	}
	if reporter.calls[0] != reporter.calls[1] {
		t.Errorf("session id changed between days: %q vs %q", reporter.calls[0], reporter.calls[1])
	}
	if !strings.HasPrefix(reporter.calls[0], "visitor_") {
		t.Errorf("session id %q lacks visitor_ prefix", reporter.calls[0])
	}
}

func TestNoTrackingForAdminsOrUnknown(t *testing.T) {
	for _, admin := range []domain.AdminStatus{domain.AdminYes, domain.AdminUnknown} {
		storage := newMemStorage()
		reporter := &mockReporter{}
		tracker := New(storage, reporter, nil)

		if tracker.Track(context.Background(), admin) {
			t.Errorf("Track reported for admin status %v", admin)
		}
		if len(reporter.calls) != 0 {
			t.Errorf("reporter called for admin status %v", admin)
		}
	}
}

func TestFailedReportRetriesNextLoad(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	storage := newMemStorage()
	reporter := &mockReporter{err: errors.New("offline")}
	tracker := New(storage, reporter, nil, WithClock(fixedClock(now)))

	if tracker.Track(context.Background(), domain.AdminNo) {
		t.Fatal("failed report must not count as tracked")
	}
	if _, ok := storage.Get("last_tracked_date"); ok {
		t.Fatal("marker persisted despite failed report")
	}

	reporter.err = nil
	reporter.ack = domain.VisitAck{DayKey: "2026-03-14", Count: 1}

	if !tracker.Track(context.Background(), domain.AdminNo) {
		t.Fatal("retry after failure should report")
	}
	if len(reporter.calls) != 2 {
		t.Errorf("reporter called %d times, want 2", len(reporter.calls))
	}
}

func TestBrokenStorageStillReports(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	reporter := &mockReporter{ack: domain.VisitAck{DayKey: "2026-03-14"}}
	tracker := New(brokenStorage{}, reporter, nil, WithClock(fixedClock(now)))

	// With no persistence every load looks like the first of the day
	if !tracker.Track(context.Background(), domain.AdminNo) {
		t.Fatal("broken storage should degrade to reporting, not crash")
	}
	if !tracker.Track(context.Background(), domain.AdminNo) {
		t.Fatal("broken storage should report on every load")
	}
	if len(reporter.calls) != 2 {
		t.Errorf("reporter called %d times, want 2", len(reporter.calls))
	}
	if reporter.calls[0] == reporter.calls[1] {
		t.Error("session ids should differ when storage cannot persist")
	}
}

func TestBackendDayKeyMismatchDoesNotBlockMarker(t *testing.T) {
	now := time.Date(2026, 3, 14, 0, 5, 0, 0, time.Local)
	storage := newMemStorage()
	// Backend is a timezone ahead and still on yesterday's bucket
	reporter := &mockReporter{ack: domain.VisitAck{DayKey: "2026-03-13", Count: 7}}
	tracker := New(storage, reporter, nil, WithClock(fixedClock(now)))

	if !tracker.Track(context.Background(), domain.AdminNo) {
		t.Fatal("mismatched day key should still count as tracked")
	}
	if last, ok := storage.Get("last_tracked_date"); !ok || last != "2026-03-14" {
		t.Errorf("marker = %q, want local date 2026-03-14", last)
	}
}
