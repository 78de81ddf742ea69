package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shoplight/shoplight/internal/catalog"
)

const loadTimeout = 30 * time.Second

// Command factories for async operations

// LoadSectionsCmd loads the homepage layout and site copy
func LoadSectionsCmd(cat *catalog.Catalog) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		sections, err := cat.HomepageSections(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading sections"}
		}
		content, err := cat.SiteContent(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading site content"}
		}
		return SectionsLoadedMsg{Sections: sections, Content: content}
	}
}

// LoadPaneCmd loads the rows for a content pane
func LoadPaneCmd(cat *catalog.Catalog, pane Pane) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		rows, err := loadRows(ctx, cat, pane)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading " + pane.String()}
		}
		return RowsLoadedMsg{Pane: pane, Rows: rows}
	}
}

func loadRows(ctx context.Context, cat *catalog.Catalog, pane Pane) ([]Row, error) {
	switch pane {
	case PaneBlog:
		posts, err := cat.AllBlogPosts(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]Row, 0, len(posts))
		for _, p := range posts {
			rows = append(rows, Row{ID: p.ID, Title: p.Title, Detail: p.Excerpt})
		}
		return rows, nil

	case PaneStore:
		items, err := cat.AllStoreItems(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]Row, 0, len(items))
		for _, item := range items {
			detail := fmt.Sprintf("%.2f", float64(item.PriceCents)/100)
			if !item.Available {
				detail += " (unavailable)"
			}
			rows = append(rows, Row{ID: item.ID, Title: item.Title, Detail: detail})
		}
		return rows, nil

	case PaneMeetings:
		slots, err := cat.AvailableMeetingSlots(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]Row, 0, len(slots))
		for _, s := range slots {
			start := time.Unix(0, s.StartTime).Local().Format("Mon Jan 2 15:04")
			rows = append(rows, Row{
				ID:     s.ID,
				Title:  start,
				Detail: fmt.Sprintf("%d min  %s", s.DurationMinutes, s.Description),
			})
		}
		return rows, nil

	case PaneLivestreams:
		streams, err := cat.AllLivestreams(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]Row, 0, len(streams))
		for _, ls := range streams {
			rows = append(rows, Row{ID: ls.ID, Title: ls.Title, Detail: ls.Description})
		}
		return rows, nil

	case PaneLinks:
		links, err := cat.AllLinks(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]Row, 0, len(links))
		for _, l := range links {
			rows = append(rows, Row{ID: l.ID, Title: l.TextLabel, Detail: l.URL})
		}
		return rows, nil

	case PaneMusic:
		tracks, err := cat.AllMp3Tracks(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]Row, 0, len(tracks))
		for _, t := range tracks {
			rows = append(rows, Row{
				ID:     t.ID,
				Title:  t.Title,
				Detail: fmt.Sprintf("%s  %d:%02d", t.Artist, t.Duration/60, t.Duration%60),
			})
		}
		return rows, nil

	case PaneAnalytics:
		data, err := cat.AnalyticsData(ctx)
		if err != nil {
			return nil, err
		}
		if data == nil {
			return nil, nil
		}
		rows := make([]Row, 0, len(data.DailyVisitors)+len(data.PageVisits))
		for _, e := range data.DailyVisitors {
			rows = append(rows, Row{ID: e.Key, Title: e.Key, Detail: fmt.Sprintf("%d visitors", e.Count)})
		}
		for _, e := range data.PageVisits {
			rows = append(rows, Row{ID: e.Key, Title: e.Key, Detail: fmt.Sprintf("%d visits", e.Count)})
		}
		return rows, nil
	}

	return nil, nil
}

// RefreshPaneCmd invalidates the active pane's queries so the next load
// goes back to the backend
func RefreshPaneCmd(cat *catalog.Catalog, pane Pane) tea.Cmd {
	return func() tea.Msg {
		cat.Cache().Invalidate(pane.queryKeys()...)
		return RefreshedMsg{Pane: pane}
	}
}

// WatchInvalidationsCmd blocks on an invalidation subscription and
// reports the next notice. A closed channel ends the watch.
func WatchInvalidationsCmd(pane Pane, notices <-chan string) tea.Cmd {
	return func() tea.Msg {
		prefix, ok := <-notices
		if !ok {
			return nil
		}
		return QueryInvalidatedMsg{Pane: pane, Prefix: prefix, Notices: notices}
	}
}

// TrackSectionViewCmd reports a section view; failures are invisible
func TrackSectionViewCmd(cat *catalog.Catalog, sectionID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		cat.TrackSectionView(ctx, sectionID)
		return nil
	}
}

// ClearStatusCmd clears the status line after a delay
func ClearStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
