package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shoplight/shoplight/internal/search"
	"github.com/shoplight/shoplight/internal/tui/styles"
)

const maxSearchResults = 20

// paneForKind maps a search result to the pane that displays it
func paneForKind(k search.Kind) Pane {
	switch k {
	case search.KindBlogPost:
		return PaneBlog
	case search.KindStoreItem:
		return PaneStore
	case search.KindTrack, search.KindPlaylist:
		return PaneMusic
	case search.KindLink:
		return PaneLinks
	case search.KindLivestream:
		return PaneLivestreams
	}
	return PaneBlog
}

func kindLabel(k search.Kind) string {
	switch k {
	case search.KindBlogPost:
		return "blog"
	case search.KindStoreItem:
		return "store"
	case search.KindTrack:
		return "track"
	case search.KindPlaylist:
		return "playlist"
	case search.KindLink:
		return "link"
	case search.KindLivestream:
		return "livestream"
	}
	return string(k)
}

func (m Model) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.closeSearch(), nil

	case tea.KeyUp:
		if m.resultSel > 0 {
			m.resultSel--
		}
		return m, nil

	case tea.KeyDown:
		if m.resultSel < len(m.results)-1 {
			m.resultSel++
		}
		return m, nil

	case tea.KeyEnter:
		if m.resultSel >= len(m.results) {
			return m, nil
		}
		picked := m.results[m.resultSel]
		next := m.closeSearch()
		next.pendingID = picked.ID
		return next.activatePane(paneForKind(picked.Kind))
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchSvc != nil {
		m.results = m.searchSvc.Search(m.searchInput.Value(), nil)
	}
	if len(m.results) > maxSearchResults {
		m.results = m.results[:maxSearchResults]
	}
	if m.resultSel >= len(m.results) {
		m.resultSel = 0
	}
	return m, cmd
}

func (m Model) closeSearch() Model {
	m.searching = false
	m.searchInput.Blur()
	m.searchInput.SetValue("")
	m.results = nil
	m.resultSel = 0
	return m
}

func (m Model) searchResultsView() string {
	if m.searchInput.Value() == "" {
		return styles.DimStyle.Render("type to search cached content")
	}
	if len(m.results) == 0 {
		return styles.DimStyle.Render("no matches")
	}

	var b strings.Builder
	for i, r := range m.results {
		label := styles.SubtitleStyle.Render(kindLabel(r.Kind))
		if i == m.resultSel {
			b.WriteString(styles.SelectedStyle.Render(r.Title) + "  " + label)
		} else {
			b.WriteString(r.Title + "  " + label)
		}
		b.WriteString("\n")
	}
	return b.String()
}
