// Package tui is the terminal browser over the site catalog. It reads
// through the query cache only; every pane tolerates empty data while
// the backend handle is still connecting.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shoplight/shoplight/internal/catalog"
	"github.com/shoplight/shoplight/internal/domain"
	"github.com/shoplight/shoplight/internal/search"
	"github.com/shoplight/shoplight/internal/tui/styles"
)

// Pane identifies one browsable content area
type Pane int

const (
	PaneBlog Pane = iota
	PaneStore
	PaneMeetings
	PaneLivestreams
	PaneLinks
	PaneMusic
	PaneAnalytics
)

var paneOrder = []Pane{
	PaneBlog, PaneStore, PaneMeetings, PaneLivestreams,
	PaneLinks, PaneMusic, PaneAnalytics,
}

func (p Pane) String() string {
	switch p {
	case PaneBlog:
		return "Blog"
	case PaneStore:
		return "Store"
	case PaneMeetings:
		return "Meetings"
	case PaneLivestreams:
		return "Livestreams"
	case PaneLinks:
		return "Links"
	case PaneMusic:
		return "Music"
	case PaneAnalytics:
		return "Analytics"
	}
	return "unknown"
}

// queryKeys lists the cache key prefixes a refresh of the pane drops
func (p Pane) queryKeys() []string {
	switch p {
	case PaneBlog:
		return []string{catalog.KeyBlogPosts, catalog.KeyBlogPost}
	case PaneStore:
		return []string{catalog.KeyStoreItems, catalog.KeyStoreItem}
	case PaneMeetings:
		return []string{catalog.KeyMeetingSlots, catalog.KeyAllMeetingSlots}
	case PaneLivestreams:
		return []string{catalog.KeyLivestreams, catalog.KeyLivestream}
	case PaneLinks:
		return []string{catalog.KeyLinks}
	case PaneMusic:
		return []string{catalog.KeyMp3Tracks, catalog.KeyMp3TracksByPlaylist, catalog.KeyPlaylists}
	case PaneAnalytics:
		return []string{catalog.KeyAnalytics}
	}
	return nil
}

// Row is one line in the content pane
type Row struct {
	ID     string
	Title  string
	Detail string
}

// Model is the main Bubble Tea model for the application
type Model struct {
	catalog   *catalog.Catalog
	searchSvc *search.Service
	logger    *slog.Logger
	keys      KeyMap

	pane      Pane
	rows      []Row
	visible   []Row
	selected  int
	pendingID string

	sections []domain.HomepageSection
	content  *domain.SiteContent

	filtering bool
	filter    textinput.Model
	spin      spinner.Model
	loading   bool

	searching   bool
	searchInput textinput.Model
	results     []search.Result
	resultSel   int

	// invalidation watches for the active pane's query prefixes
	notices []<-chan string
	unwatch []func()

	statusMsg   string
	statusIsErr bool

	width  int
	height int
}

// NewModel creates the application model
func NewModel(cat *catalog.Catalog, searchSvc *search.Service, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.CharLimit = 64

	si := textinput.New()
	si.Placeholder = "search"
	si.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.AccentStyle

	m := Model{
		catalog:     cat,
		searchSvc:   searchSvc,
		logger:      logger,
		keys:        DefaultKeyMap(),
		pane:        PaneBlog,
		filter:      ti,
		searchInput: si,
		spin:        sp,
		loading:     true,
	}
	m.subscribePane()
	return m
}

// subscribePane points the invalidation watches at the active pane, so
// mutation-driven invalidations refresh what is on screen
func (m *Model) subscribePane() {
	for _, cancel := range m.unwatch {
		cancel()
	}
	m.notices = nil
	m.unwatch = nil
	for _, prefix := range m.pane.queryKeys() {
		ch, cancel := m.catalog.Cache().Subscribe(prefix)
		m.notices = append(m.notices, ch)
		m.unwatch = append(m.unwatch, cancel)
	}
}

func (m Model) watchCmds() []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.notices))
	for _, ch := range m.notices {
		cmds = append(cmds, WatchInvalidationsCmd(m.pane, ch))
	}
	return cmds
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spin.Tick,
		LoadSectionsCmd(m.catalog),
		LoadPaneCmd(m.catalog, m.pane),
	}
	cmds = append(cmds, m.watchCmds()...)
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearching(msg)
		}
		if m.filtering {
			return m.updateFiltering(msg)
		}
		return m.updateBrowsing(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case SectionsLoadedMsg:
		m.sections = msg.Sections
		m.content = msg.Content
		return m, nil

	case RowsLoadedMsg:
		if msg.Pane != m.pane {
			return m, nil
		}
		m.loading = false
		m.rows = msg.Rows
		m.visible = filterRows(m.rows, m.filter.Value())
		if m.pendingID != "" {
			for i, row := range m.visible {
				if row.ID == m.pendingID {
					m.selected = i
					break
				}
			}
			m.pendingID = ""
		}
		m.clampSelection()
		return m, nil

	case QueryInvalidatedMsg:
		cmds := []tea.Cmd{WatchInvalidationsCmd(msg.Pane, msg.Notices)}
		if msg.Pane == m.pane {
			m.loading = true
			cmds = append(cmds, m.spin.Tick, LoadPaneCmd(m.catalog, m.pane))
		}
		return m, tea.Batch(cmds...)

	case RefreshedMsg:
		m.loading = true
		return m, tea.Batch(m.spin.Tick, LoadPaneCmd(m.catalog, msg.Pane))

	case BackendStateMsg:
		m.catalog.SetState(msg.State)
		if msg.State == domain.Ready {
			m.loading = true
			return m, tea.Batch(
				m.spin.Tick,
				LoadSectionsCmd(m.catalog),
				LoadPaneCmd(m.catalog, m.pane),
			)
		}
		return m, nil

	case StatusNoteMsg:
		m.statusMsg = msg.Message
		m.statusIsErr = msg.IsError
		return m, ClearStatusCmd()

	case ClearStatusMsg:
		m.statusMsg = ""
		m.statusIsErr = false
		return m, nil

	case ErrMsg:
		m.loading = false
		m.logger.Error("tui load failed", "context", msg.Context, "error", msg.Err)
		m.statusMsg = msg.Error()
		m.statusIsErr = true
		return m, ClearStatusCmd()
	}

	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		return m.switchPane(-1)

	case key.Matches(msg, m.keys.Right):
		return m.switchPane(1)

	case key.Matches(msg, m.keys.Refresh):
		return m, RefreshPaneCmd(m.catalog, m.pane)

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		m.results = nil
		m.resultSel = 0
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Escape):
		m.filter.SetValue("")
		m.visible = m.rows
		m.clampSelection()
		return m, nil
	}
	return m, nil
}

func (m Model) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.visible = m.rows
		m.clampSelection()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.visible = filterRows(m.rows, m.filter.Value())
	m.clampSelection()
	return m, cmd
}

func (m Model) switchPane(delta int) (tea.Model, tea.Cmd) {
	idx := 0
	for i, p := range paneOrder {
		if p == m.pane {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(paneOrder)) % len(paneOrder)
	return m.activatePane(paneOrder[idx])
}

func (m Model) activatePane(pane Pane) (tea.Model, tea.Cmd) {
	m.pane = pane
	m.rows = nil
	m.visible = nil
	m.selected = 0
	m.loading = true
	m.filter.SetValue("")
	m.subscribePane()

	cmds := []tea.Cmd{m.spin.Tick, LoadPaneCmd(m.catalog, m.pane)}
	cmds = append(cmds, m.watchCmds()...)
	if section := m.sectionFor(m.pane); section != "" {
		cmds = append(cmds, TrackSectionViewCmd(m.catalog, section))
	}
	return m, tea.Batch(cmds...)
}

// sectionFor maps a pane to its homepage section id, if one exists
func (m Model) sectionFor(pane Pane) string {
	var kind domain.SectionKind
	switch pane {
	case PaneBlog:
		kind = domain.SectionBlog
	case PaneStore:
		kind = domain.SectionStoreItems
	case PaneMeetings:
		kind = domain.SectionMeetings
	case PaneLivestreams:
		kind = domain.SectionLivestream
	case PaneLinks:
		kind = domain.SectionLinks
	case PaneMusic:
		kind = domain.SectionMp3Player
	default:
		return ""
	}
	for _, s := range m.sections {
		if s.SectionType.Kind == kind {
			return s.ID
		}
	}
	return ""
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")
	if m.searching {
		b.WriteString(m.searchResultsView())
	} else {
		b.WriteString(m.rowsView())
	}
	b.WriteString("\n")
	b.WriteString(m.footerView())

	return b.String()
}

func (m Model) headerView() string {
	title := "Shoplight"
	if m.content != nil && m.content.BusinessTitle != "" {
		title = m.content.BusinessTitle
	}

	var dot string
	switch m.catalog.State() {
	case domain.Ready:
		dot = styles.ReadyDot
	case domain.Failed:
		dot = styles.FailedDot
	default:
		dot = styles.ConnectingDot
	}

	return dot + " " + styles.TitleStyle.Render(title)
}

func (m Model) tabsView() string {
	tabs := make([]string, 0, len(paneOrder))
	for _, p := range paneOrder {
		label := p.String()
		if p == m.pane {
			tabs = append(tabs, styles.SelectedStyle.Render(label))
		} else {
			tabs = append(tabs, styles.DimStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(tabs, " "))
}

func (m Model) rowsView() string {
	if m.loading {
		return m.spin.View() + " " + styles.DimStyle.Render("loading "+m.pane.String()+"...")
	}
	if len(m.visible) == 0 {
		if m.catalog.State() != domain.Ready {
			return styles.DimStyle.Render("waiting for backend connection")
		}
		return styles.DimStyle.Render("nothing here yet")
	}

	var b strings.Builder
	for i, row := range m.visible {
		line := row.Title
		if row.Detail != "" {
			line += "  " + styles.SubtitleStyle.Render(row.Detail)
		}
		if i == m.selected {
			b.WriteString(styles.SelectedStyle.Render(row.Title))
			if row.Detail != "" {
				b.WriteString("  " + styles.SubtitleStyle.Render(row.Detail))
			}
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) footerView() string {
	if m.searching {
		return m.searchInput.View()
	}
	if m.filtering {
		return m.filter.View()
	}
	if m.statusMsg != "" {
		if m.statusIsErr {
			return styles.ErrorStyle.Render(m.statusMsg)
		}
		return styles.SuccessStyle.Render(m.statusMsg)
	}
	return styles.DimStyle.Render(fmt.Sprintf(
		"%d items  h/l sections  j/k move  / filter  f search  r refresh  q quit",
		len(m.visible),
	))
}
