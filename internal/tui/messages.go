package tui

import (
	"github.com/shoplight/shoplight/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// SectionsLoadedMsg signals that homepage sections have been loaded
type SectionsLoadedMsg struct {
	Sections []domain.HomepageSection
	Content  *domain.SiteContent
}

// RowsLoadedMsg carries the rows for the active pane
type RowsLoadedMsg struct {
	Pane Pane
	Rows []Row
}

// BackendStateMsg signals a change in the backend handle state
type BackendStateMsg struct {
	State domain.ConnState
}

// RefreshedMsg signals that the active pane's queries were invalidated
type RefreshedMsg struct {
	Pane Pane
}

// QueryInvalidatedMsg reports that a watched query prefix was
// invalidated. Notices carries the subscription channel so the watch
// can be re-armed.
type QueryInvalidatedMsg struct {
	Pane    Pane
	Prefix  string
	Notices <-chan string
}

// StatusNoteMsg sets a temporary status message
type StatusNoteMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
