package cli

import (
	"github.com/alexanderramin/researchdesk/internal/controller"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Dialogs is the single owner of edit and detail dialog state.
	Dialogs *controller.FormController

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(a *App) *SharedState {
	return &SharedState{
		App:     a,
		Dialogs: controller.New(a.Projects),
	}
}

// ContentHeight returns the available height for view content, accounting
// for the header (title, counters and separator), the notice line and the
// status bar (separator and hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 6
	if h < 1 {
		return 1
	}
	return h
}

// ContentWidth returns the usable width, with a floor for tiny terminals.
func (s *SharedState) ContentWidth() int {
	return max(s.Width, 40)
}
