package cli

import "github.com/alexanderramin/cramit/internal/config"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// Delays returns the configured animation timings.
func (s *SharedState) Delays() config.Delays {
	return s.App.Config.Delays
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// headerHeight is the number of rows above the content area.
const headerHeight = 2
