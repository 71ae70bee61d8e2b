// Package explore holds the catalog browser controller: the active subject
// tab, the chapter cursor and the subtopic modal. It performs no I/O; the
// terminal view renders its view-models and carries out the requested
// effects (haptic pulses, timers, dialogs).
package explore

import (
	"errors"
	"time"

	"github.com/alexanderramin/cramit/internal/domain"
)

// Haptic pulse lengths requested by modal interactions.
const (
	OpenPulse   = 10 * time.Millisecond
	TogglePulse = 5 * time.Millisecond
)

// Start control labels.
const (
	StartLabel      = "Start Cram Session"
	InitiatingLabel = "Initiating..."
)

// ErrModalClosed is returned by BeginCram when no chapter is open.
var ErrModalClosed = errors.New("subtopic modal is not open")

// State is the catalog browser's UI state.
type State struct {
	subjects  []domain.Subject
	subtopics []string

	active int
	cursor int

	modal modal
}

type modal struct {
	open     bool
	chapter  string
	selected []bool
	cursor   int
	label    string
	pending  bool
}

// New creates a browser over subjects. The tab for initialID is active when
// it exists, otherwise the first subject's tab.
func New(subjects []domain.Subject, subtopics []string, initialID string) *State {
	s := &State{
		subjects:  subjects,
		subtopics: subtopics,
		modal:     modal{label: StartLabel},
	}
	s.SwitchTab(initialID)
	return s
}

func (s *State) indexOf(id string) int {
	for i := range s.subjects {
		if s.subjects[i].ID == id {
			return i
		}
	}
	return -1
}

// SwitchTab activates the subject with the given id and resets the chapter
// cursor. Unknown ids are ignored and false is returned.
func (s *State) SwitchTab(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.active = i
	s.cursor = 0
	return true
}

// NextTab activates the following tab, wrapping at the end.
func (s *State) NextTab() {
	if len(s.subjects) == 0 {
		return
	}
	s.SwitchTab(s.subjects[(s.active+1)%len(s.subjects)].ID)
}

// PrevTab activates the preceding tab, wrapping at the start.
func (s *State) PrevTab() {
	if len(s.subjects) == 0 {
		return
	}
	n := len(s.subjects)
	s.SwitchTab(s.subjects[(s.active-1+n)%n].ID)
}

// ActiveSubject returns the subject of the active tab.
func (s *State) ActiveSubject() *domain.Subject {
	if len(s.subjects) == 0 {
		return nil
	}
	return &s.subjects[s.active]
}

// MoveCursor moves the chapter cursor by delta, clamped to the list.
func (s *State) MoveCursor(delta int) {
	subj := s.ActiveSubject()
	if subj == nil || len(subj.Chapters) == 0 {
		return
	}
	s.cursor = clamp(s.cursor+delta, 0, len(subj.Chapters)-1)
}

// Cursor returns the 0-based chapter cursor.
func (s *State) Cursor() int { return s.cursor }

// SelectedChapter returns the chapter under the cursor.
func (s *State) SelectedChapter() (domain.Chapter, bool) {
	subj := s.ActiveSubject()
	if subj == nil || s.cursor >= len(subj.Chapters) {
		return domain.Chapter{}, false
	}
	return domain.Chapter{Name: subj.Chapters[s.cursor], Ordinal: s.cursor + 1}, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
