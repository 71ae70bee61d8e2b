package explore

import (
	"time"

	"github.com/alexanderramin/cramit/internal/domain"
)

// OpenModal records chapter and shows the modal with every subtopic
// selected. It returns the haptic pulse to play.
func (s *State) OpenModal(chapter string) time.Duration {
	s.modal.open = true
	s.modal.chapter = chapter
	s.modal.cursor = 0
	s.modal.selected = make([]bool, len(s.subtopics))
	for i := range s.modal.selected {
		s.modal.selected[i] = true
	}
	return OpenPulse
}

// CloseModal hides the modal. The chapter and toggles stay until the next
// OpenModal overwrites them.
func (s *State) CloseModal() {
	s.modal.open = false
}

// ModalOpen reports whether the modal is visible.
func (s *State) ModalOpen() bool { return s.modal.open }

// ModalChapter returns the chapter recorded by the last OpenModal.
func (s *State) ModalChapter() string { return s.modal.chapter }

// ToggleSubtopic flips entry i only. Out-of-range indices are ignored and
// report ok=false.
func (s *State) ToggleSubtopic(i int) (pulse time.Duration, ok bool) {
	if i < 0 || i >= len(s.modal.selected) {
		return 0, false
	}
	s.modal.selected[i] = !s.modal.selected[i]
	return TogglePulse, true
}

// ToggleFocused flips the subtopic under the modal cursor.
func (s *State) ToggleFocused() (time.Duration, bool) {
	return s.ToggleSubtopic(s.modal.cursor)
}

// MoveSubtopicCursor moves the modal cursor by delta, clamped.
func (s *State) MoveSubtopicCursor(delta int) {
	if len(s.modal.selected) == 0 {
		return
	}
	s.modal.cursor = clamp(s.modal.cursor+delta, 0, len(s.modal.selected)-1)
}

// SelectedSubtopics returns the labels of the selected rows, in display order.
func (s *State) SelectedSubtopics() []string {
	var out []string
	for i, on := range s.modal.selected {
		if on {
			out = append(out, s.subtopics[i])
		}
	}
	return out
}

// StartLabel returns the current label of the start control.
func (s *State) StartLabel() string { return s.modal.label }

// Initiating reports whether a start is waiting for FinishCram.
func (s *State) Initiating() bool { return s.modal.pending }

// BeginCram validates the visible selection and, when at least one subtopic
// is selected, returns the request and switches the start control to its
// "Initiating..." label. An empty selection changes nothing.
func (s *State) BeginCram() (*domain.CramRequest, error) {
	if !s.modal.open {
		return nil, ErrModalClosed
	}
	selected := s.SelectedSubtopics()
	if err := domain.ValidateSelection(selected); err != nil {
		return nil, err
	}
	req := &domain.CramRequest{
		Chapter:   s.modal.chapter,
		Subtopics: selected,
	}
	if subj := s.ActiveSubject(); subj != nil {
		req.SubjectID = subj.ID
	}
	s.modal.label = InitiatingLabel
	s.modal.pending = true
	return req, nil
}

// FinishCram closes the modal and restores the start control label.
func (s *State) FinishCram() {
	s.CloseModal()
	s.modal.label = StartLabel
	s.modal.pending = false
}

// CancelCram restores the start control after a failed start and leaves
// the modal open.
func (s *State) CancelCram() {
	s.modal.label = StartLabel
	s.modal.pending = false
}
