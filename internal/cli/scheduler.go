package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Keys of the cosmetic timers. Each key animates one control.
const (
	taskCramButton    = "cram-button"
	taskChapterReveal = "chapter-reveal"
	taskDeckReveal    = "deck-reveal"
	taskNavPress      = "nav-press"
	taskDailyMix      = "daily-mix"
	taskSearch        = "search"
)

func deckPressTask(id string) string { return "deck-press:" + id }
func sessionTask(id string) string   { return "session:" + id }

// scheduledMsg is delivered when a scheduled task's delay elapses.
type scheduledMsg struct {
	owner   *scheduler
	key     string
	gen     uint64
	payload tea.Msg
}

// scheduler issues cancellable one-shot timers keyed by control. Scheduling
// a key again supersedes the pending task; the superseded message is
// dropped by Accept when it arrives.
type scheduler struct {
	gen     uint64
	pending map[string]uint64
}

func newScheduler() *scheduler {
	return &scheduler{pending: make(map[string]uint64)}
}

// Schedule returns a command that delivers payload after d. A delay of zero
// or less delivers on the next drain.
func (s *scheduler) Schedule(key string, d time.Duration, payload tea.Msg) tea.Cmd {
	s.gen++
	s.pending[key] = s.gen
	msg := scheduledMsg{owner: s, key: key, gen: s.gen, payload: payload}
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Cancel drops the pending task for key, if any.
func (s *scheduler) Cancel(key string) {
	delete(s.pending, key)
}

// Pending reports whether key has a task that has not fired yet.
func (s *scheduler) Pending(key string) bool {
	_, ok := s.pending[key]
	return ok
}

// Accept reports whether msg is the live task for its key and consumes it.
// Messages from other schedulers, superseded tasks and cancelled tasks are
// rejected.
func (s *scheduler) Accept(msg scheduledMsg) bool {
	if msg.owner != s {
		return false
	}
	if gen, ok := s.pending[msg.key]; !ok || gen != msg.gen {
		return false
	}
	delete(s.pending, msg.key)
	return true
}
