package cli

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Haptics plays short feedback pulses.
type Haptics interface {
	Pulse(d time.Duration)
}

// NoHaptics ignores every pulse.
type NoHaptics struct{}

func (NoHaptics) Pulse(time.Duration) {}

// bellHaptics rings the terminal bell. Terminals have no pulse length, so
// d is ignored.
type bellHaptics struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellHaptics returns haptics that ring the bell on w.
func NewBellHaptics(w io.Writer) Haptics {
	return &bellHaptics{w: w}
}

func (b *bellHaptics) Pulse(time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.w, "\a")
}

// pulseCmd plays a pulse off the update loop.
func pulseCmd(h Haptics, d time.Duration) tea.Cmd {
	if h == nil || d <= 0 {
		return nil
	}
	return func() tea.Msg {
		h.Pulse(d)
		return nil
	}
}
