package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/cramit/internal/config"
	"github.com/alexanderramin/cramit/internal/logging"
	"github.com/alexanderramin/cramit/internal/repository"
	"github.com/alexanderramin/cramit/internal/service"
	"github.com/alexanderramin/cramit/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

// syncBuffer is a bytes.Buffer safe for the driver's command goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type recordingHaptics struct {
	mu     sync.Mutex
	pulses []time.Duration
}

func (h *recordingHaptics) Pulse(d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pulses = append(h.pulses, d)
}

func (h *recordingHaptics) Pulses() []time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]time.Duration(nil), h.pulses...)
}

type testEnv struct {
	app     *App
	logs    *syncBuffer
	haptics *recordingHaptics
}

// logLines returns the log lines containing every fragment.
func (e *testEnv) logLines(fragments ...string) []string {
	var out []string
	for _, line := range strings.Split(e.logs.String(), "\n") {
		match := line != ""
		for _, f := range fragments {
			if !strings.Contains(line, f) {
				match = false
				break
			}
		}
		if match {
			out = append(out, line)
		}
	}
	return out
}

// testApp wires the services over the seeded default catalog with every
// animation delay set to zero.
func testApp(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewSeededDB(t, nil)

	logs := &syncBuffer{}
	logger := logging.NewWithWriter(logs, slog.LevelDebug)
	obs := service.NewLogUseCaseObserver(logger)
	haptics := &recordingHaptics{}

	cfg := config.DefaultConfig()
	cfg.Delays = config.ImmediateDelays()

	decks := service.NewDeckService(repository.NewSQLiteDeckRepo(database))
	app := &App{
		Catalog: service.NewCatalogService(repository.NewSQLiteSubjectRepo(database), repository.NewSQLiteSubtopicRepo(database)),
		Decks:   decks,
		Profile: service.NewProfileService(repository.NewSQLiteProfileRepo(database)),
		Cram:    service.NewCramService(obs),
		Study:   service.NewStudyService(decks, obs),
		Config:  cfg,
		Logger:  logger,
		Haptics: haptics,
	}
	return &testEnv{app: app, logs: logs, haptics: haptics}
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
