package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	capturing  bool
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return nil }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, nil
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }
func (v *stubView) CapturesInput() bool      { return v.capturing }

func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func stubModel(t *testing.T, root *stubView) appModel {
	t.Helper()
	return newAppModel(testApp(t).app, func(*SharedState) View { return root })
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	return model.(appModel), cmd
}

func TestAppModel_PushAndPop(t *testing.T) {
	root := newStubView(ViewExplore, "Explore", "explore body")
	m := stubModel(t, root)
	top := newStubView(ViewDialog, "", "dialog body")

	m, _ = update(t, m, pushViewMsg{view: top})
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, top, m.activeView())

	m, _ = update(t, m, popViewMsg{})
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, root, m.activeView())

	m, _ = update(t, m, popViewMsg{})
	assert.Len(t, m.viewStack, 1, "the root view is never popped")
}

func TestAppModel_QuitKeys(t *testing.T) {
	m := stubModel(t, newStubView(ViewDashboard, "Dashboard", ""))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = stubModel(t, newStubView(ViewDashboard, "Dashboard", ""))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestAppModel_QForwardedToCapturingView(t *testing.T) {
	root := newStubView(ViewDashboard, "Dashboard", "")
	root.capturing = true
	m := stubModel(t, root)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.False(t, m.quitting)
	require.Len(t, root.updateSeen, 1)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.quitting, "ctrl+c always quits")
}

func TestAppModel_QForwardedToDialog(t *testing.T) {
	m := stubModel(t, newStubView(ViewExplore, "Explore", ""))
	dialog := newStubView(ViewDialog, "", "")
	m, _ = update(t, m, pushViewMsg{view: dialog})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.False(t, m.quitting)
	assert.Len(t, dialog.updateSeen, 1)
}

func TestAppModel_BroadcastsSizeAndTimers(t *testing.T) {
	root := newStubView(ViewExplore, "Explore", "")
	m := stubModel(t, root)
	top := newStubView(ViewDialog, "", "")
	m, _ = update(t, m, pushViewMsg{view: top})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})
	m, _ = update(t, m, scheduledMsg{key: taskCramButton})

	assert.Equal(t, 90, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	assert.Len(t, root.updateSeen, 2, "views below the top still get sizes and timers")
	assert.Len(t, top.updateSeen, 2)
}

func TestAppModel_ViewChrome(t *testing.T) {
	root := newStubView(ViewExplore, "Explore", "body text")
	root.shortHelp = []key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))}
	m := stubModel(t, root)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 12})

	out := m.View()
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 12, "padded to the terminal height")
	assert.Contains(t, lines[0], "cramit")
	assert.Contains(t, lines[0], "Explore")
	assert.Contains(t, out, "body text")
	assert.Contains(t, out, "enter: open")
	assert.Contains(t, out, "q: quit")
}

func TestAppModel_BroadcastsSpinnerTicks(t *testing.T) {
	root := newStubView(ViewDashboard, "Dashboard", "")
	m := stubModel(t, root)
	top := newStubView(ViewDialog, "", "")
	m, _ = update(t, m, pushViewMsg{view: top})

	update(t, m, spinner.TickMsg{ID: 1})

	require.Len(t, root.updateSeen, 1)
	assert.IsType(t, spinner.TickMsg{}, root.updateSeen[0])
}
