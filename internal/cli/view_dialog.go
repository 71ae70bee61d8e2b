package cli

import (
	"github.com/alexanderramin/cramit/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dialogWidth bounds the note text so long messages wrap inside the box.
const dialogWidth = 56

// cramitHuhTheme returns a huh theme using the Gruvbox palette.
func cramitHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.NoteTitle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorBg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Base = t.Focused.Base.BorderForeground(formatter.ColorHeader)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.NoteTitle = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// dialogView is a blocking message box: a huh note on the view stack.
// Enter or Esc dismisses it and returns to the view below.
type dialogView struct {
	state   *SharedState
	form    *huh.Form
	title   string
	message string
}

func newDialogView(state *SharedState, title, message string) *dialogView {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title).Description(message),
		),
	).WithTheme(cramitHuhTheme()).WithShowHelp(false).WithWidth(dialogWidth)

	return &dialogView{
		state:   state,
		form:    form,
		title:   title,
		message: message,
	}
}

// showDialog returns a command that pushes a dialog.
func showDialog(state *SharedState, title, message string) tea.Cmd {
	return pushView(newDialogView(state, title, message))
}

func (v *dialogView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *dialogView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView()
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	// The form's own submit command is dropped: completing a note only
	// dismisses the dialog.
	if v.form.State == huh.StateCompleted || v.form.State == huh.StateAborted {
		return v, popView()
	}

	return v, cmd
}

func (v *dialogView) View() string {
	box := formatter.RenderAccentBox("", v.form.View(), formatter.ColorHeader)
	if v.state.Width == 0 {
		return box
	}
	return lipgloss.Place(v.state.Width, v.state.ContentHeight(), lipgloss.Center, lipgloss.Center, box)
}

func (v *dialogView) ID() ViewID    { return ViewDialog }
func (v *dialogView) Title() string { return v.title }
func (v *dialogView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ok")),
	}
}
