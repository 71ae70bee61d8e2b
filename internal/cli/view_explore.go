package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/cramit/internal/cli/formatter"
	"github.com/alexanderramin/cramit/internal/domain"
	"github.com/alexanderramin/cramit/internal/explore"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── messages ─────────────────────────────────────────────────────────────────

// exploreLoadedMsg carries the catalog the browser shows.
type exploreLoadedMsg struct {
	subjects  []domain.Subject
	subtopics []string
	err       error
}

// chapterRevealMsg shows the next chapter row of the entrance animation.
type chapterRevealMsg struct{}

// cramReadyMsg fires when the "Initiating..." delay of a started cram
// session has elapsed.
type cramReadyMsg struct {
	chapter string
	count   int
}

// ── view ─────────────────────────────────────────────────────────────────────

// exploreView is the catalog browser: subject tabs over a chapter list,
// with the subtopic modal drawn on top when a chapter is opened.
type exploreView struct {
	state     *SharedState
	initialID string

	ctrl    *explore.State
	sched   *scheduler
	vp      viewport.Model
	loading bool
	err     error

	// revealed counts the chapter rows already past their entrance delay.
	revealed int
}

func newExploreView(state *SharedState, initialID string) *exploreView {
	return &exploreView{
		state:     state,
		initialID: initialID,
		sched:     newScheduler(),
		vp:        viewport.New(0, 0),
		loading:   true,
	}
}

func (v *exploreView) ID() ViewID    { return ViewExplore }
func (v *exploreView) Title() string { return "Explore" }

func (v *exploreView) ShortHelp() []key.Binding {
	if v.ctrl != nil && v.ctrl.ModalOpen() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start cram")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "subject")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "chapter")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}

func (v *exploreView) Init() tea.Cmd {
	return v.loadData()
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *exploreView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()

		subjects, err := app.Catalog.ListSubjects(ctx)
		if err != nil {
			return exploreLoadedMsg{err: err}
		}
		subtopics, err := app.Catalog.ListSubtopics(ctx)
		if err != nil {
			return exploreLoadedMsg{err: err}
		}

		out := make([]domain.Subject, len(subjects))
		for i, s := range subjects {
			out[i] = *s
		}
		return exploreLoadedMsg{subjects: out, subtopics: subtopics}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *exploreView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exploreLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			v.state.App.logger().Error("loading catalog", "error", msg.err)
			return v, nil
		}
		v.ctrl = explore.New(msg.subjects, msg.subtopics, v.initialID)
		return v, v.startReveal()

	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case scheduledMsg:
		if !v.sched.Accept(msg) {
			return v, nil
		}
		return v, v.handleTask(msg.payload)

	case tea.KeyMsg:
		if v.ctrl == nil {
			return v, nil
		}
		if v.ctrl.ModalOpen() {
			return v, v.handleModalKey(msg)
		}
		return v, v.handleListKey(msg)

	case tea.MouseMsg:
		if v.ctrl == nil || v.ctrl.ModalOpen() {
			return v, nil
		}
		return v, v.handleMouse(msg)
	}
	return v, nil
}

func (v *exploreView) handleTask(payload tea.Msg) tea.Cmd {
	switch p := payload.(type) {
	case chapterRevealMsg:
		v.revealed++
		if v.revealed < v.chapterCount() {
			return v.sched.Schedule(taskChapterReveal, v.state.Delays().Stagger, chapterRevealMsg{})
		}
	case cramReadyMsg:
		v.ctrl.FinishCram()
		return showDialog(v.state, "Cram Mode",
			fmt.Sprintf("⚡ Cram Mode Started for: %s\nFocused on: %d Subtopics", p.chapter, p.count))
	}
	return nil
}

func (v *exploreView) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h", "shift+tab":
		v.ctrl.PrevTab()
		return v.tabChanged()
	case "right", "l", "tab":
		v.ctrl.NextTab()
		return v.tabChanged()
	case "up", "k":
		v.moveCursor(-1)
	case "down", "j":
		v.moveCursor(1)
	case "pgup":
		v.moveCursor(-max(v.vp.Height, 1))
	case "pgdown":
		v.moveCursor(max(v.vp.Height, 1))
	case "home", "g":
		v.moveCursor(-v.chapterCount())
	case "end", "G":
		v.moveCursor(v.chapterCount())
	case "enter", " ":
		return v.openSelected()
	default:
		if n := digitKey(msg); n > 0 {
			tabs := v.ctrl.Tabs()
			if n <= len(tabs) && v.ctrl.SwitchTab(tabs[n-1].ID) {
				return v.tabChanged()
			}
		}
	}
	return nil
}

func (v *exploreView) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		v.sched.Cancel(taskCramButton)
		v.ctrl.FinishCram()
	case "up", "k":
		v.ctrl.MoveSubtopicCursor(-1)
	case "down", "j":
		v.ctrl.MoveSubtopicCursor(1)
	case " ", "x":
		if pulse, ok := v.ctrl.ToggleFocused(); ok {
			return pulseCmd(v.state.App.haptics(), pulse)
		}
	case "enter":
		return v.startCram()
	default:
		if n := digitKey(msg); n > 0 {
			if pulse, ok := v.ctrl.ToggleSubtopic(n - 1); ok {
				return pulseCmd(v.state.App.haptics(), pulse)
			}
		}
	}
	return nil
}

// handleMouse maps clicks on a tab or chapter row to the matching key
// action and the wheel to the chapter cursor.
func (v *exploreView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		v.moveCursor(-1)
		return nil
	case tea.MouseButtonWheelDown:
		v.moveCursor(1)
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	row := msg.Y - headerHeight
	if row == 0 {
		for _, span := range v.tabSpans() {
			if msg.X >= span.x0 && msg.X < span.x1 {
				if v.ctrl.SwitchTab(span.id) {
					return v.tabChanged()
				}
				return nil
			}
		}
		return nil
	}

	idx := row - listTop + v.vp.YOffset
	if row < listTop || idx >= v.chapterCount() {
		return nil
	}
	v.moveCursor(idx - v.ctrl.Cursor())
	return v.openSelected()
}

func (v *exploreView) openSelected() tea.Cmd {
	ch, ok := v.ctrl.SelectedChapter()
	if !ok {
		return nil
	}
	pulse := v.ctrl.OpenModal(ch.Name)
	v.state.App.logger().Debug("opened chapter", "subject", v.ctrl.ActiveSubject().ID, "chapter", ch.Name)
	return pulseCmd(v.state.App.haptics(), pulse)
}

// startCram validates the selection and, when it is non-empty, records the
// request and arms the "Initiating..." delay.
func (v *exploreView) startCram() tea.Cmd {
	if v.ctrl.Initiating() {
		return nil
	}
	req, err := v.ctrl.BeginCram()
	if errors.Is(err, domain.ErrEmptySelection) {
		return showDialog(v.state, "Cram Mode", "Please select at least one subtopic to continue.")
	}
	if err != nil {
		return nil
	}

	if err := v.state.App.Cram.Start(context.Background(), req); err != nil {
		v.ctrl.CancelCram()
		v.state.App.logger().Error("starting cram session", "error", err)
		return showDialog(v.state, "Cram Mode", err.Error())
	}
	v.state.App.logger().Info("starting cram session",
		"chapter", req.Chapter,
		"subtopics", strings.Join(req.Subtopics, ", "),
	)
	return v.sched.Schedule(taskCramButton, v.state.Delays().Initiate,
		cramReadyMsg{chapter: req.Chapter, count: len(req.Subtopics)})
}

func (v *exploreView) tabChanged() tea.Cmd {
	v.vp.GotoTop()
	return v.startReveal()
}

// startReveal restarts the staggered entrance of the chapter rows. Without
// a stagger delay every row shows at once.
func (v *exploreView) startReveal() tea.Cmd {
	total := v.chapterCount()
	stagger := v.state.Delays().Stagger
	if stagger <= 0 || total <= 1 {
		v.sched.Cancel(taskChapterReveal)
		v.revealed = total
		return nil
	}
	v.revealed = 1
	return v.sched.Schedule(taskChapterReveal, stagger, chapterRevealMsg{})
}

func (v *exploreView) chapterCount() int {
	if v.ctrl == nil || v.ctrl.ActiveSubject() == nil {
		return 0
	}
	return len(v.ctrl.ActiveSubject().Chapters)
}

func (v *exploreView) moveCursor(delta int) {
	v.ctrl.MoveCursor(delta)
	v.followCursor()
}

// followCursor scrolls the chapter list so the cursor row is visible.
func (v *exploreView) followCursor() {
	if v.vp.Height <= 0 {
		return
	}
	c := v.ctrl.Cursor()
	switch {
	case c < v.vp.YOffset:
		v.vp.SetYOffset(c)
	case c >= v.vp.YOffset+v.vp.Height:
		v.vp.SetYOffset(c - v.vp.Height + 1)
	}
}

// listTop is the content row of the first chapter: tab bar, then a gap.
const listTop = 2

func (v *exploreView) resize() {
	v.vp.Width = v.state.Width
	v.vp.Height = max(v.state.ContentHeight()-listTop, 1)
}

func digitKey(msg tea.KeyMsg) int {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0
	}
	return int(r - '0')
}

// ── view ─────────────────────────────────────────────────────────────────────

func (v *exploreView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading catalog...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.ctrl.ActiveSubject() == nil {
		return "\n  " + formatter.Dim("No subjects in the catalog.")
	}

	if v.ctrl.ModalOpen() {
		return v.renderModal()
	}

	list := v.renderChapters()
	if v.vp.Height > 0 {
		v.vp.SetContent(list)
		v.followCursor()
		list = v.vp.View()
	}
	return v.renderTabBar() + "\n\n" + list
}

// tabSpan is the horizontal extent of one rendered tab pill.
type tabSpan struct {
	id     string
	x0, x1 int
}

func (v *exploreView) tabWidth() int {
	if v.state.Width <= 0 {
		return 1 << 16
	}
	// Reserve room for the scroll arrows.
	return max(v.state.Width-4, 1)
}

func (v *exploreView) tabSpans() []tabSpan {
	tabs := v.ctrl.Tabs()
	from, to := explore.TabWindow(tabs, v.tabWidth(), 1, func(t explore.TabItem) int {
		return formatter.TabPillWidth(t.Name)
	})
	x := 2
	var spans []tabSpan
	for i := from; i <= to; i++ {
		w := formatter.TabPillWidth(tabs[i].Name)
		spans = append(spans, tabSpan{id: tabs[i].ID, x0: x, x1: x + w})
		x += w + 1
	}
	return spans
}

func (v *exploreView) renderTabBar() string {
	tabs := v.ctrl.Tabs()
	from, to := explore.TabWindow(tabs, v.tabWidth(), 1, func(t explore.TabItem) int {
		return formatter.TabPillWidth(t.Name)
	})

	left, right := "  ", "  "
	if from > 0 {
		left = formatter.Dim("‹ ")
	}
	if to < len(tabs)-1 {
		right = formatter.Dim(" ›")
	}
	pills := make([]string, 0, to-from+1)
	for _, t := range tabs[from : to+1] {
		pills = append(pills, formatter.TabPill(t.Name, t.Color, t.Active))
	}
	return left + strings.Join(pills, " ") + right
}

func (v *exploreView) renderChapters() string {
	subj := v.ctrl.ActiveSubject()
	accent := formatter.SubjectStyle(subj.Color)
	nameWidth := max(v.state.Width-12, 20)

	rows := v.ctrl.Chapters(v.state.Delays().Stagger)
	lines := make([]string, len(rows))
	for i, row := range rows {
		if i >= v.revealed {
			continue
		}
		cursor := "  "
		name := formatter.StyleFg.Render(row.Name)
		if row.Selected {
			cursor = accent.Render("▸ ")
			name = formatter.Bold(row.Name)
		}
		lines[i] = "  " + cursor + accent.Render(row.Label) + "  " +
			lipgloss.NewStyle().Width(nameWidth).Render(name) + formatter.Dim("›")
	}
	return strings.Join(lines, "\n")
}

func (v *exploreView) renderModal() string {
	subj := v.ctrl.ActiveSubject()

	var b strings.Builder
	b.WriteString(formatter.SubjectStyle(subj.Color).Bold(true).Render(v.ctrl.ModalChapter()))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("Select subtopics to focus on"))
	b.WriteString("\n\n")
	for _, item := range v.ctrl.Subtopics() {
		cursor := "  "
		if item.Focused {
			cursor = formatter.StyleHeader.Render("▸ ")
		}
		label := formatter.StyleFg.Render(item.Label)
		if !item.Selected {
			label = formatter.Dim(item.Label)
		}
		b.WriteString(cursor + formatter.Checkbox(item.Selected) + " " + label + "\n")
	}
	b.WriteString("\n")
	b.WriteString(formatter.Button(v.ctrl.StartLabel(), v.ctrl.Initiating()))

	box := formatter.RenderAccentBox("", b.String(), formatter.SubjectColor(subj.Color))
	if v.state.Width <= 0 {
		return box
	}
	return lipgloss.Place(v.state.Width, v.state.ContentHeight(), lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars("·"),
		lipgloss.WithWhitespaceForeground(formatter.ColorDim),
	)
}
