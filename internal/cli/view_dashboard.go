package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cramit/internal/cli/formatter"
	"github.com/alexanderramin/cramit/internal/dashboard"
	"github.com/alexanderramin/cramit/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	decks   []domain.Deck
	profile domain.Profile
	err     error
}

type (
	navReleaseMsg     struct{}
	deckReleaseMsg    struct{ id string }
	sessionPressedMsg struct{ id string }
	sessionReadyMsg   struct{ id string }
	dailyMixMsg       struct{}
	searchMsg         struct{ query string }
	deckRevealMsg     struct{}
)

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the study dashboard: streak, search, the recommended
// session card, deck cards, quick actions and the navigation bar.
type dashboardView struct {
	state   *SharedState
	ctrl    *dashboard.State
	sched   *scheduler
	search  textinput.Model
	spinner spinner.Model
	vp      viewport.Model
	pull    *dashboard.PullTracker
	loading bool
	err     error

	// revealed counts the deck cards already past their entrance delay.
	revealed int

	// Body line spans recorded by the last render, for mouse hit tests.
	heroTop, heroBottom int
	deckTop             int
}

func newDashboardView(state *SharedState) *dashboardView {
	ti := textinput.New()
	ti.Placeholder = "Search decks (s)"
	ti.Prompt = "⌕ "
	ti.CharLimit = 64
	ti.PromptStyle = formatter.StyleDim
	ti.TextStyle = formatter.StyleFg
	ti.PlaceholderStyle = formatter.StyleDim

	return &dashboardView{
		state:   state,
		sched:   newScheduler(),
		search:  ti,
		spinner: formatter.NewSpinner(),
		vp:      viewport.New(0, 0),
		pull:    dashboard.NewPullTracker(),
		loading: true,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

// CapturesInput reports whether the search field has focus.
func (v *dashboardView) CapturesInput() bool {
	return v.ctrl != nil && v.ctrl.SearchFocused()
}

func (v *dashboardView) ShortHelp() []key.Binding {
	if v.CapturesInput() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open deck")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start session")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "search")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "daily mix")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add cards")),
		key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "nav")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	v.state.App.logger().Info("dashboard initialized")
	return v.loadData()
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()

		decks, err := app.Decks.ListDecks(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		profile, err := app.Profile.Get(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		out := make([]domain.Deck, len(decks))
		for i, d := range decks {
			out[i] = *d
		}
		return dashboardLoadedMsg{decks: out, profile: *profile}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			v.state.App.logger().Error("loading dashboard", "error", msg.err)
			return v, nil
		}
		v.ctrl = dashboard.New(msg.decks, msg.profile)
		return v, v.startReveal()

	case tea.WindowSizeMsg:
		v.vp.Width = v.state.Width
		v.vp.Height = v.state.ContentHeight()
		v.search.Width = max(v.state.Width-12, 10)
		return v, nil

	case scheduledMsg:
		if !v.sched.Accept(msg) {
			return v, nil
		}
		return v, v.handleTask(msg.payload)

	case spinner.TickMsg:
		if v.ctrl == nil || !v.ctrl.Session().Loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.ctrl == nil {
			return v, nil
		}
		if v.ctrl.SearchFocused() {
			return v, v.handleSearchKey(msg)
		}
		return v, v.handleKey(msg)

	case tea.MouseMsg:
		if v.ctrl == nil {
			return v, nil
		}
		return v, v.handleMouse(msg)
	}

	// Cursor blink and other field internals.
	if v.ctrl != nil && v.ctrl.SearchFocused() {
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *dashboardView) handleTask(payload tea.Msg) tea.Cmd {
	app := v.state.App
	ctx := context.Background()

	switch p := payload.(type) {
	case deckRevealMsg:
		v.revealed++
		if v.revealed < len(v.ctrl.Cards()) {
			return v.sched.Schedule(taskDeckReveal, v.state.Delays().DeckStagger, deckRevealMsg{})
		}

	case navReleaseMsg:
		v.ctrl.ReleaseNav()

	case deckReleaseMsg:
		v.ctrl.ReleaseDeck(p.id)
		deck, err := app.Study.OpenDeck(ctx, p.id)
		if err != nil {
			app.logger().Error("opening deck", "deck", p.id, "error", err)
			return nil
		}
		app.logger().Info(fmt.Sprintf("Opening %s deck", deck.Name))

	case sessionPressedMsg:
		v.ctrl.BeginLoading()
		return tea.Batch(
			v.spinner.Tick,
			v.sched.Schedule(sessionTask(p.id), v.state.Delays().Loading, sessionReadyMsg{id: p.id}),
		)

	case sessionReadyMsg:
		v.ctrl.EndLoading()
		deck, err := app.Study.StartSession(ctx, p.id)
		if err != nil {
			app.logger().Error("starting session", "deck", p.id, "error", err)
			return nil
		}
		app.logger().Info(fmt.Sprintf("Starting %s session with %d cards due", deck.Name, deck.Due))

	case dailyMixMsg:
		v.ctrl.ReleaseDailyMix()
		if err := app.Study.StartDailyMix(ctx); err != nil {
			app.logger().Error("starting daily mix", "error", err)
		}
		return showDialog(v.state, "Daily Mix", "Daily Mix: Review cards from all your subjects!")

	case searchMsg:
		v.ctrl.ApplyFilter(p.query)
		if q := v.ctrl.AppliedQuery(); q != "" {
			app.logger().Info(fmt.Sprintf("Searching for: %s", q))
		}
	}
	return nil
}

func (v *dashboardView) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		v.clearSearch()
		return nil
	case tea.KeyEnter:
		v.ctrl.BlurSearch()
		v.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	if q := v.search.Value(); q != v.ctrl.Query() {
		v.ctrl.SetQuery(q)
		return tea.Batch(cmd, v.sched.Schedule(taskSearch, v.state.Delays().Search, searchMsg{query: q}))
	}
	return cmd
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch dashboard.ShortcutFor(msg.String(), v.ctrl.SearchFocused()) {
	case dashboard.ActionFocusSearch:
		v.ctrl.FocusSearch()
		return v.search.Focus()
	case dashboard.ActionClearSearch:
		v.clearSearch()
		return nil
	}

	switch msg.String() {
	case "up", "k":
		v.ctrl.MoveCursor(-1)
	case "down", "j":
		v.ctrl.MoveCursor(1)
	case "enter":
		if d, ok := v.ctrl.FocusedDeck(); ok {
			return v.openDeck(d.ID)
		}
	case "r":
		return v.startSession(v.ctrl.Profile().Recommended.SubjectID)
	case "m":
		return v.startDailyMix()
	case "a":
		return v.addCards()
	case "pgup":
		v.vp.SetYOffset(v.vp.YOffset - max(v.vp.Height/2, 1))
	case "pgdown":
		v.vp.SetYOffset(v.vp.YOffset + max(v.vp.Height/2, 1))
	default:
		if n := digitKey(msg); n > 0 && n <= len(domain.NavItems) {
			return v.selectNav(domain.NavItems[n-1])
		}
	}
	return nil
}

func (v *dashboardView) clearSearch() {
	v.sched.Cancel(taskSearch)
	v.search.SetValue("")
	v.search.Blur()
	v.ctrl.ClearSearch()
}

func (v *dashboardView) selectNav(id string) tea.Cmd {
	if !v.ctrl.SelectNav(id) {
		return nil
	}
	if err := v.state.App.Study.SwitchNav(context.Background(), id); err != nil {
		v.state.App.logger().Error("switching tab", "nav", id, "error", err)
	}
	v.state.App.logger().Info(fmt.Sprintf("Switched to %s tab", id))
	return v.sched.Schedule(taskNavPress, v.state.Delays().Press, navReleaseMsg{})
}

// openDeck plays the card press, then records the deck as opened.
func (v *dashboardView) openDeck(id string) tea.Cmd {
	if !v.ctrl.PressDeck(id) {
		v.state.App.logger().Error(fmt.Sprintf("Deck %s not found", id), "error", domain.ErrDeckNotFound)
		return nil
	}
	return v.sched.Schedule(deckPressTask(id), v.state.Delays().DeckPress, deckReleaseMsg{id: id})
}

// startSession plays the button press, shows the loading spinner and then
// records the session start.
func (v *dashboardView) startSession(id string) tea.Cmd {
	if _, ok := v.ctrl.Deck(id); !ok {
		v.state.App.logger().Error(fmt.Sprintf("Subject %s not found", id), "error", domain.ErrDeckNotFound)
		return nil
	}
	if !v.ctrl.PressSession() {
		return nil
	}
	return v.sched.Schedule(sessionTask(id), v.state.Delays().Press, sessionPressedMsg{id: id})
}

func (v *dashboardView) startDailyMix() tea.Cmd {
	v.state.App.logger().Info("Starting Daily Mix session")
	v.ctrl.PressDailyMix()
	return v.sched.Schedule(taskDailyMix, v.state.Delays().Press, dailyMixMsg{})
}

func (v *dashboardView) addCards() tea.Cmd {
	v.state.App.logger().Info("Opening Add Cards modal")
	return showDialog(v.state, "Add Cards", "Add Cards feature coming soon!")
}

// handleMouse tracks the pull gesture, hero hover, deck clicks and wheel
// scrolling.
func (v *dashboardView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	line := msg.Y - headerHeight + v.vp.YOffset

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		v.vp.SetYOffset(v.vp.YOffset - 1)
		return nil
	case tea.MouseButtonWheelDown:
		v.vp.SetYOffset(v.vp.YOffset + 1)
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		v.pull.Start(msg.Y)
		if i := line - v.deckTop; i >= 0 && i < min(v.revealed, len(v.ctrl.Cards())) {
			v.ctrl.MoveCursor(i - v.focusedIndex())
			return v.openDeck(v.ctrl.Cards()[i].Deck.ID)
		}
		if line >= v.heroTop && line < v.heroBottom {
			return v.startSession(v.ctrl.Profile().Recommended.SubjectID)
		}

	case tea.MouseActionRelease:
		v.pull.End()

	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			if v.pull.Move(msg.Y, v.vp.AtTop()) {
				v.state.App.logger().Debug("pull gesture detected")
			}
			return nil
		}
		v.ctrl.SetHeroHovered(line >= v.heroTop && line < v.heroBottom)
	}
	return nil
}

func (v *dashboardView) focusedIndex() int {
	for i, c := range v.ctrl.Cards() {
		if c.Focused {
			return i
		}
	}
	return 0
}

// ── view ─────────────────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading dashboard...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	body := v.renderBody()
	if v.vp.Height <= 0 {
		return body
	}
	v.vp.SetContent(body)
	return v.vp.View()
}

func (v *dashboardView) renderBody() string {
	var sections []string
	lines := 0
	add := func(s string) {
		sections = append(sections, s)
		lines += lipgloss.Height(s)
	}

	add("  " + formatter.Streak(v.ctrl.Profile().Streak))
	add("")
	add("  " + v.search.View())
	add("")

	v.heroTop = lines
	add(indent(v.renderHero(), "  "))
	v.heroBottom = lines
	add("")

	add(indent(formatter.Header("Decks"), "  "))
	v.deckTop = lines
	add(v.renderDecks())
	add("")

	add("  " + formatter.Button("Daily Mix", v.ctrl.DailyMixPressed()) + " " + formatter.Button("Add Cards", false))
	add("")
	add("  " + v.renderNav())

	return strings.Join(sections, "\n")
}

func (v *dashboardView) renderHero() string {
	rec := v.ctrl.Profile().Recommended
	hero, ok := v.ctrl.HeroDeck()

	name := rec.SubjectID
	color := domain.ColorPurple
	if ok {
		name = hero.Name
		color = hero.Color
	}

	var b strings.Builder
	b.WriteString(formatter.SubjectStyle(color).Bold(true).Render(name))
	b.WriteString(formatter.Dim(" · "))
	b.WriteString(formatter.StyleFg.Render(rec.Topic))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("%d reviews · %s", rec.Reviews, rec.EstimatedTime)))
	b.WriteString("\n\n")

	session := v.ctrl.Session()
	label := "▶ " + session.Label
	if session.Loading {
		label = v.spinner.View() + " " + session.Label
	}
	b.WriteString(formatter.Button(label, session.Pressed))

	border := formatter.ColorDim
	if v.ctrl.HeroHovered() {
		border = formatter.SubjectColor(color)
	}
	return formatter.RenderAccentBox("Recommended", b.String(), border)
}

func (v *dashboardView) renderDecks() string {
	cards := v.ctrl.Cards()
	if len(cards) == 0 {
		return "  " + formatter.Dim("No decks yet.")
	}
	rows := make([]string, len(cards))
	for i, c := range cards {
		if i >= v.revealed {
			continue
		}
		cursor := "  "
		if c.Focused {
			cursor = formatter.StyleHeader.Render("▸ ")
		}
		line := formatter.DeckLine(c.Deck, c.Dimmed)
		if c.Pressed {
			line = lipgloss.NewStyle().Reverse(true).Render(formatter.StripANSI(line))
		}
		rows[i] = "  " + cursor + line
	}
	return strings.Join(rows, "\n")
}

// startReveal begins the staggered entrance of the deck cards. Without a
// stagger delay every card shows at once.
func (v *dashboardView) startReveal() tea.Cmd {
	total := len(v.ctrl.Cards())
	stagger := v.state.Delays().DeckStagger
	if stagger <= 0 || total <= 1 {
		v.revealed = total
		return nil
	}
	v.revealed = 1
	return v.sched.Schedule(taskDeckReveal, stagger, deckRevealMsg{})
}

func (v *dashboardView) renderNav() string {
	items := v.ctrl.Nav()
	parts := make([]string, len(items))
	for i, n := range items {
		label := fmt.Sprintf("%d %s", i+1, n.Label)
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(formatter.ColorDim)
		switch {
		case n.Pressed:
			style = style.Reverse(true).Foreground(formatter.ColorHeader)
		case n.Active:
			style = style.Bold(true).Foreground(formatter.ColorHeader)
		}
		parts[i] = style.Render(label)
	}
	return strings.Join(parts, formatter.Dim("│"))
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
