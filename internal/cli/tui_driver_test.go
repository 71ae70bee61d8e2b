package cli

import (
	"testing"

	"github.com/alexanderramin/cramit/internal/cli/formatter"
	"github.com/alexanderramin/cramit/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to the appModel internals
// (view stack, shared state, the root views) that the generic driver can't
// see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel with root as its first view, sets the
// terminal size and drains Init (which loads the catalog synchronously from
// in-memory SQLite).
func NewTestDriver(t *testing.T, app *App, root func(*SharedState) View) *TestDriver {
	t.Helper()

	m := newAppModel(app, root)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// NewExploreDriver starts the TUI on the catalog browser.
func NewExploreDriver(t *testing.T, app *App, subject string) *TestDriver {
	t.Helper()
	return NewTestDriver(t, app, func(s *SharedState) View { return newExploreView(s, subject) })
}

// NewDashboardDriver starts the TUI on the dashboard.
func NewDashboardDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	return NewTestDriver(t, app, func(s *SharedState) View { return newDashboardView(s) })
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// View returns the rendered screen without styling escapes.
func (d *TestDriver) View() string {
	return formatter.StripANSI(d.Driver.View())
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// Explore returns the catalog browser at the bottom of the stack.
func (d *TestDriver) Explore() *exploreView {
	d.T.Helper()
	v, ok := d.appModel().viewStack[0].(*exploreView)
	if !ok {
		d.T.Fatalf("root view is %T, not the catalog browser", d.appModel().viewStack[0])
	}
	return v
}

// Dashboard returns the dashboard at the bottom of the stack.
func (d *TestDriver) Dashboard() *dashboardView {
	d.T.Helper()
	v, ok := d.appModel().viewStack[0].(*dashboardView)
	if !ok {
		d.T.Fatalf("root view is %T, not the dashboard", d.appModel().viewStack[0])
	}
	return v
}

// Dialog returns the dialog on top of the stack, or nil.
func (d *TestDriver) Dialog() *dialogView {
	m := d.appModel()
	v, _ := m.activeView().(*dialogView)
	return v
}
