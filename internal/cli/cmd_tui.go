package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cramit/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newExploreCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse subjects and chapters and start a cram session",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject := flagOr(cmd.Flags(), "subject", app.Config.DefaultSubject)
			if !app.interactive() {
				return printExplore(cmd, app, subject)
			}
			return runProgram(app, func(state *SharedState) View {
				return newExploreView(state, subject)
			})
		},
	}
	cmd.Flags().String("subject", "", "subject tab to open first (default from CRAMIT_DEFAULT_SUBJECT)")
	return cmd
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show decks, the recommended session and quick actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return printDashboard(cmd, app)
			}
			return runProgram(app, func(state *SharedState) View {
				return newDashboardView(state)
			})
		},
	}
}

// runProgram runs the full-screen TUI with root as the first view.
func runProgram(app *App, root func(*SharedState) View) error {
	p := tea.NewProgram(newAppModel(app, root), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

// printExplore is the non-interactive rendering of the catalog browser: the
// chapter list of the chosen subject, or of the first subject when the id
// is unknown.
func printExplore(cmd *cobra.Command, app *App, subjectID string) error {
	ctx := context.Background()
	subjects, err := app.Catalog.ListSubjects(ctx)
	if err != nil {
		return err
	}
	if len(subjects) == 0 {
		return writeOut(cmd, formatter.FormatSubjects(nil))
	}
	chosen := subjects[0]
	for _, s := range subjects {
		if s.ID == subjectID {
			chosen = s
			break
		}
	}
	return writeOut(cmd, formatter.FormatChapters(chosen))
}

// printDashboard is the non-interactive rendering of the dashboard.
func printDashboard(cmd *cobra.Command, app *App) error {
	ctx := context.Background()
	profile, err := app.Profile.Get(ctx)
	if err != nil {
		return err
	}
	decks, err := app.Decks.ListDecks(ctx)
	if err != nil {
		return err
	}

	rec := profile.Recommended
	name := rec.SubjectID
	if deck, err := app.Decks.GetDeck(ctx, rec.SubjectID); err == nil {
		name = deck.Name
	}
	out := "  " + formatter.Streak(profile.Streak) + "\n\n" +
		formatter.RenderBox("Recommended", fmt.Sprintf("%s · %s\n%s",
			formatter.Bold(name), rec.Topic,
			formatter.Dim(fmt.Sprintf("%d reviews · %s", rec.Reviews, rec.EstimatedTime)))) + "\n\n" +
		formatter.FormatDecks(derefDecks(decks), nil, "")
	return writeOut(cmd, out)
}
