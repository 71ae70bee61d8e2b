package cli

import (
	"io"
	"log/slog"

	"github.com/alexanderramin/cramit/internal/config"
	"github.com/alexanderramin/cramit/internal/logging"
	"github.com/alexanderramin/cramit/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog service.CatalogService
	Decks   service.DeckService
	Profile service.ProfileService
	Cram    service.CramService
	Study   service.StudyService

	Config  config.Config
	Logger  *slog.Logger
	Haptics Haptics

	// IsInteractive reports whether stdin is a terminal. Nil means it is not.
	IsInteractive func() bool

	// Setup wires the services once flags are parsed. It is skipped when nil,
	// which lets tests hand in a fully wired App.
	Setup func(app *App) (cleanup func() error, err error)

	cleanup func() error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return logging.Discard()
	}
	return a.Logger
}

func (a *App) haptics() Haptics {
	if a.Haptics == nil || !a.Config.Haptics {
		return NoHaptics{}
	}
	return a.Haptics
}

// Close releases what Setup opened. It is safe to call more than once.
func (a *App) Close() error {
	if a.cleanup == nil {
		return nil
	}
	cleanup := a.cleanup
	a.cleanup = nil
	return cleanup()
}

// NewRootCmd creates the top-level "cramit" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "cramit",
		Short:         "Flashcard catalog browser and study dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.Config.LogFile = flagOr(cmd.Flags(), "log-file", app.Config.LogFile)
			if app.Setup == nil {
				return nil
			}
			cleanup, err := app.Setup(app)
			if err != nil {
				return err
			}
			app.cleanup = cleanup
			return nil
		},
	}
	root.PersistentFlags().String("log-file", "", "write logs to this file (default: discard)")

	root.AddCommand(
		newExploreCmd(app),
		newDashboardCmd(app),
		newSubjectsCmd(app),
		newChaptersCmd(app),
		newDecksCmd(app),
	)

	return root
}

// writeOut writes s to the command's output stream.
func writeOut(cmd *cobra.Command, s string) error {
	_, err := io.WriteString(cmd.OutOrStdout(), s)
	return err
}
