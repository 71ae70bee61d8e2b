package cli

import (
	"context"

	"github.com/alexanderramin/cramit/internal/cli/formatter"
	"github.com/alexanderramin/cramit/internal/domain"
	"github.com/spf13/cobra"
)

func newSubjectsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "List subjects with their chapter counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := app.Catalog.ListSubjects(context.Background())
			if err != nil {
				return err
			}
			out := make([]domain.Subject, len(subjects))
			for i, s := range subjects {
				out[i] = *s
			}
			return writeOut(cmd, formatter.FormatSubjects(out))
		},
	}
}

func newChaptersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chapters <subject-id>",
		Short: "List a subject's chapters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := app.Catalog.GetSubject(context.Background(), args[0])
			if err != nil {
				return err
			}
			return writeOut(cmd, formatter.FormatChapters(subject))
		},
	}
}

func newDecksCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "decks",
		Short: "List decks, dimming those that do not match --query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			decks, err := app.Decks.ListDecks(ctx)
			if err != nil {
				return err
			}
			hits, err := app.Decks.SearchDecks(ctx, query)
			if err != nil {
				return err
			}
			matched := make(map[string]bool, len(hits))
			for _, d := range hits {
				matched[d.ID] = true
			}
			return writeOut(cmd, formatter.FormatDecks(derefDecks(decks), matched, query))
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive deck name filter")
	return cmd
}

func derefDecks(decks []*domain.Deck) []domain.Deck {
	out := make([]domain.Deck, len(decks))
	for i, d := range decks {
		out[i] = *d
	}
	return out
}
