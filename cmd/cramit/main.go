package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/cramit/internal/catalog"
	"github.com/alexanderramin/cramit/internal/cli"
	"github.com/alexanderramin/cramit/internal/config"
	"github.com/alexanderramin/cramit/internal/db"
	"github.com/alexanderramin/cramit/internal/logging"
	"github.com/alexanderramin/cramit/internal/repository"
	"github.com/alexanderramin/cramit/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	app := &cli.App{
		Config:  config.LoadConfig(),
		Haptics: cli.NewBellHaptics(os.Stderr),
		Setup:   setup,
	}

	// Detect interactive terminal; otherwise explore and dashboard print.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	defer func() {
		err = errors.Join(err, app.Close())
	}()

	return cli.NewRootCmd(app).Execute()
}

// setup runs after flag parsing so --log-file is honored. The catalog is
// loaded into a private in-memory store that lives for the process.
func setup(app *cli.App) (func() error, error) {
	logger, closeLog, err := logging.New(app.Config.LogFile, app.Config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}

	cat, err := catalog.Load(app.Config.CatalogPath)
	if err != nil {
		return nil, errors.Join(err, closeLog())
	}

	app.Config.DefaultSubject = resolveDefaultSubject(cat, app.Config.DefaultSubject, logger)

	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("opening catalog store: %w", err), closeLog())
	}
	cleanup := func() error {
		return errors.Join(database.Close(), closeLog())
	}

	if err := repository.SeedCatalog(context.Background(), db.NewSQLiteUnitOfWork(database), cat); err != nil {
		return nil, errors.Join(err, cleanup())
	}

	// Wire repositories
	subjectRepo := repository.NewSQLiteSubjectRepo(database)
	subtopicRepo := repository.NewSQLiteSubtopicRepo(database)
	deckRepo := repository.NewSQLiteDeckRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire services
	observer := service.NewLogUseCaseObserver(logger)
	decks := service.NewDeckService(deckRepo)

	app.Logger = logger
	app.Catalog = service.NewCatalogService(subjectRepo, subtopicRepo)
	app.Decks = decks
	app.Profile = service.NewProfileService(profileRepo)
	app.Cram = service.NewCramService(observer)
	app.Study = service.NewStudyService(decks, observer)

	return cleanup, nil
}

// resolveDefaultSubject keeps id when the catalog has it and otherwise
// falls back to the first subject.
func resolveDefaultSubject(cat *catalog.Catalog, id string, logger *slog.Logger) string {
	if _, ok := cat.Subject(id); ok || len(cat.Subjects) == 0 {
		return id
	}
	fallback := cat.Subjects[0].ID
	logger.Warn("default subject not in catalog", "subject", id, "using", fallback)
	return fallback
}
