package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/pmorten/timetrail/internal/cli"
	"github.com/pmorten/timetrail/internal/cli/formatter"
	"github.com/pmorten/timetrail/internal/clock"
	"github.com/pmorten/timetrail/internal/db"
	"github.com/pmorten/timetrail/internal/repository"
	"github.com/pmorten/timetrail/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.timetrail/timetrail.db
	dbPath := os.Getenv("TIMETRAIL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".timetrail", "timetrail.db")
	}

	ownerID, err := resolveOwner()
	if err != nil {
		return err
	}

	// Plain output when piped or redirected.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableStyles()
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	entryRepo := repository.NewSQLiteEntryRepo(database)
	prefsRepo := repository.NewSQLitePreferencesRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	clk := clock.System{}

	var observers []service.OpObserver
	if os.Getenv("TIMETRAIL_DEBUG") != "" {
		observers = append(observers, service.NewLogOpObserver(os.Stderr))
	}

	app := &cli.App{
		Timeline:    service.NewTimelineService(entryRepo, prefsRepo, uow, clk, observers...),
		Preferences: service.NewPreferencesService(prefsRepo, clk),
		Import:      service.NewImportService(prefsRepo, uow, clk, observers...),
		Clock:       clk,
		OwnerID:     ownerID,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// resolveOwner picks the identity commands act as: env var first, then the
// OS username. Shared databases rely on the env var.
func resolveOwner() (string, error) {
	if owner := os.Getenv("TIMETRAIL_OWNER"); owner != "" {
		return owner, nil
	}
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("resolving current user: %w", err)
	}
	return u.Username, nil
}
