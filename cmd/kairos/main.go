package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/luanbartole/kairos/internal/cli"
	"github.com/luanbartole/kairos/internal/config"
	"github.com/luanbartole/kairos/internal/db"
	"github.com/luanbartole/kairos/internal/repository"
	"github.com/luanbartole/kairos/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Diagnostics go to stderr only when asked for.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		observer = service.NewSlogUseCaseObserver(logger)
	}

	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	tracker := service.NewTrackerService(store, time.Now, cfg.DefaultTag, observer)
	app := &cli.App{
		Tracker:  tracker,
		Summary:  service.NewSummaryService(tracker, time.Now, observer),
		Exporter: service.NewExportService(tracker, cfg.ExportFormat, observer),
		Confirm:  cli.Decline,
	}

	// Only prompt when a human can answer.
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		app.Confirm = cli.HuhConfirm
	}

	return cli.NewRootCmd(app).Execute()
}

func openStore(cfg config.Config, logger *slog.Logger) (repository.SessionStore, func(), error) {
	switch cfg.Store {
	case config.StoreSQLite:
		database, err := db.OpenDB(cfg.DatabasePath())
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		store := repository.NewSQLiteSessionStore(database, db.NewSQLiteUnitOfWork(database))
		return store, func() { database.Close() }, nil
	default:
		store := repository.NewJSONFileStore(
			cfg.CurrentSessionPath(),
			cfg.SessionLogPath(),
			repository.WithLogger(logger),
		)
		return store, func() {}, nil
	}
}
