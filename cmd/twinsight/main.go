package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/pmakowski/twinsight/internal/cli"
	"github.com/pmakowski/twinsight/internal/config"
	"github.com/pmakowski/twinsight/internal/db"
	"github.com/pmakowski/twinsight/internal/repository"
	"github.com/pmakowski/twinsight/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	app := &cli.App{Config: cfg}

	var database *sql.DB
	app.Connect = func(dbPath string) error {
		var err error
		database, err = db.OpenDB(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		nodeRepo := repository.NewSQLitePlannedNodeRepo(database)
		evidenceRepo := repository.NewSQLiteEvidenceRepo(database)
		logRepo := repository.NewSQLiteSessionLogRepo(database)

		graph := service.NewStoreGraphSource(nodeRepo, evidenceRepo)
		app.Monitor = service.NewMonitorService(graph)
		app.Import = service.NewImportService(nodeRepo)
		app.Lifecycle = service.NewLifecycleService(nodeRepo, evidenceRepo, logRepo)
		return nil
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	return cli.NewRootCmd(app).Execute()
}
