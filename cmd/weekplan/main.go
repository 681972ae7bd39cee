package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amorasol/weekplan/internal/cli"
	"github.com/amorasol/weekplan/internal/db"
	"github.com/amorasol/weekplan/internal/repository"
	"github.com/amorasol/weekplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.weekplan/weekplan.db
	dbPath := os.Getenv("WEEKPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".weekplan", "weekplan.db")
	}

	// Trusted user identifier; authentication happens outside this tool.
	userID := os.Getenv("WEEKPLAN_USER")
	if userID == "" {
		userID = "local"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	taskRepo := repository.NewSQLiteTaskRepo(database)
	blockRepo := repository.NewSQLiteTimeBlockRepo(database)

	app := &cli.App{
		Tasks:  service.NewTaskService(taskRepo),
		Plan:   service.NewPlanService(taskRepo, blockRepo, service.DefaultPlannerConfig()),
		Stats:  service.NewStatsService(taskRepo, blockRepo),
		UserID: userID,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
