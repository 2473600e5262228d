package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/spinorview/internal/config"
	"github.com/jask/spinorview/internal/database"
	"github.com/jask/spinorview/internal/database/repository"
	"github.com/jask/spinorview/internal/service"
	"github.com/jask/spinorview/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The history store is a convenience; the viewer works without it.
	var repos tui.Repos
	if db, err := openHistory(cfg); err != nil {
		log.Printf("recent-file history disabled: %v", err)
	} else {
		defer db.Close()
		repos.History = repository.NewHistoryRepo(db)
	}

	runner := &service.DFCoefRunner{
		Command: cfg.DFCoef.Command,
		Decimal: cfg.DFCoef.Decimal,
	}

	// A path on the command line skips the picker.
	startPath := ""
	if len(os.Args) > 1 {
		startPath = os.Args[1]
	}

	app := tui.New(ctx, cfg, repos, runner, startPath)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func openHistory(cfg config.Config) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, err
	}
	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		return nil, err
	}
	return database.Open(cfg.Database.Path)
}
