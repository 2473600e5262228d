package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jask/spinorview/internal/config"
	"github.com/jask/spinorview/internal/database"
	"github.com/jask/spinorview/internal/database/repository"
	"github.com/jask/spinorview/internal/service"
)

func newPickerApp(t *testing.T) (*App, *repository.HistoryRepo) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	migrations, err := filepath.Abs("../database/migrations")
	if err != nil {
		t.Fatal(err)
	}
	if err := database.RunMigrations(dbPath, migrations); err != nil {
		t.Fatal(err)
	}
	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	repo := repository.NewHistoryRepo(db)
	ctx := context.Background()
	base := database.Now()
	if err := repo.Record(ctx, repository.HistoryEntry{Path: "/data/uo2.out", Molecule: "UO2", RowCount: 40, OpenedAt: base.Add(-time.Minute)}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Record(ctx, repository.HistoryEntry{Path: "/data/ucl6.out", Molecule: "UCl6", RowCount: 96, OpenedAt: base}); err != nil {
		t.Fatal(err)
	}

	a := New(ctx, config.Config{}, Repos{History: repo}, &service.DFCoefRunner{}, "")
	model, _ := a.Update(a.loadFileListCmd()())
	return model.(*App), repo
}

func TestPickerForgetsRecentEntry(t *testing.T) {
	a, repo := newPickerApp(t)

	item, ok := a.fileList.SelectedItem().(fileItem)
	if !ok || item.path != "/data/ucl6.out" {
		t.Fatalf("selected item = %+v, want most recent entry", a.fileList.SelectedItem())
	}

	model, cmd := a.Update(keyRune('x'))
	a = model.(*App)
	if cmd == nil {
		t.Fatal("x on a recent entry returned no command")
	}
	msg := cmd()
	if _, ok := msg.(fileListMsg); !ok {
		t.Fatalf("forget returned %T, want refreshed file list", msg)
	}
	a.Update(msg)

	entries, err := repo.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Path != "/data/uo2.out" {
		t.Fatalf("entries after forget = %+v", entries)
	}
}

func TestPickerClearsHistory(t *testing.T) {
	a, repo := newPickerApp(t)

	_, cmd := a.Update(keyRune('X'))
	if cmd == nil {
		t.Fatal("X returned no command")
	}
	msg := cmd()
	if _, ok := msg.(fileListMsg); !ok {
		t.Fatalf("clear returned %T, want refreshed file list", msg)
	}

	entries, err := repo.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries after clear = %+v", entries)
	}
}
