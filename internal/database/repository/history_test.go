package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/spinorview/internal/database"
)

func setupHistoryTest(t *testing.T) (*HistoryRepo, context.Context) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewHistoryRepo(db), ctx
}

func TestHistoryRecordAndRecent(t *testing.T) {
	t.Parallel()
	repo, ctx := setupHistoryTest(t)

	require.NoError(t, repo.Record(ctx, HistoryEntry{Path: "/data/Ar.out", Molecule: "Ar", RowCount: 42}))
	require.NoError(t, repo.Record(ctx, HistoryEntry{Path: "/data/UO2.out", Molecule: "UO2", RowCount: 188}))

	entries, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "/data/UO2.out", entries[0].Path)
	require.Equal(t, "UO2", entries[0].Molecule)
	require.Equal(t, 188, entries[0].RowCount)
	require.NotEmpty(t, entries[0].ID)
	require.False(t, entries[0].OpenedAt.IsZero())
	require.Equal(t, time.UTC, entries[0].OpenedAt.Location())
}

func TestHistoryRecordUpsertsByPath(t *testing.T) {
	t.Parallel()
	repo, ctx := setupHistoryTest(t)

	require.NoError(t, repo.Record(ctx, HistoryEntry{Path: "/data/Ar.out", Molecule: "Ar", RowCount: 42}))
	require.NoError(t, repo.Record(ctx, HistoryEntry{Path: "/data/Ar.out", Molecule: "Ar", RowCount: 44}))

	entries, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 44, entries[0].RowCount)
}

func TestHistoryEvictsPastCap(t *testing.T) {
	t.Parallel()
	repo, ctx := setupHistoryTest(t)

	base := database.Now().Add(-time.Hour)
	for i := 0; i < historyCap+5; i++ {
		require.NoError(t, repo.Record(ctx, HistoryEntry{
			Path:     fmt.Sprintf("/data/mol%03d.out", i),
			OpenedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	entries, err := repo.Recent(ctx, historyCap*2)
	require.NoError(t, err)
	require.Len(t, entries, historyCap)
	// newest survives, oldest five were evicted
	require.Equal(t, fmt.Sprintf("/data/mol%03d.out", historyCap+4), entries[0].Path)
	require.Equal(t, fmt.Sprintf("/data/mol%03d.out", 5), entries[len(entries)-1].Path)
}

func TestHistoryForgetAndClear(t *testing.T) {
	t.Parallel()
	repo, ctx := setupHistoryTest(t)

	require.NoError(t, repo.Record(ctx, HistoryEntry{Path: "/data/Ar.out", Molecule: "Ar"}))
	require.NoError(t, repo.Record(ctx, HistoryEntry{Path: "/data/UO2.out", Molecule: "UO2"}))

	require.NoError(t, repo.Forget(ctx, "/data/Ar.out"))
	entries, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, repo.Clear(ctx))
	entries, err = repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, entries)
}
