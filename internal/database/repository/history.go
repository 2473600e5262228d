package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/spinorview/internal/database"
)

// historyCap bounds how many files the history keeps; recording past
// the cap evicts the oldest entries.
const historyCap = 50

// HistoryRepo handles the recent-file history.
type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Record upserts an opened file keyed by path, refreshing opened_at so
// the file moves to the top of the recent list, then evicts anything
// past the cap. Both statements run in one transaction.
func (r *HistoryRepo) Record(ctx context.Context, e HistoryEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.OpenedAt.IsZero() {
		e.OpenedAt = database.Now()
	}
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO file_history(id, path, molecule, row_count, opened_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
		 molecule=excluded.molecule,
		 row_count=excluded.row_count,
		 opened_at=excluded.opened_at;
		`, e.ID, e.Path, e.Molecule, e.RowCount, e.OpenedAt); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
		DELETE FROM file_history WHERE id NOT IN (
			SELECT id FROM file_history ORDER BY opened_at DESC, rowid DESC LIMIT ?
		)`, historyCap)
		return err
	})
}

// Recent returns the most recently opened files, newest first.
func (r *HistoryRepo) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, path, molecule, row_count, opened_at
	FROM file_history ORDER BY opened_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.Path, &e.Molecule, &e.RowCount, &e.OpenedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Forget removes one entry by path.
func (r *HistoryRepo) Forget(ctx context.Context, path string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM file_history WHERE path = ?`, path)
	return err
}

// Clear removes the whole history.
func (r *HistoryRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM file_history`)
	return err
}
