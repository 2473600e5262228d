package repository

import "time"

// HistoryEntry is one previously opened output file.
type HistoryEntry struct {
	ID       string
	Path     string
	Molecule string
	RowCount int
	OpenedAt time.Time
}
