package zone

import (
	"errors"
	"fmt"
	"sync"
)

// ErrRowOutOfRange is returned when a selection names a row index
// outside the loaded table.
var ErrRowOutOfRange = errors.New("row index out of range")

// Engine composes the registry and the last-computed counts for one
// loaded table. It is the context object handed to whatever binds the
// engine to a table view: the view owns the row coloring, the engine
// owns everything derived from it.
//
// All methods are safe for concurrent use; a single mutex serializes
// the reconcile writer against boundary and count readers. In a
// single-threaded event loop the lock is uncontended.
type Engine struct {
	mu        sync.Mutex
	reg       *Registry
	counts    Counts
	totalRows int
}

func NewEngine() *Engine {
	return &Engine{
		reg:    NewRegistry(),
		counts: Counts{Core: 0, Inactive: 0, Active: 0, Secondary: 0},
	}
}

// LoadColoring installs the coloring of a freshly loaded table and runs
// the first reconciliation.
func (e *Engine) LoadColoring(coloring []Zone) error {
	return e.Reconcile(coloring)
}

// Reconcile recomputes boundaries and counts from the authoritative
// row coloring. The caller must pass the full table, not just the rows
// that changed.
func (e *Engine) Reconcile(coloring []Zone) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	counts, err := Reconcile(e.reg, coloring)
	if err != nil {
		return err
	}
	e.counts = counts
	e.totalRows = len(coloring)
	return nil
}

// Boundaries returns the current boundary span of every zone.
func (e *Engine) Boundaries() map[Zone]Span {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reg.Spans()
}

// Counts returns the displayed electron count of every zone.
func (e *Engine) Counts() Counts {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(Counts, len(e.counts))
	for z, n := range e.counts {
		out[z] = n
	}
	return out
}

// TotalRows returns the length of the last reconciled coloring.
func (e *Engine) TotalRows() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalRows
}

// Advise returns the legal recolor actions for the selected rows, in
// display order. Selection indices must lie inside the loaded table.
func (e *Engine) Advise(selected map[int]bool) ([]Zone, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for row := range selected {
		if row < 0 || row >= e.totalRows {
			return nil, fmt.Errorf("%w: %d (table has %d rows)", ErrRowOutOfRange, row, e.totalRows)
		}
	}
	return Advise(e.reg, selected), nil
}
