package zone

import (
	"errors"
	"fmt"
)

// ErrUnknownZone is returned when a row coloring contains a value
// outside the four defined zones. The engine never substitutes a
// default zone for bad input.
var ErrUnknownZone = errors.New("unknown zone")

// Counts maps each zone to its displayed electron count. Every row
// contributes two (one per spinor component), so a zone covering ten
// rows counts twenty.
type Counts map[Zone]int

// Reconcile recomputes reg's boundaries and the per-zone counts from a
// full row coloring. coloring is treated as an immutable snapshot: one
// entry per table row, in row order.
//
// Each zone's first-seen row index and doubled row count are collected
// in a single pass. A zone that owns no rows gets its first-seen
// defaulted in zone order from the cumulative row counts of the zones
// before it, which keeps the three split points non-decreasing and the
// resulting boundaries contiguous even when zones are empty.
func Reconcile(reg *Registry, coloring []Zone) (Counts, error) {
	var firstSeen [zoneCount]int
	var count [zoneCount]int
	for i := range firstSeen {
		firstSeen[i] = -1
	}

	for row, z := range coloring {
		if !z.Valid() {
			return nil, fmt.Errorf("row %d: %w: %d", row, ErrUnknownZone, int(z))
		}
		if firstSeen[z] == -1 {
			firstSeen[z] = row
		}
		count[z] += 2
	}

	if firstSeen[Core] == -1 {
		firstSeen[Core] = 0
	}
	if firstSeen[Inactive] == -1 {
		firstSeen[Inactive] = count[Core] / 2
	}
	if firstSeen[Active] == -1 {
		firstSeen[Active] = (count[Core] + count[Inactive]) / 2
	}
	if firstSeen[Secondary] == -1 {
		firstSeen[Secondary] = (count[Core] + count[Inactive] + count[Active]) / 2
	}

	reg.SetBoundaries(firstSeen[Inactive], firstSeen[Active], firstSeen[Secondary], len(coloring))

	counts := make(Counts, zoneCount)
	for _, z := range All() {
		counts[z] = count[z]
	}
	return counts, nil
}

// InitialColoring paints a freshly loaded table by position: the first
// ten rows core, the next ten inactive, the next ten active, and the
// remainder secondary. Cell contents play no part.
func InitialColoring(totalRows int) []Zone {
	coloring := make([]Zone, totalRows)
	for row := range coloring {
		switch {
		case row < 10:
			coloring[row] = Core
		case row < 20:
			coloring[row] = Inactive
		case row < 30:
			coloring[row] = Active
		default:
			coloring[row] = Secondary
		}
	}
	return coloring
}
