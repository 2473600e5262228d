// Package zone implements the row-classification engine behind the
// spinor table view: four ordered zones (core, inactive, active,
// secondary), the registry of their row boundaries, the reconciler
// that recomputes boundaries and electron counts from a full row
// coloring, and the advisor that decides which recolor actions a row
// selection may be offered.
package zone

import "fmt"

// Zone classifies one spinor row. The order is significant: core rows
// come before inactive rows, inactive before active, active before
// secondary.
type Zone int

const (
	Core Zone = iota
	Inactive
	Active
	Secondary

	zoneCount
)

// All returns the zones in display order.
func All() []Zone {
	return []Zone{Core, Inactive, Active, Secondary}
}

func (z Zone) Valid() bool {
	return z >= Core && z < zoneCount
}

func (z Zone) String() string {
	switch z {
	case Core:
		return "core"
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Secondary:
		return "secondary"
	default:
		return fmt.Sprintf("zone(%d)", int(z))
	}
}

// Parse maps a zone name back to its Zone value.
func Parse(s string) (Zone, error) {
	switch s {
	case "core":
		return Core, nil
	case "inactive":
		return Inactive, nil
	case "active":
		return Active, nil
	case "secondary":
		return Secondary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownZone, s)
	}
}
