package zone

// Span is an inclusive (First, Last) row-index range. First > Last is
// the canonical empty-zone representation; a freshly created Registry
// holds the (-1, -1) unset sentinel for every zone.
type Span struct {
	First int
	Last  int
}

func (s Span) Empty() bool { return s.First > s.Last }

// Rows returns the number of rows the span covers.
func (s Span) Rows() int {
	if s.Empty() {
		return 0
	}
	return s.Last - s.First + 1
}

// Contains reports whether row falls inside the span.
func (s Span) Contains(row int) bool {
	return row >= s.First && row <= s.Last
}

// Registry holds the current boundary span of each zone. It is a plain
// value owned by whoever composes the engine; the reconciler is its
// only writer.
type Registry struct {
	spans [zoneCount]Span
}

func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.spans {
		r.spans[i] = Span{First: -1, Last: -1}
	}
	return r
}

// SetBoundaries derives all four spans from the three split points and
// the table length, replacing any previous state wholesale. The split
// points are not validated: a non-monotonic sequence simply yields
// degenerate (empty) spans.
//
//	core      = (0, inactiveStart-1)
//	inactive  = (inactiveStart, activeStart-1)
//	active    = (activeStart, secondaryStart-1)
//	secondary = (secondaryStart, totalRows-1)
func (r *Registry) SetBoundaries(inactiveStart, activeStart, secondaryStart, totalRows int) {
	r.spans[Core] = Span{First: 0, Last: inactiveStart - 1}
	r.spans[Inactive] = Span{First: inactiveStart, Last: activeStart - 1}
	r.spans[Active] = Span{First: activeStart, Last: secondaryStart - 1}
	r.spans[Secondary] = Span{First: secondaryStart, Last: totalRows - 1}
}

// Span returns the boundary span of z.
func (r *Registry) Span(z Zone) Span {
	return r.spans[z]
}

// Spans returns a copy of all boundaries keyed by zone.
func (r *Registry) Spans() map[Zone]Span {
	out := make(map[Zone]Span, zoneCount)
	for _, z := range All() {
		out[z] = r.spans[z]
	}
	return out
}
