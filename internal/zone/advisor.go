package zone

// Advise returns the zones a selection of rows may legally be recolored
// to, in display order. Each zone is triggered independently by its own
// boundary rows, so a selection spanning more than one boundary exposes
// more than one action:
//
//	core      — selection includes inactive.First
//	inactive  — selection includes core.Last or active.First
//	active    — selection includes inactive.Last or secondary.First
//	secondary — selection includes active.Last
//
// An empty zone's degenerate boundary rows can still trigger offers
// when they coincide with real rows of a neighboring zone; a sentinel
// index that no selection can contain simply never fires.
func Advise(reg *Registry, selected map[int]bool) []Zone {
	var offers []Zone
	if selected[reg.Span(Inactive).First] {
		offers = append(offers, Core)
	}
	if selected[reg.Span(Core).Last] || selected[reg.Span(Active).First] {
		offers = append(offers, Inactive)
	}
	if selected[reg.Span(Inactive).Last] || selected[reg.Span(Secondary).First] {
		offers = append(offers, Active)
	}
	if selected[reg.Span(Active).Last] {
		offers = append(offers, Secondary)
	}
	return offers
}
