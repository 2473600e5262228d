package zone

import (
	"errors"
	"reflect"
	"testing"
)

func selection(rows ...int) map[int]bool {
	s := make(map[int]bool, len(rows))
	for _, r := range rows {
		s[r] = true
	}
	return s
}

func TestAdvise(t *testing.T) {
	// boundaries: core (0,9), inactive (10,19), active (20,29),
	// secondary (30,39)
	reg := NewRegistry()
	reg.SetBoundaries(10, 20, 30, 40)

	cases := []struct {
		name     string
		selected map[int]bool
		want     []Zone
	}{
		{"mid-zone row triggers nothing", selection(5), nil},
		{"empty selection", selection(), nil},
		{"inactive.First offers core", selection(10), []Zone{Core}},
		{"core.Last offers inactive only", selection(9), []Zone{Inactive}},
		{"active.First offers inactive", selection(20), []Zone{Inactive}},
		{"inactive.Last offers active", selection(19), []Zone{Active}},
		{"secondary.First offers active", selection(30), []Zone{Active}},
		{"active.Last offers secondary", selection(29), []Zone{Secondary}},
		{"run across core/inactive boundary", selection(8, 9, 10, 11), []Zone{Core, Inactive}},
		{"inactive.Last plus active.First", selection(19, 20), []Zone{Inactive, Active}},
		{"run across active/secondary boundary", selection(29, 30), []Zone{Active, Secondary}},
		{"all eight triggers at once", selection(9, 10, 19, 20, 29, 30), []Zone{Core, Inactive, Active, Secondary}},
		{"filler rows change nothing", selection(3, 9, 14), []Zone{Inactive}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Advise(reg, tc.selected)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Advise(%v) = %v, want %v", tc.selected, got, tc.want)
			}
		})
	}
}

func TestAdviseDegenerateZones(t *testing.T) {
	// No active or secondary rows in a 16-row table: both split points
	// sit at 16, past the last row, so the first-row triggers of the
	// empty zones can never fire from a real selection. Row 15 is both
	// inactive.Last and the degenerate active span's Last, so it offers
	// active and secondary at once.
	reg := NewRegistry()
	reg.SetBoundaries(8, 16, 16, 16)

	if got := Advise(reg, selection(15)); !reflect.DeepEqual(got, []Zone{Active, Secondary}) {
		t.Errorf("Advise(last inactive row) = %v, want [active secondary]", got)
	}
	if got := Advise(reg, selection(7, 15)); !reflect.DeepEqual(got, []Zone{Inactive, Active, Secondary}) {
		t.Errorf("Advise = %v", got)
	}
	// Nothing can select row 16, so core is never offered here.
	if got := Advise(reg, selection(8)); !reflect.DeepEqual(got, []Zone{Core}) {
		t.Errorf("Advise(inactive.First) = %v, want [core]", got)
	}
}

func TestEngineAdviseValidatesSelection(t *testing.T) {
	e := NewEngine()
	if err := e.LoadColoring(InitialColoring(40)); err != nil {
		t.Fatal(err)
	}

	if _, err := e.Advise(selection(40)); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("err = %v, want ErrRowOutOfRange", err)
	}
	if _, err := e.Advise(selection(-1)); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("err = %v, want ErrRowOutOfRange", err)
	}

	offers, err := e.Advise(selection(9))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(offers, []Zone{Inactive}) {
		t.Errorf("offers = %v, want [inactive]", offers)
	}
}

func TestEngineLoadAndRecolor(t *testing.T) {
	e := NewEngine()
	if err := e.LoadColoring(InitialColoring(40)); err != nil {
		t.Fatal(err)
	}

	counts := e.Counts()
	for _, z := range All() {
		if counts[z] != 20 {
			t.Errorf("%s count = %d, want 20", z, counts[z])
		}
	}

	coloring := InitialColoring(40)
	for row := 10; row <= 14; row++ {
		coloring[row] = Core
	}
	if err := e.Reconcile(coloring); err != nil {
		t.Fatal(err)
	}

	if got := e.Counts()[Core]; got != 30 {
		t.Errorf("core count = %d, want 30", got)
	}
	if got := e.Boundaries()[Inactive].First; got != 15 {
		t.Errorf("inactive.First = %d, want 15", got)
	}
	if got := e.TotalRows(); got != 40 {
		t.Errorf("TotalRows = %d, want 40", got)
	}
}

func TestEngineRejectsBadColoring(t *testing.T) {
	e := NewEngine()
	if err := e.LoadColoring(InitialColoring(10)); err != nil {
		t.Fatal(err)
	}
	before := e.Boundaries()

	err := e.Reconcile([]Zone{Core, Zone(-1)})
	if !errors.Is(err, ErrUnknownZone) {
		t.Fatalf("err = %v, want ErrUnknownZone", err)
	}
	// A failed reconcile must not disturb derived state.
	if !reflect.DeepEqual(e.Boundaries(), before) {
		t.Error("boundaries changed after rejected reconcile")
	}
}
