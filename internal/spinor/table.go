// Package spinor parses sum_dirac_dfcoef output into a rectangular
// table of cells. The format is whitespace-delimited with a variable
// number of columns per line; short rows are padded with empty cells
// and the header row is synthesized from column position, since the
// files themselves carry none.
package spinor

// Table is one parsed output file.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (t *Table) RowCount() int { return len(t.Rows) }

func (t *Table) ColumnCount() int { return len(t.Headers) }

// Cell returns the cell at (row, col), or "" when the row is shorter
// than the table's widest row.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
