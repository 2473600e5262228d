package service

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/spinorview/internal/spinor"
)

// SearchMatch is one row matching a search query.
type SearchMatch struct {
	Row      int
	Cell     string
	Distance int
}

// maxSearchDistance keeps clearly unrelated AO labels out of the
// result set while still tolerating a typo or truncated query.
const maxSearchDistance = 3

// SearchRows finds the rows whose cells best match query, ranked by
// edit distance then row order. A cell containing the query as a
// substring counts as distance zero, so prefix searches behave the way
// an incremental search should.
func SearchRows(table *spinor.Table, query string) []SearchMatch {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || table == nil {
		return nil
	}

	var matches []SearchMatch
	for row := range table.Rows {
		best := -1
		bestCell := ""
		for col := 0; col < table.ColumnCount(); col++ {
			cell := strings.ToLower(table.Cell(row, col))
			if cell == "" {
				continue
			}
			var d int
			if strings.Contains(cell, query) {
				d = 0
			} else {
				d = levenshtein.ComputeDistance(query, cell)
				if d > maxSearchDistance {
					continue
				}
			}
			if best == -1 || d < best {
				best = d
				bestCell = table.Cell(row, col)
			}
		}
		if best >= 0 {
			matches = append(matches, SearchMatch{Row: row, Cell: bestCell, Distance: best})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Row < matches[j].Row
	})
	return matches
}
