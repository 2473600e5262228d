package spinor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// The first three columns of every output file are fixed; everything
// after alternates between an AO composition percentage and the AO type
// it belongs to.
var baseHeaders = []string{"gerade/ungerade", "no. of spinor", "energy (a.u.)"}

// Parse reads a whitespace-delimited spinor table. Every line becomes a
// row; rows narrower than the widest line are padded with empty cells.
func Parse(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows [][]string
	columns := 0
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > columns {
			columns = len(fields)
		}
		rows = append(rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}

	for i, row := range rows {
		if len(row) < columns {
			padded := make([]string, columns)
			copy(padded, row)
			rows[i] = padded
		}
	}

	return &Table{Headers: synthesizeHeaders(columns), Rows: rows}, nil
}

// ParseFile parses the table at path.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func synthesizeHeaders(columns int) []string {
	headers := make([]string, 0, columns)
	for i := 0; i < columns && i < len(baseHeaders); i++ {
		headers = append(headers, baseHeaders[i])
	}
	for idx := len(baseHeaders); idx < columns; idx++ {
		n := (idx-len(baseHeaders))/2 + 1
		if idx%2 == 0 {
			headers = append(headers, fmt.Sprintf("percentage %d", n))
		} else {
			headers = append(headers, fmt.Sprintf("AO type %d", n))
		}
	}
	return headers
}
