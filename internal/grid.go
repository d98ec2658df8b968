package internal

import (
	"fmt"
	"strings"
)

// Grid is a fixed-capacity sequence of token slots laid out in rows. All
// rows hold exactly width slots except possibly the last, which holds the
// remainder so that the slot count equals the requested capacity. An empty
// string marks an unused slot; a finished grid has none.
type Grid struct {
	rows  [][]string
	width int
}

// NewGrid allocates an empty grid with the given row width and total slot
// capacity. Width and capacity must be at least 1.
func NewGrid(width, capacity int) (*Grid, error) {
	if width < 1 {
		return nil, fmt.Errorf("row width must be at least 1, got %d", width)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("capacity must be at least 1, got %d", capacity)
	}
	numRows := capacity / width
	if capacity%width != 0 {
		numRows++
	}
	rows := make([][]string, numRows)
	remaining := capacity
	for i := range rows {
		n := width
		if remaining < width {
			n = remaining
		}
		rows[i] = make([]string, n)
		remaining -= n
	}
	return &Grid{rows: rows, width: width}, nil
}

// Width returns the nominal row width.
func (g *Grid) Width() int {
	return g.width
}

// NumRows returns the number of rows.
func (g *Grid) NumRows() int {
	return len(g.rows)
}

// Capacity returns the total number of slots.
func (g *Grid) Capacity() int {
	n := 0
	for _, row := range g.rows {
		n += len(row)
	}
	return n
}

// Row returns a copy of row i.
func (g *Grid) Row(i int) []string {
	out := make([]string, len(g.rows[i]))
	copy(out, g.rows[i])
	return out
}

// RowStrings serializes the grid for transport: each row becomes one flat
// string of its tokens concatenated in order.
func (g *Grid) RowStrings() []string {
	out := make([]string, len(g.rows))
	for i, row := range g.rows {
		out[i] = strings.Join(row, "")
	}
	return out
}

// ParseRowStrings rebuilds a grid from transported row strings by
// resplitting each into 2-rune tokens. Rows with an odd rune count are a
// caller error and are rejected here, before any decode is attempted.
func ParseRowStrings(lines []string) (*Grid, error) {
	rows := make([][]string, 0, len(lines))
	width := 0
	for i, line := range lines {
		runes := []rune(line)
		if len(runes)%2 != 0 {
			return nil, fmt.Errorf("row %d has odd length %d; rows must hold whole 2-character tokens", i+1, len(runes))
		}
		row := make([]string, 0, len(runes)/2)
		for j := 0; j+1 < len(runes); j += 2 {
			row = append(row, string(runes[j:j+2]))
		}
		if len(row) > width {
			width = len(row)
		}
		rows = append(rows, row)
	}
	if width == 0 {
		width = 1
	}
	return &Grid{rows: rows, width: width}, nil
}

// flatten copies all slots into one logical sequence, row by row.
func (g *Grid) flatten() []string {
	flat := make([]string, 0, g.Capacity())
	for _, row := range g.rows {
		flat = append(flat, row...)
	}
	return flat
}

// writeBack copies a flattened slot sequence into the rows.
func (g *Grid) writeBack(flat []string) {
	idx := 0
	for _, row := range g.rows {
		for j := range row {
			row[j] = flat[idx]
			idx++
		}
	}
}
