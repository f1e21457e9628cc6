package seam

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTable indicates rows passed to TableFromRows had no cells.
	ErrEmptyTable = errors.New("seam: table must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("seam: all table rows must have the same length")
)

// Table is a Width x Height grid of integers, one per pixel, stored
// row-major. It backs the energy, cumulative cost and parent tables of a
// single carving pass.
type Table struct {
	Width, Height int
	Values        []int
}

// NewTable allocates a zeroed table.
func NewTable(width, height int) *Table {
	return &Table{Width: width, Height: height, Values: make([]int, width*height)}
}

// TableFromRows builds a table from rows[y][x].
func TableFromRows(rows [][]int) (*Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyTable
	}
	t := NewTable(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != t.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), t.Width)
		}
		copy(t.Row(y), row)
	}
	return t, nil
}

// At returns the value at (x, y).
func (t *Table) At(x, y int) int { return t.Values[y*t.Width+x] }

// Set stores v at (x, y).
func (t *Table) Set(x, y, v int) { t.Values[y*t.Width+x] = v }

// Row returns row y. The slice aliases the table.
func (t *Table) Row(y int) []int { return t.Values[y*t.Width : (y+1)*t.Width] }

// Rows returns a copy of the table as rows[y][x].
func (t *Table) Rows() [][]int {
	rows := make([][]int, t.Height)
	for y := range rows {
		rows[y] = append([]int(nil), t.Row(y)...)
	}
	return rows
}

// String renders one tab-separated line per row.
func (t *Table) String() string {
	var sb strings.Builder
	for y := 0; y < t.Height; y++ {
		sb.WriteByte('[')
		for x, v := range t.Row(y) {
			if x > 0 {
				sb.WriteByte('\t')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// Accumulate turns an energy table into the cumulative minimum-cost table
// and its parent table. The energy table is not modified.
//
// Row 0 of the cost table is the raw energy. For every later cell the
// cheapest predecessor among top, top-left and top-right is added; ties go
// to top, then top-left, then top-right. parents.At(x, y) holds the column in
// row y-1 that was chosen; row 0 of parents is unused.
func Accumulate(energy *Table) (cost, parents *Table) {
	w, h := energy.Width, energy.Height
	cost = &Table{Width: w, Height: h, Values: append([]int(nil), energy.Values...)}
	parents = NewTable(w, h)

	for y := 1; y < h; y++ {
		prev := cost.Row(y - 1)
		row := cost.Row(y)
		par := parents.Row(y)
		for x := range row {
			best, from := prev[x], x
			if x > 0 && prev[x-1] < best {
				best, from = prev[x-1], x-1
			}
			if x+1 < w && prev[x+1] < best {
				best, from = prev[x+1], x+1
			}
			row[x] += best
			par[x] = from
		}
	}
	return cost, parents
}
