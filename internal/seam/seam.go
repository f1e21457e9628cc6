package seam

import (
	"errors"
	"fmt"
)

// ErrInvalidSeam indicates a seam that does not fit the picture it is
// applied to.
var ErrInvalidSeam = errors.New("seam: invalid seam")

// Seam is a top-to-bottom path through a picture: Seam[y] is the column
// removed from row y. Adjacent entries differ by at most 1.
type Seam []int

// Validate checks that s has one entry per row of a width x height picture,
// every entry is a valid column, and consecutive entries are 8-connected.
func (s Seam) Validate(width, height int) error {
	if len(s) != height {
		return fmt.Errorf("%w: length %d, picture height %d", ErrInvalidSeam, len(s), height)
	}
	for y, x := range s {
		if x < 0 || x >= width {
			return fmt.Errorf("%w: row %d column %d outside width %d", ErrInvalidSeam, y, x, width)
		}
		if y > 0 && abs(x-s[y-1]) > 1 {
			return fmt.Errorf("%w: rows %d and %d are not connected (%d, %d)", ErrInvalidSeam, y-1, y, s[y-1], x)
		}
	}
	return nil
}

// Backtrace selects the cheapest bottom-row cell of cost (leftmost on ties)
// and follows parents upward to produce the seam. It also returns the seam's
// total cost. Both tables must come from the same Accumulate call and have
// at least one column and one row.
func Backtrace(cost, parents *Table) (Seam, int) {
	h := cost.Height
	last := cost.Row(h - 1)

	col := 0
	for x, v := range last {
		if v < last[col] {
			col = x
		}
	}

	s := make(Seam, h)
	s[h-1] = col
	for y := h - 1; y > 0; y-- {
		s[y-1] = parents.At(s[y], y)
	}
	return s, last[col]
}
