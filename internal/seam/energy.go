package seam

import "github.com/ironsheep/picture-tools-mcp/internal/picture"

// Energy returns the edge strength of the pixel at (x, y): the absolute
// luminosity difference to the right neighbor plus the absolute difference
// to the neighbor below.
//
// The differences are one-sided. In the last column the left neighbor
// replaces the right one, and in the last row the pixel above replaces the
// one below. A picture one pixel wide (or tall) has no neighbor on that axis
// and contributes 0 for it.
func Energy(p *picture.Picture, x, y int) int {
	l := LuminosityAt(p, x, y)

	var e int
	switch {
	case x+1 < p.Width():
		e += abs(LuminosityAt(p, x+1, y) - l)
	case x > 0:
		e += abs(LuminosityAt(p, x-1, y) - l)
	}
	switch {
	case y+1 < p.Height():
		e += abs(LuminosityAt(p, x, y+1) - l)
	case y > 0:
		e += abs(LuminosityAt(p, x, y-1) - l)
	}
	return e
}

// EnergyTable computes Energy for every pixel of p. Rows are split into
// bands processed on up to workers goroutines (0 means GOMAXPROCS).
func EnergyTable(p *picture.Picture, workers int) *Table {
	t := NewTable(p.Width(), p.Height())
	picture.ParallelRows(p.Height(), workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := t.Row(y)
			for x := range row {
				row[x] = Energy(p, x, y)
			}
		}
	})
	return t
}

// EnergyPicture renders the energy table of p as a grayscale picture.
// Energies above 255 saturate. Alpha is kept from p.
func EnergyPicture(p *picture.Picture, workers int) *picture.Picture {
	t := EnergyTable(p, workers)
	out := p.Clone()
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			e := t.At(x, y)
			out.SetColor(x, y, picture.RGBA(e, e, e, int(p.ColorAt(x, y).A)))
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
