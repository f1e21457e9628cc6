package effects

import (
	"errors"
	"fmt"

	"github.com/ironsheep/picture-tools-mcp/internal/picture"
)

var (
	// ErrSizeMismatch indicates two pictures that must share dimensions do not.
	ErrSizeMismatch = errors.New("effects: picture dimensions differ")
	// ErrOutOfBounds indicates a coordinate argument outside the picture.
	ErrOutOfBounds = errors.New("effects: coordinate outside picture bounds")
)

// ChromaKey replaces the pixels of fg that are close to the color at (x, y)
// with the corresponding pixels of bg. A pixel is replaced when its RGB
// distance to the selected color is strictly less than threshold.
//
// The result covers the overlap of both pictures: its width and height are
// the smaller of the two inputs'.
func ChromaKey(fg *picture.Picture, x, y int, bg *picture.Picture, threshold int) (*picture.Picture, error) {
	if !fg.InBounds(x, y) {
		return nil, fmt.Errorf("%w: key pixel (%d,%d) in %dx%d picture", ErrOutOfBounds, x, y, fg.Width(), fg.Height())
	}
	key := fg.ColorAt(x, y)
	limit := float64(threshold)

	w := min(fg.Width(), bg.Width())
	h := min(fg.Height(), bg.Height())
	out := picture.New(w, h)
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			c := fg.ColorAt(px, py)
			if picture.Distance(key, c) < limit {
				c = bg.ColorAt(px, py)
			}
			out.SetColor(px, py, c)
		}
	}
	return out, nil
}

// ShowDifferences returns a copy of a with every pixel that differs from b,
// alpha included, painted red. It also returns the number of differing
// pixels.
func ShowDifferences(a, b *picture.Picture) (*picture.Picture, int, error) {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return nil, 0, fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, a.Width(), a.Height(), b.Width(), b.Height())
	}
	out := a.Clone()
	diff := 0
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.ColorAt(x, y) != b.ColorAt(x, y) {
				out.SetColor(x, y, picture.Red)
				diff++
			}
		}
	}
	return out, diff, nil
}
