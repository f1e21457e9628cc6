package fill

import (
	"errors"
	"fmt"

	"github.com/ironsheep/picture-tools-mcp/internal/picture"
)

// ErrSeedOutOfBounds indicates a seed coordinate outside the picture.
var ErrSeedOutOfBounds = errors.New("fill: seed outside picture bounds")

// ErrUnknownDirection is returned by ParseDirection for unrecognized names.
var ErrUnknownDirection = errors.New("fill: unknown direction")

// ErrInvalidOrder is returned when an expansion order is not a permutation
// of the four directions.
var ErrInvalidOrder = errors.New("fill: order must list each direction exactly once")

// Direction is one of the four orthogonal neighbor steps.
type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
)

// DefaultOrder is the expansion order used when none is given.
var DefaultOrder = []Direction{Right, Down, Left, Up}

// Offset returns the coordinate delta of d.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	}
	return 0, 0
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses the lower-case name produced by Direction.String.
func ParseDirection(s string) (Direction, error) {
	for _, d := range []Direction{Right, Down, Left, Up} {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// ValidateOrder reports whether order names each of the four directions
// exactly once. An empty order is valid and means DefaultOrder.
func ValidateOrder(order []Direction) error {
	if len(order) == 0 {
		return nil
	}
	if len(order) != len(DefaultOrder) {
		return fmt.Errorf("%w: got %d directions", ErrInvalidOrder, len(order))
	}
	var seen [4]bool
	for _, d := range order {
		if d < Right || d > Up {
			return fmt.Errorf("%w: %v", ErrInvalidOrder, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: %v repeated", ErrInvalidOrder, d)
		}
		seen[d] = true
	}
	return nil
}

// Region returns the row-major indices of every pixel reachable from (x, y)
// through 4-connected neighbors whose RGB distance to the seed color is
// strictly less than threshold. Indices appear in visiting order, which
// depends on order (DefaultOrder when empty). A non-empty order must be a
// permutation of all four directions. p is not modified.
//
// With threshold <= 0 no pixel qualifies, not even the seed, and the region
// is empty.
//
// Time:   O(W·H). Memory: O(W·H) for the visited bitmap and stack.
func Region(p *picture.Picture, x, y, threshold int, order ...Direction) ([]int, error) {
	if !p.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d picture", ErrSeedOutOfBounds, x, y, p.Width(), p.Height())
	}
	if err := ValidateOrder(order); err != nil {
		return nil, err
	}
	if len(order) == 0 {
		order = DefaultOrder
	}

	seed := p.ColorAt(x, y)
	limit := float64(threshold)
	within := func(cx, cy int) bool {
		return picture.Distance(seed, p.ColorAt(cx, cy)) < limit
	}

	visited := make([]bool, p.Width()*p.Height())
	start := p.Index(x, y)
	visited[start] = true
	if !within(x, y) {
		return nil, nil
	}

	var region []int
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, u)

		ux, uy := p.Coordinate(u)
		for _, d := range order {
			dx, dy := d.Offset()
			vx, vy := ux+dx, uy+dy
			if !p.InBounds(vx, vy) {
				continue
			}
			v := p.Index(vx, vy)
			if visited[v] {
				continue
			}
			// Membership depends only on v's own color, so a rejected
			// pixel never needs a second look.
			visited[v] = true
			if within(vx, vy) {
				stack = append(stack, v)
			}
		}
	}
	return region, nil
}

// Recolor returns a copy of p with every pixel in region set to c.
func Recolor(p *picture.Picture, region []int, c picture.Color) *picture.Picture {
	out := p.Clone()
	for _, i := range region {
		x, y := out.Coordinate(i)
		out.SetColor(x, y, c)
	}
	return out
}

// PaintBucket returns a copy of p in which the region grown from (x, y)
// with the given threshold is recolored to c.
func PaintBucket(p *picture.Picture, x, y, threshold int, c picture.Color, order ...Direction) (*picture.Picture, error) {
	region, err := Region(p, x, y, threshold, order...)
	if err != nil {
		return nil, err
	}
	return Recolor(p, region, c), nil
}
