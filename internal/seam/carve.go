package seam

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/picture-tools-mcp/internal/picture"
)

var (
	// ErrEmptyPicture indicates a picture with no columns or no rows.
	ErrEmptyPicture = errors.New("seam: picture has no pixels")
	// ErrTooManySeams indicates a CarveMany request wider than the picture.
	ErrTooManySeams = errors.New("seam: seam count exceeds picture width")
	// ErrNegativeSeams indicates a negative CarveMany request.
	ErrNegativeSeams = errors.New("seam: seam count must not be negative")
)

// Carver computes and removes seams.
//
// The zero value is not usable; create one with NewCarver. A Carver holds no
// per-picture state and is safe for concurrent use.
type Carver struct {
	workers int
	log     *log.Logger
}

// Option configures a Carver.
type Option func(*Carver)

// WithWorkers sets the number of goroutines used for the energy table.
// Values <= 0 mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Carver) { c.workers = n }
}

// WithLogger sets the logger that receives diagnostics. Rejected CarveMany
// requests are reported on it at error level.
func WithLogger(l *log.Logger) Option {
	return func(c *Carver) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCarver returns a Carver. Without options it logs to log.Default() and
// uses GOMAXPROCS workers.
func NewCarver(opts ...Option) *Carver {
	c := &Carver{log: log.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tables runs phases 1 and 2 on p and returns the energy, cumulative cost and
// parent tables.
func (c *Carver) Tables(p *picture.Picture) (energy, cost, parents *Table, err error) {
	if p.Width() == 0 || p.Height() == 0 {
		return nil, nil, nil, ErrEmptyPicture
	}
	energy = EnergyTable(p, c.workers)
	cost, parents = Accumulate(energy)
	return energy, cost, parents, nil
}

// ComputeSeam finds the minimum-cost vertical seam of p and its total cost.
func (c *Carver) ComputeSeam(p *picture.Picture) (Seam, int, error) {
	_, cost, parents, err := c.Tables(p)
	if err != nil {
		return nil, 0, err
	}
	s, total := Backtrace(cost, parents)
	return s, total, nil
}

// Carve removes the minimum-cost seam from p and returns a new picture one
// column narrower.
func (c *Carver) Carve(p *picture.Picture) (*picture.Picture, error) {
	s, _, err := c.ComputeSeam(p)
	if err != nil {
		return nil, err
	}
	return Remove(p, s)
}

// CarveMany carves n seams from p one at a time, recomputing energy on each
// narrower picture. n is checked once against p's width before any carving.
//
// An n larger than the width is reported as a single error-level diagnostic
// and yields no picture. CarveMany(p, 0) returns a copy of p.
func (c *Carver) CarveMany(p *picture.Picture, n int) (*picture.Picture, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSeams, n)
	}
	if n > p.Width() {
		c.log.Error(fmt.Sprintf("cannot carve %d seams from a picture of width %d", n, p.Width()))
		return nil, fmt.Errorf("%w: %d seams requested, width %d", ErrTooManySeams, n, p.Width())
	}

	out := p.Clone()
	for i := 0; i < n; i++ {
		next, err := c.Carve(out)
		if err != nil {
			return nil, fmt.Errorf("failed to carve seam %d of %d: %w", i+1, n, err)
		}
		out = next
		c.log.Debug("carved seam", "pass", i+1, "of", n, "width", out.Width())
	}
	return out, nil
}

// Remove returns a copy of p without the pixels of s. Columns right of the
// seam shift one place left.
func Remove(p *picture.Picture, s Seam) (*picture.Picture, error) {
	if err := s.Validate(p.Width(), p.Height()); err != nil {
		return nil, err
	}

	out := picture.New(p.Width()-1, p.Height())
	for y, col := range s {
		src := p.Row(y)
		dst := out.Row(y)
		copy(dst, src[:col])
		copy(dst[col:], src[col+1:])
	}
	return out, nil
}

// ShowSeam returns a copy of p with its minimum-cost seam painted red.
func (c *Carver) ShowSeam(p *picture.Picture) (*picture.Picture, error) {
	s, _, err := c.ComputeSeam(p)
	if err != nil {
		return nil, err
	}
	out := p.Clone()
	for y, x := range s {
		out.SetColor(x, y, picture.Red)
	}
	return out, nil
}
