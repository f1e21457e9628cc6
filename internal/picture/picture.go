package picture

import (
	"fmt"
	"image"
	"image/color"
)

// Picture is a fixed-size grid of Colors stored row-major.
//
// A Picture is mutated only while a derived picture is being built. Once a
// function returns a Picture to its caller, treat it as read-only.
type Picture struct {
	width  int
	height int
	pix    []Color
}

// New creates a width x height picture filled with opaque white.
// It panics if either dimension is negative.
func New(width, height int) *Picture {
	return NewFilled(width, height, White)
}

// NewFilled creates a width x height picture with every pixel set to c.
// It panics if either dimension is negative.
func NewFilled(width, height int, c Color) *Picture {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("picture: negative dimensions %dx%d", width, height))
	}
	pix := make([]Color, width*height)
	for i := range pix {
		pix[i] = c
	}
	return &Picture{width: width, height: height, pix: pix}
}

// FromImage copies img into a new Picture. The picture's origin is the
// top-left corner of img's bounds.
func FromImage(img image.Image) *Picture {
	b := img.Bounds()
	p := &Picture{width: b.Dx(), height: b.Dy(), pix: make([]Color, b.Dx()*b.Dy())}

	// Fast paths for the concrete types produced by the decoders and filters
	// used in this module.
	switch src := img.(type) {
	case *Picture:
		copy(p.pix, src.pix)
		return p
	case *image.NRGBA:
		for y := 0; y < p.height; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < p.width; x++ {
				o := x * 4
				p.pix[y*p.width+x] = Color{R: row[o], G: row[o+1], B: row[o+2], A: row[o+3]}
			}
		}
		return p
	}

	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			p.pix[y*p.width+x] = FromColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return p
}

// Clone returns a deep copy of p.
func (p *Picture) Clone() *Picture {
	pix := make([]Color, len(p.pix))
	copy(pix, p.pix)
	return &Picture{width: p.width, height: p.height, pix: pix}
}

// Width returns the number of columns.
func (p *Picture) Width() int { return p.width }

// Height returns the number of rows.
func (p *Picture) Height() int { return p.height }

// Empty reports whether p has no pixels.
func (p *Picture) Empty() bool { return p.width == 0 || p.height == 0 }

// InBounds reports whether (x, y) addresses a pixel of p.
func (p *Picture) InBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// Index returns the row-major index of (x, y).
func (p *Picture) Index(x, y int) int {
	return y*p.width + x
}

// Coordinate converts a row-major index back to (x, y).
func (p *Picture) Coordinate(i int) (x, y int) {
	return i % p.width, i / p.width
}

// ColorAt returns the color of the pixel at (x, y).
func (p *Picture) ColorAt(x, y int) Color {
	return p.pix[y*p.width+x]
}

// SetColor sets the color of the pixel at (x, y).
func (p *Picture) SetColor(x, y int, c Color) {
	p.pix[y*p.width+x] = c
}

// Row returns the colors of row y. The slice aliases p's storage.
func (p *Picture) Row(y int) []Color {
	return p.pix[y*p.width : (y+1)*p.width]
}

// Map returns a new picture whose pixels are fn applied to p's pixels.
func (p *Picture) Map(fn func(c Color) Color) *Picture {
	out := &Picture{width: p.width, height: p.height, pix: make([]Color, len(p.pix))}
	for i, c := range p.pix {
		out.pix[i] = fn(c)
	}
	return out
}

// Equal reports whether p and q have the same dimensions and every pixel's
// full color, alpha included, matches.
func (p *Picture) Equal(q *Picture) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.width != q.width || p.height != q.height {
		return false
	}
	for i := range p.pix {
		if p.pix[i] != q.pix[i] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (p *Picture) String() string {
	return fmt.Sprintf("Picture, height = %d, width = %d", p.height, p.width)
}

// ColorModel implements image.Image.
func (p *Picture) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (p *Picture) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// At implements image.Image. Pixels outside the picture are transparent.
func (p *Picture) At(x, y int) color.Color {
	if !p.InBounds(x, y) {
		return color.NRGBA{}
	}
	return p.ColorAt(x, y)
}

// NRGBA copies p into a standard library image.
func (p *Picture) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(p.Bounds())
	for i, c := range p.pix {
		o := i * 4
		img.Pix[o] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = c.A
	}
	return img
}
