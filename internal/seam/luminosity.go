package seam

import "github.com/ironsheep/picture-tools-mcp/internal/picture"

// Luminosity returns the perceptual brightness of c,
// floor(0.21*R + 0.72*G + 0.07*B), in [0,255].
func Luminosity(c picture.Color) int {
	// Explicit conversions keep each product rounded on its own so results do
	// not depend on whether the platform fuses multiply-add.
	return int(float64(0.21*float64(c.R)) + float64(0.72*float64(c.G)) + float64(0.07*float64(c.B)))
}

// LuminosityAt returns the luminosity of the pixel at (x, y).
func LuminosityAt(p *picture.Picture, x, y int) int {
	return Luminosity(p.ColorAt(x, y))
}

// LuminosityPicture returns a copy of p with every pixel's red, green and blue
// channels replaced by its luminosity. Alpha is kept.
func LuminosityPicture(p *picture.Picture) *picture.Picture {
	return p.Map(func(c picture.Color) picture.Color {
		l := Luminosity(c)
		return picture.RGBA(l, l, l, int(c.A))
	})
}
