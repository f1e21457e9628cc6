package imaging

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/picture-tools-mcp/internal/picture"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
//
// Luminosity is the same integer brightness the seam carver uses for its
// energy computation.
type ColorResult struct {
	Hex        string        `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB        RGBColor      `json:"rgb"`  // RGB components
	RGBA       picture.Color `json:"rgba"` // RGBA components with alpha
	HSL        HSLColor      `json:"hsl"`  // HSL representation
	Luminosity int           `json:"luminosity"`
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - p: The source picture to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//   - luminosity: The brightness model to report alongside the color.
//
// Returns:
//   - *ColorResult: The color at (x, y) in multiple formats.
//   - error: Non-nil if coordinates are outside the picture.
func SampleColor(p *picture.Picture, x, y int, luminosity func(picture.Color) int) (*ColorResult, error) {
	if !p.InBounds(x, y) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := p.ColorAt(x, y)
	res := &ColorResult{
		Hex:  c.Hex(),
		RGB:  RGBColor{R: c.R, G: c.G, B: c.B},
		RGBA: c,
		HSL:  toHSL(c),
	}
	if luminosity != nil {
		res.Luminosity = luminosity(c)
	}
	return res, nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"` // Optional label (empty if not provided)
	X     int         `json:"x"`               // X coordinate that was sampled
	Y     int         `json:"y"`               // Y coordinate that was sampled
	Color ColorResult `json:"color"`           // The color at this location
}

// MultiColorResult contains color samples from multiple points, in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti extracts colors at multiple pixel coordinates in a single
// call. On any out-of-bounds point no partial results are returned.
func SampleColorsMulti(p *picture.Picture, points []LabeledPoint, luminosity func(picture.Color) int) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, pt := range points {
		color, err := SampleColor(p, pt.X, pt.Y, luminosity)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", pt.X, pt.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: pt.Label,
			X:     pt.X,
			Y:     pt.Y,
			Color: *color,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// toHSL converts c to whole-number HSL using go-colorful.
func toHSL(c picture.Color) HSLColor {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()
	return HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)}
}
