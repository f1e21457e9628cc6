package imaging

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/picture-tools-mcp/internal/picture"
)

// ErrInvalidScale is returned when a scale factor is not a positive finite
// number or would produce an empty picture.
var ErrInvalidScale = errors.New("imaging: invalid scale factor")

// Crop extracts the rectangle [x1,x2) x [y1,y2) from p as a new picture.
func Crop(p *picture.Picture, x1, y1, x2, y2 int) (*picture.Picture, error) {
	w, h := p.Width(), p.Height()

	if x1 < 0 || y1 < 0 || x2 > w || y2 > h {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
			x1, y1, x2, y2, w, h)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	return picture.FromImage(imaging.Crop(p.NRGBA(), image.Rect(x1, y1, x2, y2))), nil
}

// CropQuadrant extracts a named region from a picture.
//
// Supported regions: top-left, top-right, bottom-left, bottom-right,
// top-half, bottom-half, left-half, right-half and center (the middle 50%).
func CropQuadrant(p *picture.Picture, region string) (*picture.Picture, error) {
	w := p.Width()
	h := p.Height()
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int

	switch region {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return nil, fmt.Errorf("unknown region: %s", region)
	}

	return Crop(p, x1, y1, x2, y2)
}

// Scale resizes p by factor using linear resampling. The new dimensions are
// the truncated products of the old ones with factor.
func Scale(p *picture.Picture, factor float64) (*picture.Picture, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, factor)
	}
	if factor == 1 {
		return p.Clone(), nil
	}

	newWidth := int(float64(p.Width()) * factor)
	newHeight := int(float64(p.Height()) * factor)
	if newWidth <= 0 || newHeight <= 0 {
		return nil, fmt.Errorf("%w: %v yields %dx%d", ErrInvalidScale, factor, newWidth, newHeight)
	}

	return picture.FromImage(transform.Resize(p.NRGBA(), newWidth, newHeight, transform.Linear)), nil
}
