package effects

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/picture-tools-mcp/internal/picture"
)

// ErrUnknownAxis indicates a flip axis outside the defined set.
var ErrUnknownAxis = errors.New("effects: unknown flip axis")

// Axis selects the line a picture is mirrored across.
type Axis int

const (
	// Horizontal mirrors left and right.
	Horizontal Axis = iota + 1
	// Vertical mirrors top and bottom.
	Vertical
	// ForwardDiagonal mirrors across the bottom-left to top-right diagonal.
	ForwardDiagonal
	// BackwardDiagonal mirrors across the top-left to bottom-right diagonal.
	BackwardDiagonal
)

// ParseAxis maps "horizontal", "vertical", "forward-diagonal" and
// "backward-diagonal" to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	case "forward-diagonal":
		return ForwardDiagonal, nil
	case "backward-diagonal":
		return BackwardDiagonal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
}

// Channel selects which color channels AddChannel shifts.
type Channel string

const (
	ChannelAll   Channel = "all"
	ChannelRed   Channel = "r"
	ChannelGreen Channel = "g"
	ChannelBlue  Channel = "b"
)

// Negate inverts the red, green and blue channels. Alpha is kept.
func Negate(p *picture.Picture) *picture.Picture {
	return picture.FromImage(imaging.Invert(p.NRGBA()))
}

// Grayscale converts p to gray using bild's perceptual weights. Alpha is kept.
func Grayscale(p *picture.Picture) *picture.Picture {
	gray := effect.Grayscale(p.NRGBA())
	return withAlphaOf(p, gray)
}

// Lighten adds amount to every color channel, clamping at 255.
func Lighten(p *picture.Picture, amount int) *picture.Picture {
	return AddChannel(p, ChannelAll, amount)
}

// Darken subtracts amount from every color channel, clamping at 0.
func Darken(p *picture.Picture, amount int) *picture.Picture {
	return AddChannel(p, ChannelAll, -amount)
}

// AddChannel adds amount to the selected channel (or all three) of every
// pixel. Results are clamped to [0,255]. An unknown channel leaves the
// colors unchanged.
func AddChannel(p *picture.Picture, ch Channel, amount int) *picture.Picture {
	var dr, dg, db int
	switch ch {
	case ChannelAll:
		dr, dg, db = amount, amount, amount
	case ChannelRed:
		dr = amount
	case ChannelGreen:
		dg = amount
	case ChannelBlue:
		db = amount
	}
	return p.Map(func(c picture.Color) picture.Color {
		return c.AddRGB(dr, dg, db)
	})
}

// RotateRight rotates p 90 degrees clockwise. The result is p.Height() wide
// and p.Width() tall.
func RotateRight(p *picture.Picture) *picture.Picture {
	return picture.FromImage(imaging.Rotate270(p.NRGBA()))
}

// Flip mirrors p across axis. Diagonal flips swap width and height.
func Flip(p *picture.Picture, axis Axis) (*picture.Picture, error) {
	src := p.NRGBA()
	var dst *image.NRGBA
	switch axis {
	case Horizontal:
		dst = imaging.FlipH(src)
	case Vertical:
		dst = imaging.FlipV(src)
	case ForwardDiagonal:
		dst = imaging.Transverse(src)
	case BackwardDiagonal:
		dst = imaging.Transpose(src)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAxis, int(axis))
	}
	return picture.FromImage(dst), nil
}

// withAlphaOf builds a picture from img's colors and src's alpha channel.
// img must have src's dimensions.
func withAlphaOf(src *picture.Picture, img image.Image) *picture.Picture {
	out := picture.FromImage(img)
	for y := 0; y < src.Height(); y++ {
		dst := out.Row(y)
		for x, c := range src.Row(y) {
			dst[x].A = c.A
		}
	}
	return out
}
