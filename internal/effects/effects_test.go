package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/picture-tools-mcp/internal/picture"
)

// gridPicture returns a w x h picture where pixel (x, y) is RGB(x, y, 7) with
// alpha 200, so every position is distinguishable.
func gridPicture(w, h int) *picture.Picture {
	p := picture.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.SetColor(x, y, picture.RGBA(x, y, 7, 200))
		}
	}
	return p
}

func TestShowEdges_OriginAlwaysWhite(t *testing.T) {
	for _, threshold := range []int{-1, 0, 10, 1000} {
		p := picture.NewFilled(3, 3, picture.RGB(12, 200, 40))
		out := ShowEdges(p, threshold, 1)
		assert.Equal(t, picture.White, out.ColorAt(0, 0), "threshold %d", threshold)
	}
}

func TestShowEdges_UniformIsWhite(t *testing.T) {
	out := ShowEdges(picture.NewFilled(20, 20, picture.RGBA(1, 2, 3, 0)), 0, 1)
	assert.True(t, picture.NewFilled(20, 20, picture.White).Equal(out), "alpha must be forced opaque")
}

func TestShowEdges_VerticalBoundary(t *testing.T) {
	p := picture.New(4, 3)
	for y := 0; y < 3; y++ {
		p.SetColor(2, y, picture.Black)
		p.SetColor(3, y, picture.Black)
	}
	out := ShowEdges(p, 10, 1)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := picture.White
			if x == 2 {
				want = picture.Black
			}
			assert.Equal(t, want, out.ColorAt(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestShowEdges_TruncatesDistance(t *testing.T) {
	// Distance between (0,0,0) and (1,1,1) is sqrt(3) ~ 1.73, truncated to 1.
	p := picture.New(2, 1)
	p.SetColor(0, 0, picture.Black)
	p.SetColor(1, 0, picture.RGB(1, 1, 1))

	assert.Equal(t, picture.White, ShowEdges(p, 1, 1).ColorAt(1, 0))
	assert.Equal(t, picture.Black, ShowEdges(p, 0, 1).ColorAt(1, 0))
}

func TestShowEdges_AboveNeighbor(t *testing.T) {
	p := picture.New(2, 2)
	p.SetColor(1, 1, picture.Black)
	p.SetColor(0, 1, picture.Black)
	out := ShowEdges(p, 10, 1)

	assert.Equal(t, picture.Black, out.ColorAt(0, 1), "left column compares with the pixel above")
	assert.Equal(t, picture.Black, out.ColorAt(1, 1), "above differs even though left matches")
	assert.Equal(t, picture.White, out.ColorAt(1, 0))
}

func TestShowEdges_ParallelMatchesSequential(t *testing.T) {
	p := gridPicture(30, 90)
	assert.True(t, ShowEdges(p, 1, 1).Equal(ShowEdges(p, 1, 6)))
}

func TestChromaKey(t *testing.T) {
	green := picture.RGB(0, 255, 0)
	fg := picture.NewFilled(4, 3, green)
	fg.SetColor(1, 1, picture.Red)
	bg := picture.NewFilled(3, 5, picture.RGB(0, 0, 255))

	out, err := ChromaKey(fg, 0, 0, bg, 30)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Width())
	assert.Equal(t, 3, out.Height())
	assert.Equal(t, picture.RGB(0, 0, 255), out.ColorAt(0, 0))
	assert.Equal(t, picture.Red, out.ColorAt(1, 1))
}

func TestChromaKey_KeyOutOfBounds(t *testing.T) {
	_, err := ChromaKey(picture.New(2, 2), 2, 0, picture.New(2, 2), 10)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestShowDifferences(t *testing.T) {
	a := picture.New(3, 2)
	b := a.Clone()
	b.SetColor(2, 1, picture.RGBA(255, 255, 255, 254))

	out, n, err := ShowDifferences(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, picture.Red, out.ColorAt(2, 1))
	assert.Equal(t, picture.White, out.ColorAt(0, 0))

	_, _, err = ShowDifferences(a, picture.New(2, 3))
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestNegate(t *testing.T) {
	p := picture.NewFilled(2, 2, picture.RGBA(10, 100, 255, 255))
	p.SetColor(1, 1, picture.RGBA(0, 50, 200, 90))
	out := Negate(p)

	assert.Equal(t, picture.RGBA(245, 155, 0, 255), out.ColorAt(0, 0))
	assert.Equal(t, picture.RGBA(255, 205, 55, 90), out.ColorAt(1, 1))
}

func TestGrayscale_KeepsAlpha(t *testing.T) {
	p := picture.NewFilled(2, 1, picture.RGBA(90, 90, 90, 40))
	out := Grayscale(p)
	c := out.ColorAt(0, 0)
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.G, c.B)
	assert.Equal(t, uint8(40), c.A)
}

func TestAddChannel(t *testing.T) {
	p := picture.NewFilled(1, 1, picture.RGBA(100, 150, 250, 9))

	tests := []struct {
		name string
		got  *picture.Picture
		want picture.Color
	}{
		{"lighten clamps", Lighten(p, 10), picture.RGBA(110, 160, 255, 9)},
		{"darken clamps", Darken(p, 120), picture.RGBA(0, 30, 130, 9)},
		{"red only", AddChannel(p, ChannelRed, 200), picture.RGBA(255, 150, 250, 9)},
		{"green only", AddChannel(p, ChannelGreen, -20), picture.RGBA(100, 130, 250, 9)},
		{"blue only", AddChannel(p, ChannelBlue, -300), picture.RGBA(100, 150, 0, 9)},
		{"unknown channel", AddChannel(p, Channel("x"), 5), picture.RGBA(100, 150, 250, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.ColorAt(0, 0))
		})
	}
}

func TestRotateRight(t *testing.T) {
	p := gridPicture(3, 2)
	out := RotateRight(p)
	require.Equal(t, 2, out.Width())
	require.Equal(t, 3, out.Height())

	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			assert.Equal(t, p.ColorAt(y, p.Height()-1-x), out.ColorAt(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestFlip(t *testing.T) {
	p := gridPicture(3, 2)

	tests := []struct {
		axis   Axis
		w, h   int
		source func(x, y int) (int, int)
	}{
		{Horizontal, 3, 2, func(x, y int) (int, int) { return 2 - x, y }},
		{Vertical, 3, 2, func(x, y int) (int, int) { return x, 1 - y }},
		{BackwardDiagonal, 2, 3, func(x, y int) (int, int) { return y, x }},
		{ForwardDiagonal, 2, 3, func(x, y int) (int, int) { return 2 - y, 1 - x }},
	}
	for _, tt := range tests {
		out, err := Flip(p, tt.axis)
		require.NoError(t, err)
		require.Equal(t, tt.w, out.Width())
		require.Equal(t, tt.h, out.Height())
		for y := 0; y < tt.h; y++ {
			for x := 0; x < tt.w; x++ {
				sx, sy := tt.source(x, y)
				assert.Equal(t, p.ColorAt(sx, sy), out.ColorAt(x, y), "axis %d (%d,%d)", tt.axis, x, y)
			}
		}
	}

	_, err := Flip(p, Axis(9))
	assert.ErrorIs(t, err, ErrUnknownAxis)
}

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis("forward-diagonal")
	require.NoError(t, err)
	assert.Equal(t, ForwardDiagonal, a)

	_, err = ParseAxis("sideways")
	assert.ErrorIs(t, err, ErrUnknownAxis)
}
