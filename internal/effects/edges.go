package effects

import "github.com/ironsheep/picture-tools-mcp/internal/picture"

// ShowEdges binarizes p into opaque black edge pixels and opaque white
// non-edge pixels.
//
// A pixel is an edge when the RGB distance, truncated to an integer, to its
// left neighbor or to the neighbor above is strictly greater than threshold.
// Pixels in the top row or left column compare against their one existing
// neighbor; (0,0) has none and is always white.
//
// Rows are processed on up to workers goroutines (0 means GOMAXPROCS).
func ShowEdges(p *picture.Picture, threshold, workers int) *picture.Picture {
	out := picture.New(p.Width(), p.Height())
	picture.ParallelRows(p.Height(), workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < p.Width(); x++ {
				c := picture.White
				if isEdge(p, x, y, threshold) {
					c = picture.Black
				}
				out.SetColor(x, y, c)
			}
		}
	})
	return out
}

func isEdge(p *picture.Picture, x, y, threshold int) bool {
	cur := p.ColorAt(x, y)
	if x > 0 && int(picture.Distance(cur, p.ColorAt(x-1, y))) > threshold {
		return true
	}
	if y > 0 && int(picture.Distance(cur, p.ColorAt(x, y-1))) > threshold {
		return true
	}
	return false
}
