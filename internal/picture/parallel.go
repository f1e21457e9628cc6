package picture

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minRowsPerBand keeps small pictures on a single goroutine.
const minRowsPerBand = 16

// ParallelRows calls fn over contiguous row bands [y0, y1) covering
// [0, height). Bands run concurrently on up to workers goroutines; workers
// <= 0 means GOMAXPROCS. It returns once every band has finished.
//
// fn must only write state owned by its band.
func ParallelRows(height, workers int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	bands := min(workers, (height+minRowsPerBand-1)/minRowsPerBand)
	if bands <= 1 {
		fn(0, height)
		return
	}

	size := (height + bands - 1) / bands
	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := 0; y0 < height; y0 += size {
		y0 := y0
		y1 := min(y0+size, height)
		g.Go(func() error {
			fn(y0, y1)
			return nil
		})
	}
	_ = g.Wait()
}
