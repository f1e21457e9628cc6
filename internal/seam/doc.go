// Package seam implements content-aware resizing by seam carving.
//
// Carving a picture narrower by one column runs in three phases:
//
//  1. Energy table: every pixel gets an edge-strength score derived from the
//     luminosity of its right (or left) and lower (or upper) neighbors.
//  2. Cumulative cost table: row by row, each cell adds the cheapest of its
//     up to three predecessors in the row above. The chosen predecessor is
//     recorded in a parent table, preferring top, then top-left, then
//     top-right on ties.
//  3. Backtrace: the cheapest cell of the bottom row (leftmost on ties) is
//     followed up through the parent table to produce the seam, one column
//     index per row.
//
// Removing the seam copies every row around its seam column into a new
// picture one column narrower. CarveMany repeats compute-and-remove,
// recomputing energy on each narrower picture.
//
// Phase 1 is computed in parallel row bands. Phase 2 depends on the
// completed previous row and always runs sequentially.
package seam
