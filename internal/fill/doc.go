// Package fill implements connected-region recoloring ("paint bucket").
//
// A region grows from a seed pixel through 4-connected neighbors. A pixel
// joins the region when the RGB distance between its color and the seed's
// original color is strictly less than the threshold. Distances are always
// measured against the seed, never against the previous step.
//
// Traversal uses an explicit stack and a visited bitmap, so region size is
// bounded by memory rather than goroutine stack depth, and a replacement
// color that already occurs inside the region does not stop the fill early.
package fill
