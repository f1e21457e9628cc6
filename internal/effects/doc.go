// Package effects provides whole-picture transformations built on the
// picture package: edge binarization, chroma keying, difference marking,
// and the simple per-pixel and geometric operations (negate, brightness,
// channel shifts, grayscale, rotation, flipping).
//
// Every function reads its inputs without modifying them and returns a new
// picture.
package effects
