// Package picture provides the pixel buffer that every transformation in
// this module reads from and writes to.
//
// A Picture is a fixed-size grid of Colors stored row-major in a single
// slice. Width and height are set at construction and never change; every
// operation that derives a new picture allocates a fresh buffer, so a
// Picture never shares storage with another one.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost column)
//   - Y: vertical position (0 = topmost row)
//
// Per-pixel accessors do not bounds-check beyond what slice indexing does.
// Callers validate coordinates at their public entry points.
//
// # Color Model
//
// Colors carry four 8-bit channels (red, green, blue, alpha) in
// non-premultiplied form. Constructors clamp out-of-range channel values to
// [0,255] rather than wrapping them.
//
// Picture implements image.Image, so it can be handed directly to encoders
// and to the third-party filters used elsewhere in the module.
package picture
