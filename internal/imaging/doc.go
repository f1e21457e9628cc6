// Package imaging provides file-level picture operations for the MCP server.
//
// This package sits between the wire layer and the pure picture algorithms:
// it decodes files into pictures, caches them, samples colors, crops and
// scales, and encodes results back to PNG or to disk. All operations use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Coordinates are inclusive for single points
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Supported Formats
//
// Decoding supports PNG, JPEG and GIF from the standard library plus BMP,
// TIFF and WEBP from golang.org/x/image. Save writes every format except
// WEBP, for which no encoder exists.
//
// # Thread Safety
//
// The PictureCache type is safe for concurrent use. Cached pictures are
// shared and must not be mutated; every operation here returns a new picture.
//
// # Color Representation
//
// Colors are returned in multiple formats for flexibility:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - RGBA: 8-bit components with alpha (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//   - Luminosity: the integer brightness used by the seam carver
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside picture bounds
//   - Invalid region specifications (x1 >= x2 or y1 >= y2)
//   - Non-positive scale factors
//   - File I/O errors during loading or saving
package imaging
