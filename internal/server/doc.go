// Package server implements the MCP (Model Context Protocol) server for the
// picture tools.
//
// This package provides a JSON-RPC 2.0 server that exposes seam carving,
// region fill, edge detection and the supporting color and geometry
// operations through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Diagnostics go to the configured logger, never to stdout.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Loading and Sampling:
//   - picture_load: Load a file and get metadata
//   - picture_sample_color: Get the color at a pixel
//   - picture_sample_colors_multi: Sample multiple points
//
// Seam Carving:
//   - picture_luminosity: Luminosity as a gray picture
//   - picture_energy: Energy as a gray picture
//   - picture_compute_seam: Minimum-energy vertical seam and its cost
//   - picture_show_seam: Seam painted red
//   - picture_carve: Remove N seams
//
// Region Fill and Edges:
//   - picture_paint_bucket: Flood fill from a seed pixel
//   - picture_show_edges: Black-on-white edge map
//
// Composition:
//   - picture_chroma_key: Replace a keyed color with a background
//   - picture_show_differences: Mark differing pixels red
//
// Color Adjustments:
//   - picture_negate, picture_grayscale, picture_adjust
//
// Geometry:
//   - picture_rotate_right, picture_flip, picture_crop, picture_scale
//
// # Picture Caching
//
// Decoded pictures are cached by path for the lifetime of the process.
// When an output directory is configured, results are written there under
// unique names and cached, so one tool's output can feed the next.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.WithConfig(cfg), server.WithLogger(logger))
//	if err := srv.Run(ctx); err != nil {
//	    logger.Fatal("server error", "err", err)
//	}
package server
