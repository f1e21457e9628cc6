package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// schema builds an object input schema. path is always a property.
func schema(props map[string]interface{}, required ...string) map[string]interface{} {
	all := map[string]interface{}{
		"path": prop("string", "Absolute path to the image file"),
	}
	for k, v := range props {
		all[k] = v
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": all,
		"required":   append([]string{"path"}, required...),
	}
}

func prop(typ, description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        typ,
		"description": description,
	}
}

func enumProp(description string, values ...string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
		"enum":        values,
	}
}

// pictureOutputNote is appended to every tool that produces a picture.
const pictureOutputNote = " Returns the result as base64-encoded PNG; when an output directory is configured the result is also written there and can be passed as path to later calls."

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Loading and Sampling
		{
			Name:        "picture_load",
			Description: "Load an image file and return its dimensions, format, color depth and size.",
			InputSchema: schema(nil),
		},
		{
			Name:        "picture_sample_color",
			Description: "Get the color of a single pixel as hex, RGB, RGBA, HSL and luminosity.",
			InputSchema: schema(map[string]interface{}{
				"x": prop("integer", "X coordinate (0-based)"),
				"y": prop("integer", "Y coordinate (0-based)"),
			}, "x", "y"),
		},
		{
			Name:        "picture_sample_colors_multi",
			Description: "Sample the colors of several labeled pixels in one call.",
			InputSchema: schema(map[string]interface{}{
				"points": map[string]interface{}{
					"type":        "array",
					"description": "Points to sample",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x":     prop("integer", "X coordinate"),
							"y":     prop("integer", "Y coordinate"),
							"label": prop("string", "Optional label for this point"),
						},
						"required": []string{"x", "y"},
					},
				},
			}, "points"),
		},

		// Seam Carving
		{
			Name:        "picture_luminosity",
			Description: "Render the luminosity of every pixel as a gray picture (floor(0.21R + 0.72G + 0.07B))." + pictureOutputNote,
			InputSchema: schema(nil),
		},
		{
			Name:        "picture_energy",
			Description: "Render the seam-carving energy of every pixel as a gray picture, saturated at 255." + pictureOutputNote,
			InputSchema: schema(nil),
		},
		{
			Name:        "picture_compute_seam",
			Description: "Compute the minimum-energy vertical seam. Returns one x coordinate per row, top to bottom, and the seam's total cost.",
			InputSchema: schema(nil),
		},
		{
			Name:        "picture_show_seam",
			Description: "Paint the minimum-energy vertical seam red." + pictureOutputNote,
			InputSchema: schema(nil),
		},
		{
			Name:        "picture_carve",
			Description: "Narrow the picture by removing count minimum-energy vertical seams, one at a time." + pictureOutputNote,
			InputSchema: schema(map[string]interface{}{
				"count": map[string]interface{}{
					"type":        "integer",
					"description": "Number of seams to remove. Must not exceed the picture width. Default 1",
					"default":     1,
				},
			}),
		},

		// Region Fill and Edges
		{
			Name:        "picture_paint_bucket",
			Description: "Flood-fill the 4-connected region whose colors are within threshold of the seed pixel's color." + pictureOutputNote + " Also reports the number of filled pixels.",
			InputSchema: schema(map[string]interface{}{
				"x":         prop("integer", "Seed X coordinate"),
				"y":         prop("integer", "Seed Y coordinate"),
				"threshold": prop("integer", "Colors at RGB distance strictly below this join the region. Defaults to the configured fill threshold"),
				"color":     prop("string", "Replacement color as hex (#RGB, #RRGGBB or #RRGGBBAA)"),
				"order": map[string]interface{}{
					"type":        "array",
					"description": "Neighbor expansion order naming each direction once. Default [right, down, left, up]",
					"items":       enumProp("Direction", "right", "down", "left", "up"),
				},
			}, "x", "y", "color"),
		},
		{
			Name:        "picture_show_edges",
			Description: "Render edges in black on white: a pixel is an edge when its distance to the left or upper neighbor exceeds threshold." + pictureOutputNote,
			InputSchema: schema(map[string]interface{}{
				"threshold": prop("integer", "Edge threshold. Defaults to the configured edge threshold"),
			}),
		},

		// Composition
		{
			Name:        "picture_chroma_key",
			Description: "Replace every pixel close to the key pixel's color with the corresponding pixel of a background picture." + pictureOutputNote,
			InputSchema: schema(map[string]interface{}{
				"x":               prop("integer", "Key pixel X coordinate"),
				"y":               prop("integer", "Key pixel Y coordinate"),
				"background_path": prop("string", "Absolute path to the background image"),
				"threshold":       prop("integer", "Colors at RGB distance strictly below this are replaced. Defaults to the configured chroma threshold"),
			}, "x", "y", "background_path"),
		},
		{
			Name:        "picture_show_differences",
			Description: "Mark in red every pixel where two same-sized pictures differ." + pictureOutputNote + " Also reports the number of differing pixels.",
			InputSchema: schema(map[string]interface{}{
				"other_path": prop("string", "Absolute path to the picture to compare against"),
			}, "other_path"),
		},

		// Color Adjustments
		{
			Name:        "picture_negate",
			Description: "Invert the red, green and blue channels." + pictureOutputNote,
			InputSchema: schema(nil),
		},
		{
			Name:        "picture_grayscale",
			Description: "Convert to grayscale, keeping alpha." + pictureOutputNote,
			InputSchema: schema(nil),
		},
		{
			Name:        "picture_adjust",
			Description: "Lighten, darken or shift a single color channel, clamping to 0-255." + pictureOutputNote,
			InputSchema: schema(map[string]interface{}{
				"operation": enumProp("Adjustment to apply", "lighten", "darken", "add"),
				"channel":   enumProp("Channel for the add operation. Default all", "all", "r", "g", "b"),
				"amount":    prop("integer", "Amount to add or subtract"),
			}, "operation", "amount"),
		},

		// Geometry
		{
			Name:        "picture_rotate_right",
			Description: "Rotate 90 degrees clockwise." + pictureOutputNote,
			InputSchema: schema(nil),
		},
		{
			Name:        "picture_flip",
			Description: "Mirror across an axis. Diagonal flips swap width and height." + pictureOutputNote,
			InputSchema: schema(map[string]interface{}{
				"axis": enumProp("Axis to flip across", "horizontal", "vertical", "forward-diagonal", "backward-diagonal"),
			}, "axis"),
		},
		{
			Name:        "picture_crop",
			Description: "Crop a rectangle (x1,y1)-(x2,y2) or a named region." + pictureOutputNote,
			InputSchema: schema(map[string]interface{}{
				"x1": prop("integer", "Left edge X coordinate (0-based)"),
				"y1": prop("integer", "Top edge Y coordinate (0-based)"),
				"x2": prop("integer", "Right edge X coordinate (exclusive)"),
				"y2": prop("integer", "Bottom edge Y coordinate (exclusive)"),
				"region": enumProp("Named region; overrides the coordinates when set",
					"top-left", "top-right", "bottom-left", "bottom-right",
					"top-half", "bottom-half", "left-half", "right-half", "center"),
			}),
		},
		{
			Name:        "picture_scale",
			Description: "Resize by a factor (e.g., 2.0 doubles both dimensions)." + pictureOutputNote,
			InputSchema: schema(map[string]interface{}{
				"factor": prop("number", "Scale factor, greater than 0"),
			}, "factor"),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
