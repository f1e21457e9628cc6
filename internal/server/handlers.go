package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/picture-tools-mcp/internal/effects"
	"github.com/ironsheep/picture-tools-mcp/internal/fill"
	"github.com/ironsheep/picture-tools-mcp/internal/imaging"
	"github.com/ironsheep/picture-tools-mcp/internal/picture"
	"github.com/ironsheep/picture-tools-mcp/internal/seam"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "picture_load", "picture_carve").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		// The carver has already logged its own diagnostic for this one.
		if !errors.Is(err, seam.ErrTooManySeams) {
			s.log.Warn("tool failed", "tool", params.Name, "err", err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads pictures from cache as needed
//  4. Calls the appropriate seam/fill/effects/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Loading and Sampling
	case "picture_load":
		return s.handlePictureLoad(args)
	case "picture_sample_color":
		return s.handleSampleColor(args)
	case "picture_sample_colors_multi":
		return s.handleSampleColorsMulti(args)

	// Seam Carving
	case "picture_luminosity":
		return s.transform(args, "luminosity", func(p *picture.Picture) (*picture.Picture, error) {
			return seam.LuminosityPicture(p), nil
		})
	case "picture_energy":
		return s.transform(args, "energy", func(p *picture.Picture) (*picture.Picture, error) {
			return seam.EnergyPicture(p, s.cfg.Workers), nil
		})
	case "picture_compute_seam":
		return s.handleComputeSeam(args)
	case "picture_show_seam":
		return s.transform(args, "seam", s.carver.ShowSeam)
	case "picture_carve":
		return s.handleCarve(args)

	// Region Fill and Edges
	case "picture_paint_bucket":
		return s.handlePaintBucket(args)
	case "picture_show_edges":
		return s.handleShowEdges(args)

	// Composition
	case "picture_chroma_key":
		return s.handleChromaKey(args)
	case "picture_show_differences":
		return s.handleShowDifferences(args)

	// Color Adjustments
	case "picture_negate":
		return s.transform(args, "negate", func(p *picture.Picture) (*picture.Picture, error) {
			return effects.Negate(p), nil
		})
	case "picture_grayscale":
		return s.transform(args, "grayscale", func(p *picture.Picture) (*picture.Picture, error) {
			return effects.Grayscale(p), nil
		})
	case "picture_adjust":
		return s.handleAdjust(args)

	// Geometry
	case "picture_rotate_right":
		return s.transform(args, "rotate", func(p *picture.Picture) (*picture.Picture, error) {
			return effects.RotateRight(p), nil
		})
	case "picture_flip":
		return s.handleFlip(args)
	case "picture_crop":
		return s.handleCrop(args)
	case "picture_scale":
		return s.handleScale(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// pictureResult encodes p for the client. When an output directory is
// configured p is also written there and cached under the new path.
// Pictures with no pixels are returned without image data or a file.
func (s *Server) pictureResult(p *picture.Picture, prefix string) (*imaging.PictureResult, error) {
	res, err := imaging.Encode(p)
	if err != nil {
		return nil, err
	}
	if s.cfg.OutputDir == "" || p.Empty() {
		return res, nil
	}

	path, err := imaging.SaveToDir(p, s.cfg.OutputDir, prefix)
	if err != nil {
		return nil, err
	}
	s.cache.Put(path, p)
	res.OutputPath = path
	s.log.Debug("wrote picture", "path", path, "width", p.Width(), "height", p.Height())
	return res, nil
}

type pathArgs struct {
	Path string `json:"path"`
}

// transform handles every tool that maps one picture to another with no
// arguments beyond path.
func (s *Server) transform(args json.RawMessage, prefix string, fn func(*picture.Picture) (*picture.Picture, error)) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := fn(p)
	if err != nil {
		return nil, err
	}
	return s.pictureResult(out, prefix)
}

// thresholdOr returns *v, or def when the argument was omitted.
func thresholdOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// === Loading and Sampling Handlers ===

func (s *Server) handlePictureLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadPictureInfo(s.cache, a.Path)
}

type sampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(p, a.X, a.Y, seam.Luminosity)
}

type sampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a sampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, pt := range a.Points {
		points[i] = imaging.LabeledPoint{X: pt.X, Y: pt.Y, Label: pt.Label}
	}
	return imaging.SampleColorsMulti(p, points, seam.Luminosity)
}

// === Seam Carving Handlers ===

// SeamResult is the result of picture_compute_seam.
type SeamResult struct {
	Seam   seam.Seam `json:"seam"`
	Cost   int       `json:"cost"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
}

func (s *Server) handleComputeSeam(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	sm, cost, err := s.carver.ComputeSeam(p)
	if err != nil {
		return nil, err
	}
	return &SeamResult{Seam: sm, Cost: cost, Width: p.Width(), Height: p.Height()}, nil
}

type carveArgs struct {
	Path  string `json:"path"`
	Count *int   `json:"count"`
}

func (s *Server) handleCarve(args json.RawMessage) (interface{}, error) {
	var a carveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	n := thresholdOr(a.Count, 1)
	p, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := s.carver.CarveMany(p, n)
	if err != nil {
		return nil, err
	}
	return s.pictureResult(out, "carve")
}

// === Region Fill and Edge Handlers ===

type paintBucketArgs struct {
	Path      string   `json:"path"`
	X         int      `json:"x"`
	Y         int      `json:"y"`
	Threshold *int     `json:"threshold"`
	Color     string   `json:"color"`
	Order     []string `json:"order"`
}

// PaintBucketResult is the recolored picture plus the size of the region.
type PaintBucketResult struct {
	*imaging.PictureResult
	FilledPixels int `json:"filled_pixels"`
}

func (s *Server) handlePaintBucket(args json.RawMessage) (interface{}, error) {
	var a paintBucketArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := picture.ParseHex(a.Color)
	if err != nil {
		return nil, err
	}
	order := make([]fill.Direction, len(a.Order))
	for i, name := range a.Order {
		if order[i], err = fill.ParseDirection(name); err != nil {
			return nil, err
		}
	}
	if err := fill.ValidateOrder(order); err != nil {
		return nil, err
	}

	p, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	region, err := fill.Region(p, a.X, a.Y, thresholdOr(a.Threshold, s.cfg.Defaults.FillThreshold), order...)
	if err != nil {
		return nil, err
	}
	res, err := s.pictureResult(fill.Recolor(p, region, c), "fill")
	if err != nil {
		return nil, err
	}
	return &PaintBucketResult{PictureResult: res, FilledPixels: len(region)}, nil
}

type showEdgesArgs struct {
	Path      string `json:"path"`
	Threshold *int   `json:"threshold"`
}

func (s *Server) handleShowEdges(args json.RawMessage) (interface{}, error) {
	var a showEdgesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	threshold := thresholdOr(a.Threshold, s.cfg.Defaults.EdgeThreshold)
	return s.pictureResult(effects.ShowEdges(p, threshold, s.cfg.Workers), "edges")
}

// === Composition Handlers ===

type chromaKeyArgs struct {
	Path           string `json:"path"`
	X              int    `json:"x"`
	Y              int    `json:"y"`
	BackgroundPath string `json:"background_path"`
	Threshold      *int   `json:"threshold"`
}

func (s *Server) handleChromaKey(args json.RawMessage) (interface{}, error) {
	var a chromaKeyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	fg, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	bg, err := s.cache.Load(a.BackgroundPath)
	if err != nil {
		return nil, err
	}
	out, err := effects.ChromaKey(fg, a.X, a.Y, bg, thresholdOr(a.Threshold, s.cfg.Defaults.ChromaThreshold))
	if err != nil {
		return nil, err
	}
	return s.pictureResult(out, "chroma")
}

type showDifferencesArgs struct {
	Path      string `json:"path"`
	OtherPath string `json:"other_path"`
}

// DifferencesResult is the marked picture plus the number of differing pixels.
type DifferencesResult struct {
	*imaging.PictureResult
	DifferingPixels int `json:"differing_pixels"`
}

func (s *Server) handleShowDifferences(args json.RawMessage) (interface{}, error) {
	var a showDifferencesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	other, err := s.cache.Load(a.OtherPath)
	if err != nil {
		return nil, err
	}
	out, n, err := effects.ShowDifferences(p, other)
	if err != nil {
		return nil, err
	}
	res, err := s.pictureResult(out, "diff")
	if err != nil {
		return nil, err
	}
	return &DifferencesResult{PictureResult: res, DifferingPixels: n}, nil
}

// === Color Adjustment Handlers ===

type adjustArgs struct {
	Path      string `json:"path"`
	Operation string `json:"operation"`
	Channel   string `json:"channel"`
	Amount    int    `json:"amount"`
}

func (s *Server) handleAdjust(args json.RawMessage) (interface{}, error) {
	var a adjustArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var fn func(*picture.Picture) *picture.Picture
	switch a.Operation {
	case "lighten":
		fn = func(p *picture.Picture) *picture.Picture { return effects.Lighten(p, a.Amount) }
	case "darken":
		fn = func(p *picture.Picture) *picture.Picture { return effects.Darken(p, a.Amount) }
	case "add":
		ch := effects.Channel(a.Channel)
		switch ch {
		case "":
			ch = effects.ChannelAll
		case effects.ChannelAll, effects.ChannelRed, effects.ChannelGreen, effects.ChannelBlue:
		default:
			return nil, fmt.Errorf("unknown channel: %s", a.Channel)
		}
		fn = func(p *picture.Picture) *picture.Picture { return effects.AddChannel(p, ch, a.Amount) }
	default:
		return nil, fmt.Errorf("unknown operation: %s", a.Operation)
	}

	p, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return s.pictureResult(fn(p), a.Operation)
}

// === Geometry Handlers ===

type flipArgs struct {
	Path string `json:"path"`
	Axis string `json:"axis"`
}

func (s *Server) handleFlip(args json.RawMessage) (interface{}, error) {
	var a flipArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	axis, err := effects.ParseAxis(a.Axis)
	if err != nil {
		return nil, err
	}
	p, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := effects.Flip(p, axis)
	if err != nil {
		return nil, err
	}
	return s.pictureResult(out, "flip")
}

type cropArgs struct {
	Path   string `json:"path"`
	X1     int    `json:"x1"`
	Y1     int    `json:"y1"`
	X2     int    `json:"x2"`
	Y2     int    `json:"y2"`
	Region string `json:"region"`
}

func (s *Server) handleCrop(args json.RawMessage) (interface{}, error) {
	var a cropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var out *picture.Picture
	if a.Region != "" {
		out, err = imaging.CropQuadrant(p, a.Region)
	} else {
		out, err = imaging.Crop(p, a.X1, a.Y1, a.X2, a.Y2)
	}
	if err != nil {
		return nil, err
	}
	return s.pictureResult(out, "crop")
}

type scaleArgs struct {
	Path   string  `json:"path"`
	Factor float64 `json:"factor"`
}

func (s *Server) handleScale(args json.RawMessage) (interface{}, error) {
	var a scaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := imaging.Scale(p, a.Factor)
	if err != nil {
		return nil, err
	}
	return s.pictureResult(out, "scale")
}
