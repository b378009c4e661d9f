package server

import (
	"encoding/json"
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/chart-gridlines/internal/gridlines"
	"github.com/ironsheep/chart-gridlines/internal/imaging"
)

const (
	axisHorizontal = "horizontal"
	axisVertical   = "vertical"
	axisBoth       = "both"
	axisCombined   = "combined"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "gridlines_render").
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	switch name {
	case "gridlines_coordinates":
		return s.handleCoordinates(args)
	case "gridlines_render":
		return s.handleRender(args)
	case "gridlines_write":
		return s.handleWrite(args)
	case "gridlines_preview":
		return s.handlePreview(args)
	case "gridlines_overlay":
		return s.handleOverlay(args)
	case "gridlines_stroke_color":
		return imaging.DescribeColor(gridlines.StrokeColor, gridlines.Opacity)
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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Coordinate Handlers ===

type coordinatesArgs struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Lines int     `json:"lines"`
}

// CoordinatesResult is the output of gridlines_coordinates.
type CoordinatesResult struct {
	Coordinates []float64 `json:"coordinates"`
	Delta       float64   `json:"delta"`
	Lines       int       `json:"lines"`
}

func (s *Server) handleCoordinates(args json.RawMessage) (interface{}, error) {
	var a coordinatesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	r := gridlines.Range(a.Start, a.End)
	coords, err := gridlines.Coordinates(r, a.Lines)
	if err != nil {
		return nil, err
	}
	delta, err := gridlines.Delta(r, a.Lines)
	if err != nil {
		return nil, err
	}
	return &CoordinatesResult{Coordinates: coords, Delta: delta, Lines: a.Lines}, nil
}

// === Rendering Handlers ===

type chartArgs struct {
	XRange [2]float64 `json:"x_range"`
	YRange [2]float64 `json:"y_range"`
	HLines int        `json:"h_lines"`
	VLines int        `json:"v_lines"`
	Axis   string     `json:"axis"`
}

func (a *chartArgs) chart() *gridlines.Chart {
	return gridlines.NewChart().
		XRange(a.XRange[0], a.XRange[1]).
		YRange(a.YRange[0], a.YRange[1]).
		HLines(a.HLines).
		VLines(a.VLines)
}

func (a *chartArgs) generator() (*gridlines.Generator, error) {
	var g *gridlines.Generator
	switch a.Axis {
	case axisHorizontal:
		g = gridlines.NewHorizontal().Lines(a.HLines)
	case axisVertical:
		g = gridlines.NewVertical().Lines(a.VLines)
	default:
		return nil, fmt.Errorf("axis %q is not a single axis", a.Axis)
	}
	return g.XRange(a.XRange[0], a.XRange[1]).YRange(a.YRange[0], a.YRange[1]), nil
}

// render returns the SVG text and a document holding every segment drawn.
func (a *chartArgs) render() (string, *gridlines.Document, error) {
	if a.Axis == "" {
		a.Axis = axisBoth
	}
	switch a.Axis {
	case axisHorizontal, axisVertical:
		g, err := a.generator()
		if err != nil {
			return "", nil, err
		}
		doc, err := g.Generate()
		if err != nil {
			return "", nil, err
		}
		return doc.String(), doc, nil
	case axisBoth:
		c := a.chart()
		svg, err := c.Render()
		if err != nil {
			return "", nil, err
		}
		doc, err := c.Document()
		if err != nil {
			return "", nil, err
		}
		return svg, doc, nil
	case axisCombined:
		doc, err := a.chart().Document()
		if err != nil {
			return "", nil, err
		}
		return doc.String(), doc, nil
	default:
		return "", nil, fmt.Errorf("unknown axis: %s", a.Axis)
	}
}

// RenderResult is the output of gridlines_render.
type RenderResult struct {
	Axis         string `json:"axis"`
	SVG          string `json:"svg"`
	SegmentCount int    `json:"segment_count"`
}

func (s *Server) handleRender(args json.RawMessage) (interface{}, error) {
	var a chartArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	svg, doc, err := a.render()
	if err != nil {
		return nil, err
	}
	return &RenderResult{Axis: a.Axis, SVG: svg, SegmentCount: doc.Len()}, nil
}

type writeArgs struct {
	chartArgs
	Path string `json:"path"`
}

// WriteResult lists the files written by gridlines_write.
type WriteResult struct {
	Paths        []string `json:"paths"`
	SegmentCount int      `json:"segment_count"`
}

func (s *Server) handleWrite(args json.RawMessage) (interface{}, error) {
	var a writeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	// stdout carries the protocol, so a destination is mandatory
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.Axis == "" {
		a.Axis = axisBoth
	}

	if a.Axis == axisBoth {
		h, v, err := a.chart().Generate()
		if err != nil {
			return nil, err
		}
		result := &WriteResult{SegmentCount: h.Len() + v.Len()}
		for _, d := range []struct {
			o   gridlines.Orientation
			doc *gridlines.Document
		}{{gridlines.Horizontal, h}, {gridlines.Vertical, v}} {
			path := gridlines.AxisPath(a.Path, d.o)
			if err := (gridlines.FileSink{Path: path}).Write(d.doc); err != nil {
				return nil, err
			}
			result.Paths = append(result.Paths, path)
		}
		return result, nil
	}

	_, doc, err := a.render()
	if err != nil {
		return nil, err
	}
	if err := (gridlines.FileSink{Path: a.Path}).Write(doc); err != nil {
		return nil, err
	}
	return &WriteResult{Paths: []string{a.Path}, SegmentCount: doc.Len()}, nil
}

// === Preview Handlers ===

type previewArgs struct {
	chartArgs
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background string `json:"background"`
	ImagePath  string `json:"image_path"`
	OutputPath string `json:"output_path"`

	// Reload drops a cached copy of ImagePath so edits on disk are picked up.
	Reload bool `json:"reload"`
}

// PreviewToolResult is the output of gridlines_preview and gridlines_overlay.
type PreviewToolResult struct {
	*imaging.PreviewResult
	SavedTo string `json:"saved_to,omitempty"`

	// Source describes the image the gridlines were drawn over, if any.
	Source *imaging.DimensionsResult `json:"source,omitempty"`
}

func (s *Server) handlePreview(args json.RawMessage) (interface{}, error) {
	var a previewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.preview(&a)
}

func (s *Server) handleOverlay(args json.RawMessage) (interface{}, error) {
	var a previewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required")
	}
	return s.preview(&a)
}

// preview rasterizes the requested gridlines over a blank canvas, or over
// a.ImagePath when set.
func (s *Server) preview(a *previewArgs) (*PreviewToolResult, error) {
	_, doc, err := a.render()
	if err != nil {
		return nil, err
	}

	var img image.Image
	var source *imaging.DimensionsResult
	if a.ImagePath != "" {
		if a.Reload {
			s.cache.Evict(a.ImagePath)
		}
		if source, err = imaging.GetDimensions(s.cache, a.ImagePath); err != nil {
			return nil, err
		}
		bg, err := s.cache.Load(a.ImagePath)
		if err != nil {
			return nil, err
		}
		if img, err = imaging.Overlay(bg, doc); err != nil {
			return nil, err
		}
		if s.debug {
			log.Printf("overlay %s (%d cached images)", a.ImagePath, s.cache.Len())
		}
	} else {
		bg, err := imaging.ParseBackground(a.Background)
		if err != nil {
			return nil, err
		}
		if img, err = imaging.Rasterize(doc, a.Width, a.Height, bg); err != nil {
			return nil, err
		}
	}

	result, err := imaging.EncodePreview(img, doc.Len())
	if err != nil {
		return nil, err
	}
	out := &PreviewToolResult{PreviewResult: result, Source: source}
	if a.OutputPath != "" {
		if err := imaging.SavePreview(img, a.OutputPath); err != nil {
			return nil, err
		}
		out.SavedTo = a.OutputPath
	}
	return out, nil
}
