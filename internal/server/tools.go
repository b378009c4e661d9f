package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// rangeSchema describes a [start, end] pair.
func rangeSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": description,
		"items":       map[string]interface{}{"type": "number"},
		"minItems":    2,
		"maxItems":    2,
	}
}

// chartProperties are shared by every tool that builds gridlines.
func chartProperties() map[string]interface{} {
	return map[string]interface{}{
		"x_range": rangeSchema("X axis range [start, end]. Vertical lines are distributed along it; horizontal lines span it."),
		"y_range": rangeSchema("Y axis range [start, end]. Horizontal lines are distributed along it; vertical lines span it."),
		"h_lines": map[string]interface{}{
			"type":        "integer",
			"description": "Number of horizontal gridlines (at least 3)",
		},
		"v_lines": map[string]interface{}{
			"type":        "integer",
			"description": "Number of vertical gridlines (at least 3)",
		},
		"axis": map[string]interface{}{
			"type":        "string",
			"description": "Which gridlines to produce: horizontal, vertical, both (two documents) or combined (one document). Default both",
			"enum":        []string{axisHorizontal, axisVertical, axisBoth, axisCombined},
			"default":     axisBoth,
		},
	}
}

func withProperties(base map[string]interface{}, extra map[string]interface{}) map[string]interface{} {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "gridlines_coordinates",
			Description: "Compute evenly spaced gridline coordinates along one axis. The first coordinate is start, the last is end, and interior ones are spaced by |end-start|/(lines-1).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"start": map[string]interface{}{
						"type":        "number",
						"description": "First coordinate",
					},
					"end": map[string]interface{}{
						"type":        "number",
						"description": "Last coordinate",
					},
					"lines": map[string]interface{}{
						"type":        "integer",
						"description": "Number of gridlines (at least 3)",
					},
				},
				"required": []string{"start", "end", "lines"},
			},
		},
		{
			Name:        "gridlines_render",
			Description: "Render chart gridlines as SVG path elements and return the document text.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": chartProperties(),
				"required":   []string{"x_range", "y_range"},
			},
		},
		{
			Name:        "gridlines_write",
			Description: "Render chart gridlines and write the SVG to disk. With axis=both, the horizontal and vertical documents go to <name>.horizontal.svg and <name>.vertical.svg.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(chartProperties(), map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute destination path of the SVG file",
					},
				}),
				"required": []string{"x_range", "y_range", "path"},
			},
		},
		{
			Name:        "gridlines_preview",
			Description: "Rasterize chart gridlines to a PNG preview, optionally over an existing image, and return it as base64.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(chartProperties(), map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Canvas width in pixels. Default: fit the gridlines",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Canvas height in pixels. Default: fit the gridlines",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Canvas color as #RRGGBB or #RRGGBBAA. Default #FFFFFF",
					},
					"image_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional absolute path of an image to draw the gridlines over; width, height and background are then ignored",
					},
					"reload": map[string]interface{}{
						"type":        "boolean",
						"description": "Re-read image_path from disk instead of using the cached copy",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also save the preview to (format from extension)",
					},
				}),
				"required": []string{"x_range", "y_range"},
			},
		},
		{
			Name:        "gridlines_overlay",
			Description: "Draw chart gridlines over an existing image at its native size and return the PNG as base64. Chart coordinates map 1:1 to image pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(chartProperties(), map[string]interface{}{
					"image_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the image to draw over",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also save the result to (format from extension)",
					},
					"reload": map[string]interface{}{
						"type":        "boolean",
						"description": "Re-read the image from disk instead of using the cached copy",
					},
				}),
				"required": []string{"x_range", "y_range", "image_path"},
			},
		},
		{
			Name:        "gridlines_stroke_color",
			Description: "Describe the fixed gridline stroke color in hex, RGB, RGBA and HSL.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
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
