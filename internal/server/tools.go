package server

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// extractionProperties is the shared option schema for the symbols_* tools.
// Defaults mirror the segmentation pipeline's documented defaults.
func extractionProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the captured frame (PNG, JPEG, or GIF)",
		},
		"max_symbols": map[string]interface{}{
			"type":        "integer",
			"description": "Maximum number of symbols to return (default 12)",
			"default":     12,
		},
		"padding": map[string]interface{}{
			"type":        "integer",
			"description": "Pixels added around each box, clipped to the frame (default 4)",
			"default":     4,
		},
		"min_area": map[string]interface{}{
			"type":        "integer",
			"description": "Noise floor in foreground pixels (default max(80, totalPixels/5000))",
		},
		"min_dimension": map[string]interface{}{
			"type":        "integer",
			"description": "Minimum unpadded box width and height (default 6)",
			"default":     6,
		},
		"scale": map[string]interface{}{
			"type":        "number",
			"description": "Crop upscale factor for downstream recognizers (default 1.0)",
			"default":     1.0,
		},
		"smooth": map[string]interface{}{
			"type":        "number",
			"description": "Gaussian pre-blur radius for noisy captures (default 0 = off)",
			"default":     0,
		},
	}
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		// Frame Information
		{
			Name:        "image_load",
			Description: "Load a captured frame and return its dimensions, format, and alpha info.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the frame file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of a captured frame.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the frame file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Region Operations
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from a frame and return it as base64-encoded PNG. Use this to zoom into areas that need detailed examination.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the frame file",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},

		// Symbol Extraction
		{
			Name:        "symbols_extract",
			Description: "Segment a frame into discrete symbols. Returns bounding boxes in reading order, index-aligned with base64 PNG crops of each symbol.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": extractionProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "symbols_annotate",
			Description: "Render the frame with each extracted symbol outlined in a distinct color and numbered in reading order. Useful for verifying segmentation before recognition.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": extractionProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "symbols_recognize",
			Description: "Extract symbols from a frame and run OCR on each one independently. One symbol's failure never affects the others; results are slot-addressed by index.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mergeProperties(extractionProperties(), map[string]interface{}{
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code (default 'eng')",
						"default":     "eng",
					},
					"whitelist": map[string]interface{}{
						"type":        "string",
						"description": "Restrict recognition to these characters (e.g. '0123456789+-=xy')",
					},
					"concurrency": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum parallel recognitions (default 4)",
						"default":     4,
					},
				}),
				"required": []string{"path"},
			},
		},
	}
}

// mergeProperties combines two schema property maps; extras win on conflict.
func mergeProperties(base, extras map[string]interface{}) map[string]interface{} {
	for k, v := range extras {
		base[k] = v
	}
	return base
}

// handleToolsList returns the list of available tools.
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
