package server

import (
	"context"
	"encoding/json"
	"fmt"
	"image"

	"github.com/sketchlens/symbol-mcp/internal/imaging"
	"github.com/sketchlens/symbol-mcp/internal/recognition"
	"github.com/sketchlens/symbol-mcp/internal/segment"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "symbols_extract").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool. The response wraps the tool result in MCP's content format; tool
// execution errors return a JSON-RPC error response with code -32000.
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
	switch name {
	// Frame Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Region Operations
	case "image_crop":
		return s.handleImageCrop(args)

	// Symbol Extraction
	case "symbols_extract":
		return s.handleSymbolsExtract(args)
	case "symbols_annotate":
		return s.handleSymbolsAnnotate(args)
	case "symbols_recognize":
		return s.handleSymbolsRecognize(args)

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

// === Frame Information Handlers ===

type frameArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a frameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadFrameInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a frameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Region Operation Handlers ===

type imageCropArgs struct {
	Path  string  `json:"path"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
}

// === Symbol Extraction Handlers ===

// symbolsExtractArgs carries the shared extraction options. Padding is a
// pointer so an explicit 0 (meaningful) is distinguishable from omitted
// (default 4); the other options treat zero as "use the default".
type symbolsExtractArgs struct {
	Path         string  `json:"path"`
	MaxSymbols   int     `json:"max_symbols"`
	Padding      *int    `json:"padding"`
	MinArea      int     `json:"min_area"`
	MinDimension int     `json:"min_dimension"`
	Scale        float64 `json:"scale"`
	Smooth       float64 `json:"smooth"`
}

// options resolves the argument set against the pipeline defaults for a
// frame of the given dimensions.
func (a symbolsExtractArgs) options(width, height int) segment.Options {
	opts := segment.DefaultOptions(width, height)
	if a.MaxSymbols > 0 {
		opts.MaxSymbols = a.MaxSymbols
	}
	if a.Padding != nil {
		opts.Padding = *a.Padding
	}
	if a.MinArea > 0 {
		opts.MinArea = a.MinArea
	}
	if a.MinDimension > 0 {
		opts.MinDimension = a.MinDimension
	}
	if a.Scale > 0 {
		opts.Scale = a.Scale
	}
	if a.Smooth > 0 {
		opts.Smooth = a.Smooth
	}
	return opts
}

// extractFromArgs loads the frame and runs the pipeline with resolved
// options; shared by the three symbols_* tools.
func (s *Server) extractFromArgs(a symbolsExtractArgs) (*segment.Result, image.Image, error) {
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, nil, err
	}
	bounds := img.Bounds()
	result, err := segment.Extract(img, a.options(bounds.Dx(), bounds.Dy()))
	if err != nil {
		return nil, nil, err
	}
	return result, img, nil
}

func (s *Server) handleSymbolsExtract(args json.RawMessage) (interface{}, error) {
	var a symbolsExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	result, _, err := s.extractFromArgs(a)
	return result, err
}

func (s *Server) handleSymbolsAnnotate(args json.RawMessage) (interface{}, error) {
	var a symbolsExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	result, img, err := s.extractFromArgs(a)
	if err != nil {
		return nil, err
	}
	return imaging.AnnotateSymbols(img, result.Boxes)
}

type symbolsRecognizeArgs struct {
	symbolsExtractArgs
	Language    string `json:"language"`
	Whitelist   string `json:"whitelist"`
	Concurrency int    `json:"concurrency"`
}

// SymbolsRecognizeResult pairs every extracted box with its recognition
// outcome, index-aligned.
type SymbolsRecognizeResult struct {
	Boxes   []segment.Box        `json:"bounding_boxes"`
	Symbols []recognition.Symbol `json:"symbols"`
}

func (s *Server) handleSymbolsRecognize(args json.RawMessage) (interface{}, error) {
	var a symbolsRecognizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	result, _, err := s.extractFromArgs(a.symbolsExtractArgs)
	if err != nil {
		return nil, err
	}

	rec := recognition.NewTesseract(a.Language)
	rec.Whitelist = a.Whitelist

	symbols := recognition.RecognizeAll(context.Background(), rec, result.Crops, a.Concurrency)
	return &SymbolsRecognizeResult{
		Boxes:   result.Boxes,
		Symbols: symbols,
	}, nil
}
