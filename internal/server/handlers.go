package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/colorops"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_parse", "image_recolor").
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Resolves the color input or loads the image from cache
//  4. Calls the appropriate colorops/imaging/ocr function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Color Operations
	case "color_parse":
		return s.handleColorParse(args)
	case "color_adjust":
		return s.handleColorAdjust(args)
	case "color_chain":
		return s.handleColorChain(args)
	case "color_greyscale":
		return s.handleColorGreyscale(args)
	case "color_swatch":
		return s.handleColorSwatch(args)

	// Image Color Operations
	case "image_load":
		return s.handleImageLoad(args)
	case "image_unload":
		return s.handleImageUnload(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_recolor":
		return s.handleImageRecolor(args)
	case "image_read_color_literals":
		return s.handleImageReadColorLiterals(args)

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

// === Color Operation Handlers ===

// colorArgs is embedded by every tool that takes a single color.
type colorArgs struct {
	Color string           `json:"color,omitempty"`
	HSLA  *colorops.Record `json:"hsla,omitempty"`
}

var errNoColor = errors.New("either 'color' or 'hsla' is required")

// resolve builds the color from whichever input form was supplied. A literal
// wins when both are present.
func (a colorArgs) resolve() (colorops.Color, error) {
	switch {
	case a.Color != "":
		return colorops.New(colorops.Literal(a.Color))
	case a.HSLA != nil:
		return colorops.New(*a.HSLA)
	default:
		return colorops.Color{}, errNoColor
	}
}

// stepArgs is one transform request. Amount is a pointer so a missing value
// is reported instead of silently becoming zero.
type stepArgs struct {
	Operation string   `json:"operation"`
	Amount    *float64 `json:"amount"`
}

func (a stepArgs) resolve() (colorops.Op, float64, error) {
	op, err := colorops.ParseOp(a.Operation)
	if err != nil {
		return 0, 0, err
	}
	if a.Amount == nil {
		return 0, 0, fmt.Errorf("'amount' is required for %s", op)
	}
	return op, *a.Amount, nil
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.resolve()
	if err != nil {
		return nil, err
	}
	return c.Describe(), nil
}

type colorAdjustArgs struct {
	colorArgs
	stepArgs
}

// AdjustResult is the outcome of a single transform.
type AdjustResult struct {
	Operation string           `json:"operation"`
	Amount    float64          `json:"amount"`
	Result    string           `json:"result"`
	Color     colorops.Summary `json:"color"`
}

func (s *Server) handleColorAdjust(args json.RawMessage) (interface{}, error) {
	var a colorAdjustArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.colorArgs.resolve()
	if err != nil {
		return nil, err
	}
	op, amount, err := a.stepArgs.resolve()
	if err != nil {
		return nil, err
	}
	out, err := c.Apply(op, amount)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", op, err)
	}
	return &AdjustResult{
		Operation: op.String(),
		Amount:    amount,
		Result:    out.String(),
		Color:     out.Describe(),
	}, nil
}

type colorChainArgs struct {
	colorArgs
	Steps []stepArgs `json:"steps"`
}

// ChainStep records the color produced by one step of a chain.
type ChainStep struct {
	Operation string  `json:"operation"`
	Amount    float64 `json:"amount"`
	Result    string  `json:"result"`
}

// ChainResult is the outcome of a sequence of transforms.
type ChainResult struct {
	Input  string           `json:"input"`
	Steps  []ChainStep      `json:"steps"`
	Result string           `json:"result"`
	Color  colorops.Summary `json:"color"`
}

func (s *Server) handleColorChain(args json.RawMessage) (interface{}, error) {
	var a colorChainArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Steps) == 0 {
		return nil, fmt.Errorf("at least one step is required")
	}
	c, err := a.colorArgs.resolve()
	if err != nil {
		return nil, err
	}

	result := &ChainResult{Input: c.String(), Steps: make([]ChainStep, 0, len(a.Steps))}
	for i, step := range a.Steps {
		op, amount, err := step.resolve()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if c, err = c.Apply(op, amount); err != nil {
			return nil, fmt.Errorf("step %d: %s failed: %w", i+1, op, err)
		}
		result.Steps = append(result.Steps, ChainStep{Operation: op.String(), Amount: amount, Result: c.String()})
	}
	result.Result = c.String()
	result.Color = c.Describe()
	return result, nil
}

// GreyscaleResult is the greyscale rendering of a color.
type GreyscaleResult struct {
	Input  string `json:"input"`
	Result string `json:"result"`
}

func (s *Server) handleColorGreyscale(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.resolve()
	if err != nil {
		return nil, err
	}
	return &GreyscaleResult{Input: c.String(), Result: c.Greyscale()}, nil
}

type colorSwatchArgs struct {
	Colors []string `json:"colors"`
	Size   int      `json:"size"`
	Labels *bool    `json:"labels,omitempty"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	labels := true
	if a.Labels != nil {
		labels = *a.Labels
	}

	colors := make([]colorops.Color, len(a.Colors))
	for i, lit := range a.Colors {
		c, err := colorops.Parse(lit)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i+1, err)
		}
		colors[i] = c
	}
	return imaging.RenderSwatches(colors, a.Size, labels)
}

// === Image Color Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// UnloadResult reports what image_unload removed from the cache.
type UnloadResult struct {
	Evicted int `json:"evicted"` // Number of images dropped
	Cached  int `json:"cached"`  // Images still cached afterwards
}

func (s *Server) handleImageUnload(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	result := &UnloadResult{}
	if a.Path == "" {
		result.Evicted = s.cache.Clear()
	} else if s.cache.Evict(a.Path) {
		result.Evicted = 1
	}
	result.Cached = s.cache.Len()
	return result, nil
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string                 `json:"path"`
	Points []imaging.LabeledPoint `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColorsMulti(img, a.Points)
}

type imageDominantColorsArgs struct {
	Path   string          `json:"path"`
	Count  int             `json:"count"`
	Region *imaging.Region `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count, a.Region)
}

type imageRecolorArgs struct {
	Path string `json:"path"`
	stepArgs
	Region *imaging.Region `json:"region,omitempty"`
}

func (s *Server) handleImageRecolor(args json.RawMessage) (interface{}, error) {
	var a imageRecolorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	op, amount, err := a.stepArgs.resolve()
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Recolor(img, op, amount, a.Region)
}

type imageReadColorLiteralsArgs struct {
	Path     string          `json:"path"`
	Region   *imaging.Region `json:"region,omitempty"`
	Language string          `json:"language"`
}

func (s *Server) handleImageReadColorLiterals(args json.RawMessage) (interface{}, error) {
	var a imageReadColorLiteralsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	rect, err := a.Region.Rect(img)
	if err != nil {
		return nil, err
	}

	reader := s.reader
	if a.Language != "" {
		reader = &ocr.Reader{Language: a.Language, TessdataPrefix: s.reader.TessdataPrefix, Scale: s.reader.Scale}
	}
	return reader.ReadColorLiterals(img, rect)
}
