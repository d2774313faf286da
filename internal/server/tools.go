package server

import "github.com/ironsheep/color-tools-mcp/internal/colorops"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func operationNames() []string {
	ops := colorops.Ops()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}
	return names
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func colorProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Color as #rgb, #rrggbb, rgb(), rgba(), hsl(), hsla() or a CSS keyword",
	}
}

func hslaProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Color as an HSLA record. Used when 'color' is omitted. Alpha defaults to 1.",
		"properties": map[string]interface{}{
			"h": map[string]interface{}{"type": "number", "description": "Hue in degrees"},
			"s": map[string]interface{}{"type": "number", "description": "Saturation (0-1)"},
			"l": map[string]interface{}{"type": "number", "description": "Lightness (0-1)"},
			"a": map[string]interface{}{"type": "number", "description": "Alpha (0-1)"},
		},
		"required": []string{"h", "s", "l"},
	}
}

func operationProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        operationNames(),
		"description": "Transform to apply",
	}
}

func amountProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Percentage delta (absolute percentage for 'fade', degrees for 'spin')",
	}
}

func regionProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required":    []string{"x1", "y1", "x2", "y2"},
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Operations
		{
			Name:        "color_parse",
			Description: "Parse a color and report its hex, CSS, channel, hue, saturation, lightness and alpha values.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty(),
					"hsla":  hslaProperty(),
				},
			},
		},
		{
			Name:        "color_adjust",
			Description: "Apply one transform (saturate, desaturate, lighten, darken, fadein, fadeout, fade, spin) to a color and return the resulting CSS color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":     colorProperty(),
					"hsla":      hslaProperty(),
					"operation": operationProperty(),
					"amount":    amountProperty(),
				},
				"required": []string{"operation", "amount"},
			},
		},
		{
			Name:        "color_chain",
			Description: "Apply a sequence of transforms to a color, each step starting from the previous result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty(),
					"hsla":  hslaProperty(),
					"steps": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"operation": operationProperty(),
								"amount":    amountProperty(),
							},
							"required": []string{"operation", "amount"},
						},
						"description": "Transforms to apply in order",
					},
				},
				"required": []string{"steps"},
			},
		},
		{
			Name:        "color_greyscale",
			Description: "Remove all saturation from a color and return the CSS color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty(),
					"hsla":  hslaProperty(),
				},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render colors as a strip of square swatches and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Colors to render, left to right",
					},
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch edge length in pixels (default 64)",
						"default":     64,
					},
					"labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Print the hex value on each swatch",
						"default":     true,
					},
				},
				"required": []string{"colors"},
			},
		},

		// Image Color Operations
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_unload",
			Description: "Drop a loaded image from the cache so the next call rereads it from disk. Without a path, drops every cached image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the image to drop. Omit to clear the whole cache.",
					},
				},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a pixel coordinate, with HSL and lightness details.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get colors at multiple pixel coordinates in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most common colors from an image or region.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (default 5)",
						"default":     5,
					},
					"region": regionProperty("Optional region to analyze. If omitted, analyzes entire image."),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_recolor",
			Description: "Apply a color transform to every pixel of an image (or a region) and return the result as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty(),
					"operation": operationProperty(),
					"amount":    amountProperty(),
					"region":    regionProperty("Optional region to recolor. If omitted, recolors the entire image."),
				},
				"required": []string{"path", "operation", "amount"},
			},
		},
		{
			Name:        "image_read_color_literals",
			Description: "Use OCR to find color values written as text in an image (hex, rgb(), hsl(), keywords).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"region": regionProperty("Optional region to read. If omitted, reads the entire image."),
					"language": map[string]interface{}{
						"type":        "string",
						"description": "OCR language hint (default 'eng')",
						"default":     "eng",
					},
				},
				"required": []string{"path"},
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
