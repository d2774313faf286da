// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes color parsing,
// conversion and transformation through the MCP protocol, together with a
// few image tools that feed pixels through the same color model.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Operations:
//   - color_parse: Parse a literal or HSLA record and describe it
//   - color_adjust: Apply one transform
//   - color_chain: Apply a sequence of transforms
//   - color_greyscale: Remove saturation
//   - color_swatch: Render colors as a PNG strip
//
// Image Color Operations:
//   - image_load: Load image and get metadata
//   - image_unload: Drop one image, or all images, from the cache
//   - image_sample_color: Get color at pixel
//   - image_sample_colors_multi: Sample multiple points
//   - image_dominant_colors: Extract color palette
//   - image_recolor: Transform every pixel of an image or region
//   - image_read_color_literals: OCR color values written in an image
//
// Colors are given either as a string in "color" (hex, rgb(), rgba(), hsl(),
// hsla() or a CSS keyword) or as an "hsla" record {h, s, l, a}.
//
// # Image Caching
//
// Images are cached by path and reused across tool calls until image_unload
// drops them or the server process exits.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
