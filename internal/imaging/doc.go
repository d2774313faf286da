// Package imaging connects images to the colorops color model.
//
// This package samples pixels as colorops colors, extracts dominant palettes,
// renders swatch strips for lists of colors, and recolors images by running a
// colorops transform over every pixel. All operations work with standard Go
// image.Image types and use a coordinate system where (0,0) is at the top-left
// corner, X increases rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Color Representation
//
// Sampled pixels are un-premultiplied before they become colorops colors, so
// a half-transparent red pixel reports rgba(255, 0, 0, 0.5) rather than a
// darkened red. Each sample carries a colorops.Summary with hex, CSS, HSL
// and lightness information.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual image operations
// are stateless and can be called concurrently on different images.
//
// # Output Images
//
// Rendered and recolored images are returned as base64-encoded PNG data inside
// an EncodedImage, ready to embed in an MCP tool response.
package imaging
