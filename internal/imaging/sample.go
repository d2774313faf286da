package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/ironsheep/color-tools-mcp/internal/colorops"
)

// PixelColor converts any image color to an un-premultiplied colorops.Color.
func PixelColor(c color.Color) colorops.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	// Channels are bytes and alpha is n.A/255, so this cannot fail.
	out, _ := colorops.FromRGBA(colorops.RGBA{R: n.R, G: n.G, B: n.B, A: float64(n.A) / 255})
	return out
}

// SampleColor returns the color at pixel (x, y).
//
// Coordinates are 0-based with origin at top-left. An error is returned if
// the point is outside the image bounds.
func SampleColor(img image.Image, x, y int) (*colorops.Summary, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	s := PixelColor(img.At(x, y)).Describe()
	return &s, nil
}

// LabeledPoint is a pixel coordinate with an optional descriptive label such
// as "button_background".
type LabeledPoint struct {
	X     int    `json:"x"`               // X coordinate (0-based)
	Y     int    `json:"y"`               // Y coordinate (0-based)
	Label string `json:"label,omitempty"` // Optional descriptive label for this point
}

// LabeledSample combines a color sample with its location and optional label.
type LabeledSample struct {
	Label string           `json:"label,omitempty"` // Optional label (empty if not provided)
	X     int              `json:"x"`               // X coordinate that was sampled
	Y     int              `json:"y"`               // Y coordinate that was sampled
	Color colorops.Summary `json:"color"`           // The color at this location
}

// MultiSampleResult contains color samples from multiple points, in input order.
type MultiSampleResult struct {
	Samples []LabeledSample `json:"samples"`
}

// SampleColorsMulti samples several points in one call.
//
// If any point is out of bounds the whole call fails and no partial results
// are returned.
//
// # Example
//
//	points := []imaging.LabeledPoint{
//	    {X: 10, Y: 20, Label: "background"},
//	    {X: 50, Y: 100, Label: "text"},
//	}
//	result, err := imaging.SampleColorsMulti(img, points)
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiSampleResult, error) {
	results := make([]LabeledSample, 0, len(points))

	for _, p := range points {
		s, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledSample{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *s,
		})
	}

	return &MultiSampleResult{Samples: results}, nil
}

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive) and (X2, Y2) the bottom-right
// corner (exclusive).
type Region struct {
	X1 int `json:"x1"` // Left edge X coordinate (inclusive)
	Y1 int `json:"y1"` // Top edge Y coordinate (inclusive)
	X2 int `json:"x2"` // Right edge X coordinate (exclusive)
	Y2 int `json:"y2"` // Bottom edge Y coordinate (exclusive)
}

// Rect resolves r against img. A nil region selects the whole image.
func (r *Region) Rect(img image.Image) (image.Rectangle, error) {
	bounds := img.Bounds()
	if r == nil {
		return bounds, nil
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return image.Rectangle{}, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	rect := image.Rect(r.X1, r.Y1, r.X2, r.Y2)
	if !rect.In(bounds) {
		return image.Rectangle{}, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return rect, nil
}

// PaletteEntry is a quantized color and the share of pixels it covers.
type PaletteEntry struct {
	Percentage float64          `json:"percentage"` // Share of pixels (0-100)
	Color      colorops.Summary `json:"color"`      // Quantized color
}

// PaletteResult holds dominant colors sorted by frequency, most common first.
type PaletteResult struct {
	Colors []PaletteEntry `json:"colors"`
}

// DominantColors returns up to count of the most common colors in img, or in
// region when it is non-nil.
//
// # Color Quantization
//
// Similar colors are grouped by quantizing each channel down to a multiple
// of 16, so #F0F0F0 and #FAFAFA both count as #F0F0F0. Fully transparent
// pixels are skipped. Ties are broken by hex value so results are stable.
func DominantColors(img image.Image, count int, region *Region) (*PaletteResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	rect, err := region.Rect(img)
	if err != nil {
		return nil, err
	}

	counts := make(map[colorops.RGBA]int)
	total := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if n.A == 0 {
				continue
			}
			key := colorops.RGBA{R: n.R / 16 * 16, G: n.G / 16 * 16, B: n.B / 16 * 16, A: 1}
			counts[key]++
			total++
		}
	}

	entries := make([]PaletteEntry, 0, len(counts))
	for key, n := range counts {
		c, err := colorops.FromRGBA(key)
		if err != nil {
			return nil, err
		}
		entries = append(entries, PaletteEntry{
			Percentage: float64(n) / float64(total) * 100,
			Color:      c.Describe(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Percentage != entries[j].Percentage {
			return entries[i].Percentage > entries[j].Percentage
		}
		return entries[i].Color.Hex < entries[j].Color.Hex
	})

	if len(entries) > count {
		entries = entries[:count]
	}

	return &PaletteResult{Colors: entries}, nil
}
