package imaging

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/colorops"
	"github.com/ironsheep/color-tools-mcp/internal/logging"
)

// RecolorResult is a recolored image plus the operation that produced it.
type RecolorResult struct {
	EncodedImage
	Operation string  `json:"operation"`
	Amount    float64 `json:"amount"`
}

// Recolor applies op with amount to every pixel of img, or only to the
// pixels inside region when it is non-nil, and returns the result as PNG.
//
// Each pixel is un-premultiplied, transformed through colorops (so the same
// clamping and hue wrapping rules apply as for single colors), and written
// back. Pixels outside region are copied unchanged.
func Recolor(img image.Image, op colorops.Op, amount float64, region *Region) (*RecolorResult, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("amount must be a finite number")
	}
	rect, err := region.Rect(img)
	if err != nil {
		return nil, err
	}

	area := imaging.Crop(img, rect)
	recolored := adjust.Apply(area, func(px color.RGBA) color.RGBA {
		return recolorPixel(px, op, amount)
	})

	// Normalize to a zero-origin canvas before pasting the region back.
	out := imaging.Paste(imaging.Clone(img), recolored, rect.Min.Sub(img.Bounds().Min))

	logging.Logger().Debug("image recolored",
		slog.String("operation", op.String()),
		slog.Float64("amount", amount),
		slog.String("region", rect.String()))

	encoded, err := encodePNG(out)
	if err != nil {
		return nil, err
	}
	return &RecolorResult{EncodedImage: *encoded, Operation: op.String(), Amount: amount}, nil
}

// recolorPixel transforms one premultiplied pixel. On failure the pixel is
// returned unchanged.
func recolorPixel(px color.RGBA, op colorops.Op, amount float64) color.RGBA {
	c := PixelColor(px)
	out, err := c.Apply(op, amount)
	if err != nil {
		return px
	}
	return color.RGBAModel.Convert(out).(color.RGBA)
}
