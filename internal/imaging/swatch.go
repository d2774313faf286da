package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/color-tools-mcp/internal/colorops"
)

const (
	// DefaultSwatchSize is the edge length of a swatch in pixels.
	DefaultSwatchSize = 64

	minSwatchSize = 8
	maxSwatchSize = 512
	maxSwatches   = 64
)

// SwatchResult is a rendered swatch strip.
type SwatchResult struct {
	EncodedImage
	Colors []string `json:"colors"` // Hex label of each swatch, left to right
}

// RenderSwatches draws one square per color, left to right, on a transparent
// strip and returns it as PNG.
//
// Translucent colors are composited over a light/dark checkerboard so their
// alpha stays visible. When labels is true, the hex value is printed at the
// bottom of each square in black or white depending on IsLight.
func RenderSwatches(colors []colorops.Color, size int, labels bool) (*SwatchResult, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("at least one color is required")
	}
	if len(colors) > maxSwatches {
		return nil, fmt.Errorf("too many colors: %d (max %d)", len(colors), maxSwatches)
	}
	if size == 0 {
		size = DefaultSwatchSize
	}
	if size < minSwatchSize || size > maxSwatchSize {
		return nil, fmt.Errorf("swatch size %d out of range [%d,%d]", size, minSwatchSize, maxSwatchSize)
	}

	strip := imaging.New(size*len(colors), size, color.Transparent)
	hexes := make([]string, len(colors))

	for i, c := range colors {
		tile := checkerboard(size)
		fill := imaging.New(size, size, c)
		tile = imaging.Overlay(tile, fill, image.Pt(0, 0), 1.0)

		if labels {
			fg := color.Color(color.White)
			if c.IsLight() {
				fg = color.Black
			}
			drawLabel(tile, 3, size-4, c.HexString(), fg)
		}

		strip = imaging.Paste(strip, tile, image.Pt(i*size, 0))
		hexes[i] = c.HexString()
	}

	encoded, err := encodePNG(strip)
	if err != nil {
		return nil, err
	}
	return &SwatchResult{EncodedImage: *encoded, Colors: hexes}, nil
}

// checkerboard returns a size x size tile of 8px light and dark squares.
func checkerboard(size int) *image.NRGBA {
	light := color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	dark := color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
	tile := imaging.New(size, size, light)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/8+y/8)%2 == 1 {
				tile.SetNRGBA(x, y, dark)
			}
		}
	}
	return tile
}

// drawLabel writes text with its baseline at (x, y) using the 7x13 bitmap face.
func drawLabel(dst *image.NRGBA, x, y int, text string, fg color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
