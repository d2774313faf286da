package colorops

import (
	"image/color"
	"math"
	"strconv"
)

// lightThreshold is the lightness above which IsLight reports true.
const lightThreshold = 0.70

// Color is an immutable color value holding consistent RGBA and HSLA views.
//
// The zero Color is fully transparent black.
type Color struct {
	rgba RGBA
	hsla HSLA
}

// FromRGBA builds a Color from RGBA channels. Alpha must be within 0-1.
func FromRGBA(c RGBA) (Color, error) {
	if err := c.validate(); err != nil {
		return Color{}, err
	}
	return Color{rgba: c, hsla: ToHSL(c)}, nil
}

// FromHSLA builds a Color from an HSLA record.
//
// The hue is wrapped into [0,360). Saturation, lightness and alpha must be
// finite and within 0-1, otherwise a *ConversionError is returned and no
// Color is produced.
func FromHSLA(c HSLA) (Color, error) {
	if err := c.validate(); err != nil {
		return Color{}, err
	}
	c.H = normalizeHue(c.H)
	rgba, err := ToRGBA(c)
	if err != nil {
		return Color{}, err
	}
	return Color{rgba: rgba, hsla: c}, nil
}

// Hue returns the hue rounded to whole degrees.
func (c Color) Hue() int {
	return int(math.Round(c.hsla.H))
}

// Saturation returns the saturation as a rounded percentage, e.g. "45%".
func (c Color) Saturation() string {
	return percent(c.hsla.S)
}

// Lightness returns the lightness as a rounded percentage, e.g. "50%".
func (c Color) Lightness() string {
	return percent(c.hsla.L)
}

// Alpha returns the unrounded alpha.
func (c Color) Alpha() float64 {
	return c.hsla.A
}

// IsLight reports whether lightness is strictly above 70%. Alpha is ignored.
func (c Color) IsLight() bool {
	return c.hsla.L > lightThreshold
}

// Channels returns the RGBA view.
func (c Color) Channels() RGBA {
	return c.rgba
}

// HSL returns the HSLA view.
func (c Color) HSL() HSLA {
	return c.hsla
}

// String returns the CSS rgb()/rgba() rendering.
func (c Color) String() string {
	return FormatRGBA(c.rgba)
}

// HexString returns the "#rrggbb" rendering.
func (c Color) HexString() string {
	return FormatHex(c.rgba)
}

// RGBA implements image/color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: c.rgba.R,
		G: c.rgba.G,
		B: c.rgba.B,
		A: uint8(math.Round(c.rgba.A * 255)),
	}.RGBA()
}

// Summary is a JSON-friendly description of a Color.
type Summary struct {
	Hex        string  `json:"hex"`        // "#rrggbb" (alpha excluded)
	CSS        string  `json:"css"`        // rgb()/rgba() rendering
	Channels   RGBA    `json:"channels"`   // RGBA components
	Hue        int     `json:"hue"`        // Rounded degrees
	Saturation string  `json:"saturation"` // Rounded percentage
	Lightness  string  `json:"lightness"`  // Rounded percentage
	Alpha      float64 `json:"alpha"`      // Unrounded alpha
	IsLight    bool    `json:"is_light"`   // Lightness above 70%
}

// Describe returns a Summary of c.
func (c Color) Describe() Summary {
	return Summary{
		Hex:        c.HexString(),
		CSS:        c.String(),
		Channels:   c.rgba,
		Hue:        c.Hue(),
		Saturation: c.Saturation(),
		Lightness:  c.Lightness(),
		Alpha:      c.Alpha(),
		IsLight:    c.IsLight(),
	}
}

func percent(v float64) string {
	return strconv.Itoa(int(math.Round(v*100))) + "%"
}
