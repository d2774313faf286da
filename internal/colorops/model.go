package colorops

import "math"

// RGBA is a color as 8-bit red, green and blue channels plus a fractional
// alpha in the range 0-1.
type RGBA struct {
	R uint8   `json:"r"` // Red channel (0-255)
	G uint8   `json:"g"` // Green channel (0-255)
	B uint8   `json:"b"` // Blue channel (0-255)
	A float64 `json:"a"` // Alpha (0 = transparent, 1 = opaque)
}

// HSLA is a color in the HSL color space plus alpha.
//
// H is an angle in degrees. Inputs outside [0,360) are accepted and wrapped
// during conversion. S, L and A are fractions in the range 0-1.
type HSLA struct {
	H float64 `json:"h"` // Hue in degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation (0=gray, 1=vivid)
	L float64 `json:"l"` // Lightness (0=black, 0.5=normal, 1=white)
	A float64 `json:"a"` // Alpha (0 = transparent, 1 = opaque)
}

func (c RGBA) validate() error {
	return checkUnit("a", c.A)
}

func (c HSLA) validate() error {
	if !isFinite(c.H) {
		return &ConversionError{Field: "h", Value: c.H}
	}
	if err := checkUnit("s", c.S); err != nil {
		return err
	}
	if err := checkUnit("l", c.L); err != nil {
		return err
	}
	return checkUnit("a", c.A)
}

// checkUnit rejects values that are not finite or fall outside [0,1].
func checkUnit(field string, v float64) error {
	if !isFinite(v) || v < 0 || v > 1 {
		return &ConversionError{Field: field, Value: v}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// clamp saturates v into [0,1]. NaN passes through so that conversion can
// reject it.
func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Min(1, math.Max(0, v))
}

// normalizeHue wraps an angle in degrees into [0,360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
