package colorops

import (
	"fmt"
	"strings"
)

// Op identifies a color transform.
type Op int

// Supported transforms. Amounts are percentages: relative deltas for all
// operations except OpFade (absolute alpha) and OpSpin (degrees).
const (
	OpSaturate Op = iota
	OpDesaturate
	OpLighten
	OpDarken
	OpFadeIn
	OpFadeOut
	OpFade
	OpSpin
)

var opNames = [...]string{
	OpSaturate:   "saturate",
	OpDesaturate: "desaturate",
	OpLighten:    "lighten",
	OpDarken:     "darken",
	OpFadeIn:     "fadein",
	OpFadeOut:    "fadeout",
	OpFade:       "fade",
	OpSpin:       "spin",
}

// Ops lists every transform in declaration order.
func Ops() []Op {
	return []Op{OpSaturate, OpDesaturate, OpLighten, OpDarken, OpFadeIn, OpFadeOut, OpFade, OpSpin}
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// ParseOp looks up a transform by its lowercase name, e.g. "lighten".
func ParseOp(name string) (Op, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color operation: %q", name)
}

// adjust recomputes HSL from the stored channels and applies op to it.
func (c Color) adjust(op Op, amount float64) (HSLA, error) {
	if !isFinite(amount) {
		return HSLA{}, &ConversionError{Field: "amount", Value: amount}
	}

	hsl := ToHSL(c.rgba)
	delta := amount / 100

	switch op {
	case OpSaturate:
		hsl.S = clamp(hsl.S + delta)
	case OpDesaturate:
		hsl.S = clamp(hsl.S - delta)
	case OpLighten:
		hsl.L = clamp(hsl.L + delta)
	case OpDarken:
		hsl.L = clamp(hsl.L - delta)
	case OpFadeIn:
		hsl.A = clamp(hsl.A + delta)
	case OpFadeOut:
		hsl.A = clamp(hsl.A - delta)
	case OpFade:
		hsl.A = clamp(delta)
	case OpSpin:
		hsl.H = normalizeHue(hsl.H + amount)
	default:
		return HSLA{}, fmt.Errorf("unknown color operation: %v", op)
	}
	return hsl, nil
}

// Apply returns a new Color with op applied. The receiver is unchanged.
func (c Color) Apply(op Op, amount float64) (Color, error) {
	hsl, err := c.adjust(op, amount)
	if err != nil {
		return Color{}, err
	}
	return FromHSLA(hsl)
}

// ApplyString applies op and returns the rgb()/rgba() rendering of the result.
func (c Color) ApplyString(op Op, amount float64) (string, error) {
	hsl, err := c.adjust(op, amount)
	if err != nil {
		return "", err
	}
	return RGBAString(hsl)
}

// Saturate increases saturation by amount percent, clamped to 100%.
func (c Color) Saturate(amount float64) (Color, error) { return c.Apply(OpSaturate, amount) }

// SaturateString is Saturate rendered as a CSS string.
func (c Color) SaturateString(amount float64) (string, error) {
	return c.ApplyString(OpSaturate, amount)
}

// Desaturate decreases saturation by amount percent, clamped to 0%.
func (c Color) Desaturate(amount float64) (Color, error) { return c.Apply(OpDesaturate, amount) }

// DesaturateString is Desaturate rendered as a CSS string.
func (c Color) DesaturateString(amount float64) (string, error) {
	return c.ApplyString(OpDesaturate, amount)
}

// Lighten increases lightness by amount percent, clamped to 100%.
func (c Color) Lighten(amount float64) (Color, error) { return c.Apply(OpLighten, amount) }

// LightenString is Lighten rendered as a CSS string.
func (c Color) LightenString(amount float64) (string, error) {
	return c.ApplyString(OpLighten, amount)
}

// Darken decreases lightness by amount percent, clamped to 0%.
func (c Color) Darken(amount float64) (Color, error) { return c.Apply(OpDarken, amount) }

// DarkenString is Darken rendered as a CSS string.
func (c Color) DarkenString(amount float64) (string, error) {
	return c.ApplyString(OpDarken, amount)
}

// FadeIn makes the color more opaque by amount percent.
func (c Color) FadeIn(amount float64) (Color, error) { return c.Apply(OpFadeIn, amount) }

// FadeInString is FadeIn rendered as a CSS string.
func (c Color) FadeInString(amount float64) (string, error) {
	return c.ApplyString(OpFadeIn, amount)
}

// FadeOut makes the color more transparent by amount percent.
func (c Color) FadeOut(amount float64) (Color, error) { return c.Apply(OpFadeOut, amount) }

// FadeOutString is FadeOut rendered as a CSS string.
func (c Color) FadeOutString(amount float64) (string, error) {
	return c.ApplyString(OpFadeOut, amount)
}

// Fade sets the absolute opacity to amount percent, whatever the current alpha.
func (c Color) Fade(amount float64) (Color, error) { return c.Apply(OpFade, amount) }

// FadeString is Fade rendered as a CSS string.
func (c Color) FadeString(amount float64) (string, error) {
	return c.ApplyString(OpFade, amount)
}

// Spin rotates the hue by amount degrees in either direction, wrapping at 360.
func (c Color) Spin(amount float64) (Color, error) { return c.Apply(OpSpin, amount) }

// SpinString is Spin rendered as a CSS string.
func (c Color) SpinString(amount float64) (string, error) {
	return c.ApplyString(OpSpin, amount)
}

// Greyscale removes all saturation, the same as DesaturateString(100).
func (c Color) Greyscale() string {
	hsl := ToHSL(c.rgba)
	hsl.S = 0
	// Lightness and alpha come from valid channels, so this cannot fail.
	s, _ := RGBAString(hsl)
	return s
}
