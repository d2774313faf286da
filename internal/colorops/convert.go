package colorops

import "math"

// ToHSL converts RGBA channels to an HSLA record.
//
// The channels are normalized to 0-1 and the standard 60-degree sector
// formula is applied:
//  1. Lightness is the midpoint of the largest and smallest channel
//  2. Equal channels are achromatic (hue and saturation 0)
//  3. Saturation divides the channel spread by a lightness-dependent range
//  4. Hue is measured from whichever channel is largest
//
// Alpha passes through unchanged. The returned hue lies in [0,360).
func ToHSL(c RGBA) HSLA {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSLA{H: 0, S: 0, L: l, A: c.A}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return HSLA{H: h / 6 * 360, S: s, L: l, A: c.A}
}

// ToRGBA converts an HSLA record to RGBA channels.
//
// Hue is wrapped into [0,360) first. Each channel is rounded to the nearest
// integer only at the end, so chained transforms do not accumulate rounding
// error in the HSL domain.
//
// A *ConversionError is returned when any component is not a finite number or
// when a channel would land outside 0-255. Values are never silently clamped.
func ToRGBA(c HSLA) (RGBA, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{{"h", c.H}, {"s", c.S}, {"l", c.L}, {"a", c.A}} {
		if !isFinite(f.v) {
			return RGBA{}, &ConversionError{Field: f.name, Value: f.v}
		}
	}

	h := normalizeHue(c.H) / 360
	s, l := c.S, c.L

	var m2 float64
	if l <= 0.5 {
		m2 = l * (s + 1)
	} else {
		m2 = l + s - l*s
	}
	m1 := l*2 - m2

	hue := func(t float64) float64 {
		if t < 0 {
			t++
		} else if t > 1 {
			t--
		}
		switch {
		case t*6 < 1:
			return m1 + (m2-m1)*t*6
		case t*2 < 1:
			return m2
		case t*3 < 2:
			return m1 + (m2-m1)*(2.0/3.0-t)*6
		default:
			return m1
		}
	}

	r, err := channel("r", hue(h+1.0/3.0))
	if err != nil {
		return RGBA{}, err
	}
	g, err := channel("g", hue(h))
	if err != nil {
		return RGBA{}, err
	}
	b, err := channel("b", hue(h-1.0/3.0))
	if err != nil {
		return RGBA{}, err
	}
	if err := checkUnit("a", c.A); err != nil {
		return RGBA{}, err
	}

	return RGBA{R: r, G: g, B: b, A: c.A}, nil
}

// channel scales a 0-1 intensity to an 8-bit channel.
func channel(name string, v float64) (uint8, error) {
	scaled := math.Round(v * 255)
	if !isFinite(scaled) || scaled < 0 || scaled > 255 {
		return 0, &ConversionError{Field: name, Value: scaled}
	}
	return uint8(scaled), nil
}
