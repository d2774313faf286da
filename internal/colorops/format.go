package colorops

import (
	"fmt"
	"strconv"
)

// FormatRGBA renders channels in CSS functional notation.
//
// Fully opaque colors use "rgb(r, g, b)"; anything else uses
// "rgba(r, g, b, a)" with alpha in its shortest decimal form.
func FormatRGBA(c RGBA) string {
	if c.A == 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// FormatHex renders channels as a lowercase "#rrggbb" string. Alpha is dropped.
func FormatHex(c RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBAString converts an HSLA record and renders it with FormatRGBA.
func RGBAString(c HSLA) (string, error) {
	rgba, err := ToRGBA(c)
	if err != nil {
		return "", err
	}
	return FormatRGBA(rgba), nil
}

// HexString converts an HSLA record and renders it with FormatHex.
func HexString(c HSLA) (string, error) {
	rgba, err := ToRGBA(c)
	if err != nil {
		return "", err
	}
	return FormatHex(rgba), nil
}
