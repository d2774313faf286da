// Package colorops parses, converts and manipulates CSS-style colors.
//
// A Color holds two consistent views of the same color: an RGBA quadruple
// with 8-bit channels and a fractional alpha, and an HSLA record with hue in
// degrees and saturation, lightness and alpha in the 0-1 range. Both views are
// computed once when the Color is built and never change afterwards.
//
// # Input
//
// Colors are created from strings with Parse, or from the tagged inputs
// Literal and Record with New. Accepted strings (case-insensitive):
//   - Hex: "#rgb", "#rrggbb"
//   - RGB: "rgb(r, g, b)", "rgba(r, g, b, a)", channels as integers or percentages
//   - HSL: "hsl(h, s%, l%)", "hsla(h, s%, l%, a)"
//   - CSS keywords: "red", "rebeccapurple", "transparent"
//
// # Transforms
//
// Every transform is available in two forms. The plain form (Lighten, Spin, ...)
// returns a new Color and is suitable for chaining:
//
//	c, _ := colorops.Parse("#3366cc")
//	lighter, _ := c.Lighten(10)
//	spun, _ := lighter.Spin(180)
//
// The String form (LightenString, SpinString, ...) returns the CSS rgba()
// rendering of the result directly. Transforms always start from the receiver's
// RGBA channels and never modify the receiver.
//
// # Thread Safety
//
// Color is an immutable value. It may be copied and shared between goroutines
// without synchronization.
//
// # Error Handling
//
// Unparseable input yields a *ParseError and conversions that meet a
// non-finite or out-of-range component yield a *ConversionError. Use
// errors.Is with ErrParse or ErrConversion to classify them.
package colorops
