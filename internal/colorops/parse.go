package colorops

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Input is one of the accepted input variants for New: Literal or Record.
type Input interface {
	colorInput()
}

// Literal is a color string such as "#ff0000" or "hsl(120, 100%, 50%)".
type Literal string

func (Literal) colorInput() {}

// Record is a structured HSLA input. H, S and L are required; A defaults to 1
// when absent. Pointer fields let decoders distinguish missing from zero.
type Record struct {
	H *float64 `json:"h"`
	S *float64 `json:"s"`
	L *float64 `json:"l"`
	A *float64 `json:"a,omitempty"`
}

func (Record) colorInput() {}

// HSLA resolves the record, reporting a *ParseError for missing fields.
func (r Record) HSLA() (HSLA, error) {
	var missing []string
	if r.H == nil {
		missing = append(missing, "h")
	}
	if r.S == nil {
		missing = append(missing, "s")
	}
	if r.L == nil {
		missing = append(missing, "l")
	}
	if len(missing) > 0 {
		return HSLA{}, &ParseError{
			Input:  r.describe(),
			Reason: "record is missing required fields " + strings.Join(missing, ", "),
		}
	}

	a := 1.0
	if r.A != nil {
		a = *r.A
	}
	return HSLA{H: *r.H, S: *r.S, L: *r.L, A: a}, nil
}

func (r Record) describe() string {
	field := func(name string, v *float64) string {
		if v == nil {
			return name + ":<missing>"
		}
		return name + ":" + strconv.FormatFloat(*v, 'g', -1, 64)
	}
	return "{" + field("h", r.H) + " " + field("s", r.S) + " " + field("l", r.L) + " " + field("a", r.A) + "}"
}

// New builds a Color from any accepted input variant.
func New(in Input) (Color, error) {
	switch v := in.(type) {
	case Literal:
		return Parse(string(v))
	case Record:
		return fromRecord(v)
	case *Record:
		if v != nil {
			return fromRecord(*v)
		}
	}
	return Color{}, &ParseError{
		Input:  fmt.Sprintf("%v", in),
		Reason: "input must be a color string or an HSLA record",
	}
}

func fromRecord(r Record) (Color, error) {
	hsla, err := r.HSLA()
	if err != nil {
		return Color{}, err
	}
	return FromHSLA(hsla)
}

// Parse builds a Color from a color string.
//
// Strategies are tried in order and the first match wins:
//  1. RGBA literal: hex, keyword, or an rgb()/rgba() call with four arguments
//  2. HSLA literal: hsl()/hsla() with an optional alpha
//  3. RGB literal: rgb()/rgba() with three arguments, alpha 1
//
// Out-of-range channels, saturation, lightness and alpha inside a matching
// literal are clamped into range. Hue wraps into [0,360).
func Parse(s string) (Color, error) {
	lit := strings.ToLower(strings.TrimSpace(s))
	for _, strategy := range strategies {
		c, ok, err := strategy(lit)
		if err != nil {
			return Color{}, err
		}
		if ok {
			return c, nil
		}
	}
	return Color{}, &ParseError{Input: s, Reason: "no hex, rgb(), rgba(), hsl(), hsla() or keyword match"}
}

type strategy func(lit string) (Color, bool, error)

var strategies = []strategy{parseRGBALiteral, parseHSLALiteral, parseRGBLiteral}

const num = `([+-]?(?:\d+\.?\d*|\.\d+)%?)`

var (
	hexPattern     = regexp.MustCompile(`^#(?:[0-9a-f]{3}|[0-9a-f]{6})$`)
	keywordPattern = regexp.MustCompile(`^[a-z]+$`)
	rgbaPattern    = regexp.MustCompile(`^rgba?\(\s*` + num + `\s*,\s*` + num + `\s*,\s*` + num + `\s*,\s*` + num + `\s*\)$`)
	rgbPattern     = regexp.MustCompile(`^rgba?\(\s*` + num + `\s*,\s*` + num + `\s*,\s*` + num + `\s*\)$`)
	hslaPattern    = regexp.MustCompile(`^hsla?\(\s*([+-]?(?:\d+\.?\d*|\.\d+))(?:deg)?\s*,\s*` +
		`([+-]?(?:\d+\.?\d*|\.\d+))%\s*,\s*([+-]?(?:\d+\.?\d*|\.\d+))%\s*(?:,\s*` + num + `\s*)?\)$`)
)

func parseRGBALiteral(lit string) (Color, bool, error) {
	if hexPattern.MatchString(lit) {
		hc, err := colorful.Hex(lit)
		if err != nil {
			return Color{}, false, nil
		}
		r, g, b := hc.RGB255()
		c, err := FromRGBA(RGBA{R: r, G: g, B: b, A: 1})
		return c, err == nil, err
	}
	if keywordPattern.MatchString(lit) || rgbaPattern.MatchString(lit) {
		return decodeCSS(lit)
	}
	return Color{}, false, nil
}

func parseRGBLiteral(lit string) (Color, bool, error) {
	if !rgbPattern.MatchString(lit) {
		return Color{}, false, nil
	}
	return decodeCSS(lit)
}

// decodeCSS decodes a keyword or rgb()/rgba() literal that already matched
// one of the patterns above. Channels and alpha are clamped into range.
func decodeCSS(lit string) (Color, bool, error) {
	cc, err := csscolorparser.Parse(lit)
	if err != nil {
		return Color{}, false, nil
	}
	r, g, b, _ := cc.RGBA255()
	c, err := FromRGBA(RGBA{R: r, G: g, B: b, A: cc.A})
	return c, err == nil, err
}

func parseHSLALiteral(lit string) (Color, bool, error) {
	m := hslaPattern.FindStringSubmatch(lit)
	if m == nil {
		return Color{}, false, nil
	}

	var vals [3]float64
	for i, s := range m[1:4] {
		v, err := parseNumber(s)
		if err != nil {
			return Color{}, false, nil
		}
		vals[i] = v
	}
	alpha := m[4]
	if alpha == "" {
		alpha = "1"
	}
	a, err := parseAlpha(alpha)
	if err != nil {
		return Color{}, false, nil
	}

	c, err := FromHSLA(HSLA{
		H: vals[0],
		S: clamp(vals[1] / 100),
		L: clamp(vals[2] / 100),
		A: a,
	})
	return c, err == nil, err
}

// parseAlpha reads a fractional or percentage alpha clamped into [0,1].
func parseAlpha(s string) (float64, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if strings.HasSuffix(s, "%") {
		v /= 100
	}
	return clamp(v), nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, err
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("number %q is not finite", s)
	}
	return v, nil
}
