package ocr

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/color-tools-mcp/internal/colorops"
	"github.com/ironsheep/color-tools-mcp/internal/logging"
)

// Bounds represents a rectangular bounding box in original image coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Literal is a color literal found in an image.
type Literal struct {
	Text       string           `json:"text"`       // Literal as recognized (after cleanup)
	Line       string           `json:"line"`       // Full text line it was found on
	Confidence float64          `json:"confidence"` // Line OCR confidence (0-1)
	Bounds     Bounds           `json:"bounds"`     // Line bounding box
	Color      colorops.Summary `json:"color"`      // Parsed color
}

// Result lists the literals found, in reading order.
type Result struct {
	Literals []Literal `json:"literals"`
	Lines    int       `json:"lines"` // Number of text lines recognized
}

// Reader configures OCR. The zero value reads English at 2x scale.
type Reader struct {
	Language       string  // Tesseract language code, default "eng"
	TessdataPrefix string  // Optional tessdata directory
	Scale          float64 // Upscale factor before recognition, default 2.0
}

// ReadColorLiterals recognizes text inside rect (the whole image when rect is
// empty) and returns every parseable color literal.
func (r *Reader) ReadColorLiterals(img image.Image, rect image.Rectangle) (*Result, error) {
	if rect.Empty() {
		rect = img.Bounds()
	}
	if !rect.In(img.Bounds()) {
		return nil, fmt.Errorf("region %v outside image bounds %v", rect, img.Bounds())
	}

	scale := r.Scale
	if scale <= 0 {
		scale = 2.0
	}
	language := r.Language
	if language == "" {
		language = "eng"
	}

	area := imaging.Crop(img, rect)
	if scale != 1.0 {
		w := int(float64(area.Bounds().Dx()) * scale)
		h := int(float64(area.Bounds().Dy()) * scale)
		area = imaging.Resize(area, w, h, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, area, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode region: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if r.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(r.TessdataPrefix); err != nil {
			return nil, fmt.Errorf("failed to set tessdata prefix: %w", err)
		}
	}
	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	result := &Result{Literals: []Literal{}, Lines: len(boxes)}
	for _, box := range boxes {
		line := strings.TrimSpace(box.Word)
		for _, token := range ScanLine(line) {
			c, err := colorops.Parse(token)
			if err != nil {
				continue
			}
			result.Literals = append(result.Literals, Literal{
				Text:       token,
				Line:       line,
				Confidence: float64(box.Confidence) / 100.0,
				Bounds:     toImageBounds(box.Box, rect.Min, scale),
				Color:      c.Describe(),
			})
		}
	}

	logging.Logger().Debug("color literals read",
		slog.Int("lines", result.Lines),
		slog.Int("literals", len(result.Literals)))

	return result, nil
}

var (
	functionalToken = regexp.MustCompile(`(?i)\b(?:rgba?|hsla?)\s*\([^)]*\)`)
	hexToken        = regexp.MustCompile(`#[0-9a-fA-FoO]{6}\b|#[0-9a-fA-FoO]{3}\b`)
	wordToken       = regexp.MustCompile(`\b[a-zA-Z]{3,20}\b`)
)

// ScanLine extracts color-like tokens from one line of recognized text, in
// the order they appear. Tokens are candidates only; callers still parse them.
//
// Functional notations are taken whole, hex tokens have OCR's letter O
// folded to zero, and bare words are returned lowercased as keyword
// candidates.
func ScanLine(line string) []string {
	type hit struct {
		pos  int
		text string
	}
	var hits []hit
	taken := make([]bool, len(line))
	mark := func(loc []int) {
		for i := loc[0]; i < loc[1]; i++ {
			taken[i] = true
		}
	}

	for _, loc := range functionalToken.FindAllStringIndex(line, -1) {
		text := strings.Join(strings.Fields(line[loc[0]:loc[1]]), " ")
		text = strings.Replace(text, " (", "(", 1)
		hits = append(hits, hit{loc[0], text})
		mark(loc)
	}
	for _, loc := range hexToken.FindAllStringIndex(line, -1) {
		if taken[loc[0]] {
			continue
		}
		text := strings.NewReplacer("o", "0", "O", "0").Replace(line[loc[0]:loc[1]])
		hits = append(hits, hit{loc[0], text})
		mark(loc)
	}
	for _, loc := range wordToken.FindAllStringIndex(line, -1) {
		if taken[loc[0]] {
			continue
		}
		hits = append(hits, hit{loc[0], strings.ToLower(line[loc[0]:loc[1]])})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	tokens := make([]string, len(hits))
	for i, h := range hits {
		tokens[i] = h.text
	}
	return tokens
}

// toImageBounds maps a box in the scaled crop back to original image coordinates.
func toImageBounds(box image.Rectangle, origin image.Point, scale float64) Bounds {
	return Bounds{
		X1: origin.X + int(float64(box.Min.X)/scale),
		Y1: origin.Y + int(float64(box.Min.Y)/scale),
		X2: origin.X + int(float64(box.Max.X)/scale+0.5),
		Y2: origin.Y + int(float64(box.Max.Y)/scale+0.5),
	}
}
