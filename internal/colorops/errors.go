package colorops

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrParse matches every *ParseError via errors.Is.
	ErrParse = errors.New("unable to parse color")

	// ErrConversion matches every *ConversionError via errors.Is.
	ErrConversion = errors.New("color conversion failed")
)

// ParseError reports input that matches none of the supported color grammars,
// or a record that lacks required fields.
type ParseError struct {
	Input  string // The offending input, as text
	Reason string // Human-readable description of the failure
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse color from %q: %s", e.Input, e.Reason)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConversionError reports a component that is not a finite number, or that
// falls outside its valid range, during RGB/HSL conversion.
type ConversionError struct {
	Field string  // Component name: "h", "s", "l", "a", "r", "g", "b" or "amount"
	Value float64 // The rejected value
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("color conversion failed: invalid %s component %s",
		e.Field, strconv.FormatFloat(e.Value, 'g', -1, 64))
}

// Is reports whether target is ErrConversion.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}
