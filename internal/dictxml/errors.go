package dictxml

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/vvka-141/regxml/pkg/regxml"
)

// ParseError reports a dictionary document that does not follow the schema.
type ParseError struct {
	Source  string // file name, or empty for streams
	Line    int    // line number (0 if unknown)
	Element string // element being decoded, if known
	Message string
	Hint    string
	Err     error // underlying error, may be nil
}

func (e *ParseError) Error() string {
	location := e.Source
	if location == "" {
		location = "input"
	}
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", location, e.Line)
	}

	msg := fmt.Sprintf("dictionary parse error in %s: %s", location, e.Message)
	if e.Element != "" {
		msg = fmt.Sprintf("dictionary parse error in %s [element: %s]: %s", location, e.Element, e.Message)
	}
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap lets errors.Is match both regxml.ErrMalformedInput and the cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{regxml.ErrMalformedInput}
	}
	return []error{regxml.ErrMalformedInput, e.Err}
}

// wrapXMLError converts encoding/xml errors to ParseError.
func wrapXMLError(err error) error {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return err
	}

	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ParseError{
			Line:    syntaxErr.Line,
			Message: syntaxErr.Msg,
			Hint:    "Check that all XML tags are properly closed and attributes are quoted.",
			Err:     err,
		}
	}

	return &ParseError{
		Message: err.Error(),
		Hint:    "The document root must be <Baseline> in the " + Namespace + " namespace.",
		Err:     err,
	}
}
