package parser

import (
	"fmt"
)

// SyntaxError is a structured error which retains the position in the
// original string where parsing failed, along with what the parser expected
// to find there and what it actually found.  Malformed input is always
// rejected with one of these; there is no partial parsing or recovery.
type SyntaxError struct {
	// Character range of the offending token.
	span Span
	// Description of what was expected at this position.
	expected string
	// The offending text (or "end of input").
	found string
}

// NewSyntaxError simply constructs a new syntax error.
func NewSyntaxError(span Span, expected string, found string) *SyntaxError {
	return &SyntaxError{span, expected, found}
}

// Span returns the span of the original text on which this error is
// reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Expected returns a description of what the parser expected at the error
// position.
func (p *SyntaxError) Expected() string {
	return p.expected
}

// Found returns the text actually encountered at the error position.
func (p *SyntaxError) Found() string {
	return p.found
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d: expected %s, found %s", p.span.Start(), p.expected, p.found)
}
