// Package report implements the parser's diagnostic collection: parse
// errors are accumulated, never thrown, and handed back to the caller
// attached to the parse's root node.
package report

import (
	"protoc3/internal/lexer"
	"protoc3/internal/source"
)

// ParseError is a single diagnostic raised while parsing. Token is the
// offending token, when one is available, carrying line/column for display.
type ParseError struct {
	Message string
	Token   *lexer.Token
}

// Error implements the error interface so a ParseError can be used anywhere
// a Go error is expected (e.g. wrapped with fmt.Errorf by a caller).
func (e ParseError) Error() string {
	return e.Message
}

// Line returns the offending token's line, or 0 if no token is attached.
func (e ParseError) Line() int {
	if e.Token == nil {
		return 0
	}
	return e.Token.Line
}

// Column returns the offending token's column, or 0 if no token is attached.
func (e ParseError) Column() int {
	if e.Token == nil {
		return 0
	}
	return e.Token.Column
}

// Location returns the span of source text the diagnostic points at, built
// from the offending token's line/column. A ParseError with no Token
// reports the zero Location.
func (e ParseError) Location() source.Location {
	if e.Token == nil {
		return source.Location{}
	}
	pos := source.Position{Line: e.Token.Line, Column: e.Token.Column}
	return source.NewLocation(pos, pos)
}

// Diagnostics is the per-parse error list, owned by the parser and
// transferred to the root node once parsing completes.
type Diagnostics struct {
	errors []ParseError
}

// Add records a new diagnostic. tok may be nil when no single token is
// responsible (e.g. an empty file).
func (d *Diagnostics) Add(message string, tok *lexer.Token) {
	d.errors = append(d.errors, ParseError{Message: message, Token: tok})
}

// List returns the accumulated diagnostics in discovery order.
func (d *Diagnostics) List() []ParseError {
	return d.errors
}

// Empty reports whether no diagnostics have been recorded.
func (d *Diagnostics) Empty() bool {
	return len(d.errors) == 0
}
