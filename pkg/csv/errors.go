// Package csv provides error types for streaming CSV parsing.
package csv

import (
	"errors"
	"fmt"
)

// Common parsing errors. Each is the cause carried by a ParseError.
var (
	// ErrUnescapedQuote indicates a quote encountered while scanning
	// unquoted field text.
	ErrUnescapedQuote = errors.New("csv: quote in non-escaped data")

	// ErrUnterminatedQuotedField indicates end of input was reached while
	// inside a quoted field.
	ErrUnterminatedQuotedField = errors.New("csv: closing quote is missing")

	// ErrInvalidEscapeAfterQuote indicates a character other than a comma,
	// quote, line terminator, or end of input immediately followed a
	// closing quote.
	ErrInvalidEscapeAfterQuote = errors.New("csv: invalid escape sequence")

	// ErrClosed is returned by Write and Close after the parser has
	// reached its terminal state.
	ErrClosed = errors.New("csv: parser is closed")

	// ErrFieldCount indicates a record has the wrong number of fields.
	// It is the cause carried by a LengthError and belongs to the
	// Justifier, not the parser.
	ErrFieldCount = errors.New("csv: wrong number of fields")
)

// ParseError reports an unrecoverable parse failure with the 1-based
// (row, column) of the offending token. The parser closes on the first
// ParseError and consumes no further input.
type ParseError struct {
	// Row is the row where the error occurred (1-indexed).
	Row int
	// Column is the column where the error occurred (1-indexed, bytes).
	Column int
	// Err is the underlying cause, one of the sentinel parsing errors.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("csv: parse error on row %d, column %d: %v", e.Row, e.Column, e.Err)
}

// Unwrap returns the underlying cause so ParseError participates in
// errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// LengthError reports a record whose field count does not match the
// Justifier's expected length. It is a separate error channel from the
// parser's ParseError.
type LengthError struct {
	// Record is the 0-based index of the offending record in the stream.
	Record int
	// Got is the number of fields the record carried.
	Got int
	// Expected is the configured or derived field count.
	Expected int
}

// Error returns a formatted length-mismatch message.
func (e *LengthError) Error() string {
	return fmt.Sprintf("csv: record %d: wrong number of fields (got %d, expected %d)",
		e.Record, e.Got, e.Expected)
}

// Unwrap returns ErrFieldCount.
func (e *LengthError) Unwrap() error {
	return ErrFieldCount
}
