// Package csv stringifier.
//
// The stringifier is the inverse transform of the parser: it converts a
// sequence of records into text fragments whose concatenation is a valid
// RFC 4180 document under the configured options. It is stateless except
// for a running record index and performs no field-count validation; length
// agreement is the Justifier's responsibility.
package csv

import (
	"bufio"
	"io"
	"strings"
)

const defaultBufferSize = 1 << 12 // 4096 bytes

// Stringifier converts records to text fragments one at a time.
//
// With TrailingTerminator disabled (the default), the terminator is emitted
// as a separator before each record except the first; with it enabled, the
// terminator follows every record including the last.
type Stringifier struct {
	opts  StringifyOptions
	index int
}

// NewStringifier creates a Stringifier. An empty Terminator in opts is
// normalized to TerminatorCRLF; call opts.Validate first to reject anything
// else.
func NewStringifier(opts StringifyOptions) *Stringifier {
	if opts.Terminator == "" {
		opts.Terminator = TerminatorCRLF
	}
	return &Stringifier{opts: opts}
}

// Next returns the text fragment for the next record. An empty record
// produces a zero-length line. The fragments concatenate, in order, to a
// valid CSV document.
func (s *Stringifier) Next(rec Record) string {
	var sb strings.Builder
	if s.opts.TrailingTerminator {
		s.encode(&sb, rec)
		sb.WriteString(s.opts.Terminator)
	} else {
		if s.index > 0 {
			sb.WriteString(s.opts.Terminator)
		}
		s.encode(&sb, rec)
	}
	s.index++
	return sb.String()
}

// Reset rewinds the record index so the Stringifier can start a new
// document.
func (s *Stringifier) Reset() {
	s.index = 0
}

// encode writes one record without terminators.
func (s *Stringifier) encode(sb *strings.Builder, rec Record) {
	for i, field := range rec {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeField(sb, field, s.opts.ForceQuote)
	}
}

// writeField writes a single field with RFC 4180 quoting. A field is
// quoted if forced or if it contains a comma, quote, CR, or LF; internal
// quotes are doubled.
func writeField(sb *strings.Builder, field string, force bool) {
	if !force && !strings.ContainsAny(field, ",\"\r\n") {
		sb.WriteString(field)
		return
	}
	sb.WriteByte('"')
	for i := 0; i < len(field); i++ {
		if field[i] == '"' {
			sb.WriteString(`""`)
		} else {
			sb.WriteByte(field[i])
		}
	}
	sb.WriteByte('"')
}

// Stringify converts a record sequence to a CSV string in one call.
//
// Example:
//
//	out := csv.Stringify([]csv.Record{{"a", "b,c"}, {`d"e`, "f"}}, csv.DefaultStringifyOptions())
//	// out: a,"b,c"\r\nd""e,f
func Stringify(records []Record, opts StringifyOptions) string {
	s := NewStringifier(opts)
	var sb strings.Builder
	for _, rec := range records {
		sb.WriteString(s.Next(rec))
	}
	return sb.String()
}

// Writer emits records as CSV text to an io.Writer through an internal
// buffer. Call Flush when done to drain the buffer.
type Writer struct {
	dst *bufio.Writer
	str *Stringifier
	err error
}

// NewWriter creates a buffered Writer with the given options.
func NewWriter(w io.Writer, opts StringifyOptions) *Writer {
	return &Writer{
		dst: bufio.NewWriterSize(w, defaultBufferSize),
		str: NewStringifier(opts),
	}
}

// Write emits a single record. The first error encountered is sticky and
// returned by all subsequent calls.
func (w *Writer) Write(rec Record) error {
	if w.err != nil {
		return w.err
	}
	if _, err := w.dst.WriteString(w.str.Next(rec)); err != nil {
		w.err = err
	}
	return w.err
}

// Flush drains buffered output to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.dst.Flush()
	return w.err
}
