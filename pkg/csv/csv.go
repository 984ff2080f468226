// Package csv implements a streaming codec for MIME type text/csv per
// RFC 4180: a chunk-incremental parser that converts a stream of text
// chunks into records, and a stringifier that performs the inverse
// conversion.
//
// # Streaming model
//
// The parser is push-based. Chunks of any size and boundary alignment are
// fed through Parser.Write; completed records are delivered, in input
// order, to an emit callback. Chunk boundaries are transparent: a CRLF
// pair or a quoted field may be split anywhere. Parser.Close finalizes a
// pending last record. Scanner wraps the same machinery around an
// io.Reader with a pull interface.
//
// The stringifier is the inverse stage: Stringifier.Next yields one text
// fragment per record, and the concatenation of all fragments is a valid
// RFC 4180 document under the configured options.
//
// # Errors
//
// Malformed input fails the whole parse with a *ParseError carrying the
// 1-based (row, column) of the offending token and one of three causes:
// ErrUnescapedQuote, ErrUnterminatedQuotedField, or
// ErrInvalidEscapeAfterQuote. The parser closes on the first error and
// never resynchronizes. Errors from the input reader pass through
// verbatim, never wrapped.
//
// # Thread Safety
//
// Parsers, scanners, and stringifiers share no mutable state with each
// other; each owns its buffers exclusively. Any number of pipelines may run
// concurrently, but a single instance must not be used from multiple
// goroutines.
//
// # Example usage
//
//	records, err := csv.Parse("a,b\r\nc,d\r\n")
//	if err != nil {
//	    // handle error
//	}
//	out := csv.Stringify(records, csv.DefaultStringifyOptions())
package csv

import "io"

// Parse parses a complete CSV document held in memory as a single chunk
// and returns its records. It is a convenience wrapper over Parser for
// inputs that are already strings; use Scanner or Parser directly for
// streaming sources.
//
// Example:
//
//	records, err := csv.Parse("name,age\nAlice,30\nBob,25")
//	// records: [[name age] [Alice 30] [Bob 25]]
func Parse(input string) ([]Record, error) {
	records := make([]Record, 0, 16)
	p := NewParser(func(rec Record) error {
		records = append(records, rec)
		return nil
	})
	if err := p.Write([]byte(input)); err != nil {
		return nil, err
	}
	if err := p.Close(); err != nil {
		return nil, err
	}
	return records, nil
}

// ParseReader parses CSV from an io.Reader and returns all records.
// The input is consumed incrementally in fixed-size chunks, so documents
// larger than memory still parse with a bounded working set (though the
// returned slice itself grows with the record count); prefer Scanner when
// records can be processed one at a time.
func ParseReader(reader io.Reader) ([]Record, error) {
	s := NewScanner(reader)
	records := make([]Record, 0, 16)
	for s.Scan() {
		records = append(records, s.Record())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Validate checks whether the input is a valid RFC 4180 document.
//
// Returns nil if the input is valid CSV, or a *ParseError describing the
// first offense:
//
//	if err := csv.Validate(input); err != nil {
//	    fmt.Println("Invalid CSV:", err)
//	}
func Validate(input string) error {
	p := NewParser(func(Record) error { return nil })
	if err := p.Write([]byte(input)); err != nil {
		return err
	}
	return p.Close()
}

// Format returns the format identifier for this codec.
func Format() string {
	return "CSV"
}
