package csv

import (
	"io"
	"iter"
)

const defaultChunkSize = 1 << 12 // 4096 bytes

// Scanner provides a streaming interface for reading CSV records one at a
// time from an io.Reader. It feeds fixed-size chunks through the push
// parser, so memory usage stays constant regardless of document size and no
// record is materialized before its terminating token arrives.
//
// Example usage:
//
//	file, _ := os.Open("data.csv")
//	defer file.Close()
//
//	scanner := csv.NewScanner(file).SetHasHeaders(true)
//	for scanner.Scan() {
//	    record := scanner.Record()
//	    // process record
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	reader     io.Reader
	parser     *Parser
	buf        []byte
	queue      []Record
	cur        Record
	headers    Record
	hasHeaders bool
	headerRead bool
	err        error
	done       bool
}

// NewScanner creates a new Scanner that reads CSV from the given io.Reader.
// By default, the scanner assumes no headers. Use SetHasHeaders(true) to
// treat the first record as headers.
func NewScanner(reader io.Reader) *Scanner {
	s := &Scanner{
		reader: reader,
		buf:    make([]byte, defaultChunkSize),
	}
	s.parser = NewParser(func(rec Record) error {
		s.queue = append(s.queue, rec)
		return nil
	})
	return s
}

// SetHasHeaders sets whether the first record should be treated as headers.
// If true, the first record is captured for Headers() and not delivered by
// Scan. Returns the Scanner for method chaining.
func (s *Scanner) SetHasHeaders(hasHeaders bool) *Scanner {
	s.hasHeaders = hasHeaders
	return s
}

// Scan advances the scanner to the next record.
// It returns false when there are no more records or an error occurs.
// After Scan returns false, the Err method will return any error that
// occurred.
func (s *Scanner) Scan() bool {
	for {
		if len(s.queue) > 0 {
			rec := s.queue[0]
			s.queue = s.queue[1:]
			if s.hasHeaders && !s.headerRead {
				s.headerRead = true
				s.headers = rec
				continue
			}
			s.cur = rec
			return true
		}
		if s.done {
			return false
		}
		if !s.fill() {
			return false
		}
	}
}

// fill reads one chunk from the reader into the parser. It returns false
// when scanning must stop because of an error.
func (s *Scanner) fill() bool {
	n, err := s.reader.Read(s.buf)
	if n > 0 {
		if werr := s.parser.Write(s.buf[:n]); werr != nil {
			s.err = werr
			s.done = true
			return false
		}
	}
	switch err {
	case nil:
		return true
	case io.EOF:
		// Clean end of input: finalize any pending record.
		s.done = true
		if cerr := s.parser.Close(); cerr != nil {
			s.err = cerr
			return false
		}
		return true
	default:
		// Upstream errors are forwarded verbatim, with no finalization.
		s.err = err
		s.done = true
		return false
	}
}

// Record returns the current record.
// This should only be called after Scan() returns true. The record owns its
// backing array; it remains valid after further Scan calls.
func (s *Scanner) Record() Record {
	return s.cur
}

// Err returns the error, if any, that was encountered during scanning.
// It returns nil if no error occurred or at clean EOF.
func (s *Scanner) Err() error {
	return s.err
}

// Headers returns the header record if SetHasHeaders(true) was called.
// It is available once the first record has been scanned past.
func (s *Scanner) Headers() Record {
	return s.headers
}

// Iter returns the remaining records as a single-use sequence.
// After the loop, check Err for a parse or read error.
//
//	for rec := range scanner.Iter() {
//	    // process rec
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
func (s *Scanner) Iter() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for s.Scan() {
			if !yield(s.cur) {
				return
			}
		}
	}
}
