// Package csv streaming parser.
//
// This file implements the core finite-state machine that converts an
// incoming stream of text chunks into records. The FSM consumes tokens from
// internal/tokenizer and is driven entirely by Write and Close; once a chunk
// is delivered it runs to completion synchronously before returning.
package csv

import (
	"github.com/shapestone/stream-csv/internal/tokenizer"
)

// parseState enumerates the parser's FSM states.
type parseState uint8

const (
	// stateStart is the beginning of input or the position right after a
	// completed line terminator.
	stateStart parseState = iota
	// stateAfterComma follows a field separator; a field is pending.
	stateAfterComma
	// stateAfterCR follows a bare CR terminator. It exists solely to
	// absorb a following bare LF into the same terminator as CRLF,
	// without lookahead beyond one token.
	stateAfterCR
	// stateInText is inside an unquoted field.
	stateInText
	// stateInEscapedText is inside a quoted field; terminators and commas
	// are data here.
	stateInEscapedText
	// stateAfterClosingQuote follows the quote that may close a quoted
	// field; a second quote re-enters the field as an escaped quote.
	stateAfterClosingQuote
	// stateClosed is terminal: set on fatal error, cancellation, or
	// completion. No further transitions are allowed.
	stateClosed
)

// EmitFunc receives each completed record, in the exact order its
// terminating token was consumed. Returning a non-nil error cancels the
// parse: the parser closes, releases its buffers, and returns the error
// unchanged from Write or Close.
type EmitFunc func(Record) error

// Parser is a push-based streaming CSV parser implementing RFC 4180.
//
// Feed decoded text with Write in chunks of arbitrary size and boundary
// alignment; chunk boundaries are transparent, even inside a CRLF pair or a
// quoted field. Completed records are pushed to the emit callback. Call
// Close at end of input to finalize a pending last record.
//
// The parser fails the whole operation on the first malformed token: it
// reports a location-tagged *ParseError, transitions to its terminal state,
// and consumes no further input. It never resynchronizes mid-stream.
//
// Each Parser owns an independent state/position/buffer triple, so multiple
// parses may run concurrently in separate pipelines without coordination.
// A single Parser must not be used from multiple goroutines.
type Parser struct {
	tok    *tokenizer.Tokenizer
	state  parseState
	field  []byte // pending field buffer
	record Record // pending record buffer
	emit   EmitFunc
	err    error
}

// NewParser creates a Parser that pushes completed records to emit.
//
// Example:
//
//	var records []csv.Record
//	p := csv.NewParser(func(r csv.Record) error {
//	    records = append(records, r)
//	    return nil
//	})
//	p.Write([]byte("a,b\r\nc"))
//	p.Write([]byte(",d\r\n"))
//	p.Close()
func NewParser(emit EmitFunc) *Parser {
	return &Parser{
		tok:   tokenizer.New(),
		state: stateStart,
		emit:  emit,
	}
}

// Write consumes one chunk of decoded text. It returns nil if the chunk was
// consumed cleanly, a *ParseError if the chunk contained a malformed token,
// or the emit callback's error if the downstream canceled. After any error,
// and after Close, further writes return the same error or ErrClosed.
func (p *Parser) Write(chunk []byte) error {
	if p.err != nil {
		return p.err
	}
	if p.state == stateClosed {
		return ErrClosed
	}
	if err := p.tok.Next(chunk, p.step); err != nil {
		return p.fail(err)
	}
	return nil
}

// Close signals end of input. Any pending record is finalized and emitted,
// unless nothing is pending and the parser sits at a record boundary: a
// document ending at a line terminator produces no trailing empty record.
// Close inside a quoted field reports ErrUnterminatedQuotedField.
func (p *Parser) Close() error {
	if p.err != nil {
		return p.err
	}
	if p.state == stateClosed {
		return nil
	}
	// Resolve a chunk-final CR held by the tokenizer before finalizing.
	if err := p.tok.Flush(p.step); err != nil {
		return p.fail(err)
	}

	switch p.state {
	case stateStart, stateAfterCR:
		// Nothing pending; no trailing empty record.
	case stateAfterComma, stateInText, stateAfterClosingQuote:
		p.pushField()
		if err := p.next(); err != nil {
			return p.fail(err)
		}
	case stateInEscapedText:
		pos := p.tok.Position()
		return p.fail(&ParseError{Row: pos.Row, Column: pos.Column, Err: ErrUnterminatedQuotedField})
	}

	p.state = stateClosed
	p.field = nil
	p.record = nil
	return nil
}

// step applies one token to the FSM. It is the transition table from the
// design: rows are states, columns are token classes.
func (p *Parser) step(tok tokenizer.Token) error {
	switch p.state {
	case stateStart, stateAfterCR:
		switch tok.Kind {
		case tokenizer.KindComma:
			p.pushField()
			p.state = stateAfterComma
		case tokenizer.KindQuote:
			p.state = stateInEscapedText
		case tokenizer.KindLF:
			if p.state == stateAfterCR {
				// Second half of a CR LF pair split across tokens;
				// absorbed into the terminator already handled.
				p.state = stateStart
				return nil
			}
			p.state = stateStart
			return p.next()
		case tokenizer.KindCR, tokenizer.KindCRLF:
			return p.terminate(tok.Kind)
		case tokenizer.KindText:
			p.field = append(p.field, tok.Text...)
			p.state = stateInText
		}

	case stateAfterComma:
		switch tok.Kind {
		case tokenizer.KindComma:
			p.pushField()
		case tokenizer.KindQuote:
			p.state = stateInEscapedText
		case tokenizer.KindCR, tokenizer.KindCRLF, tokenizer.KindLF:
			p.pushField()
			return p.terminate(tok.Kind)
		case tokenizer.KindText:
			p.field = append(p.field, tok.Text...)
			p.state = stateInText
		}

	case stateInText:
		switch tok.Kind {
		case tokenizer.KindComma:
			p.pushField()
			p.state = stateAfterComma
		case tokenizer.KindQuote:
			return &ParseError{Row: tok.Pos.Row, Column: tok.Pos.Column, Err: ErrUnescapedQuote}
		case tokenizer.KindCR, tokenizer.KindCRLF, tokenizer.KindLF:
			p.pushField()
			return p.terminate(tok.Kind)
		case tokenizer.KindText:
			p.field = append(p.field, tok.Text...)
		}

	case stateInEscapedText:
		switch tok.Kind {
		case tokenizer.KindComma:
			p.field = append(p.field, ',')
		case tokenizer.KindQuote:
			p.state = stateAfterClosingQuote
		case tokenizer.KindCRLF:
			p.field = append(p.field, '\r', '\n')
		case tokenizer.KindCR:
			p.field = append(p.field, '\r')
		case tokenizer.KindLF:
			p.field = append(p.field, '\n')
		case tokenizer.KindText:
			p.field = append(p.field, tok.Text...)
		}

	case stateAfterClosingQuote:
		switch tok.Kind {
		case tokenizer.KindComma:
			p.pushField()
			p.state = stateAfterComma
		case tokenizer.KindQuote:
			// Doubled quote: a literal '"' inside the quoted field.
			p.field = append(p.field, '"')
			p.state = stateInEscapedText
		case tokenizer.KindCR, tokenizer.KindCRLF, tokenizer.KindLF:
			p.pushField()
			return p.terminate(tok.Kind)
		case tokenizer.KindText:
			return &ParseError{Row: tok.Pos.Row, Column: tok.Pos.Column, Err: ErrInvalidEscapeAfterQuote}
		}
	}
	return nil
}

// terminate emits the pending record for a line terminator token and moves
// to the state matching the terminator: AfterCR keeps a bare CR open so a
// following LF can be absorbed.
func (p *Parser) terminate(kind tokenizer.Kind) error {
	if kind == tokenizer.KindCR {
		p.state = stateAfterCR
	} else {
		p.state = stateStart
	}
	return p.next()
}

// pushField appends the pending field buffer to the pending record and
// resets the buffer.
func (p *Parser) pushField() {
	p.record = append(p.record, string(p.field))
	p.field = p.field[:0]
}

// next emits the pending record downstream and clears it atomically. The
// emitted record owns its backing array; the parser never touches it again.
func (p *Parser) next() error {
	rec := p.record
	if rec == nil {
		rec = Record{}
	}
	p.record = nil
	return p.emit(rec)
}

// fail closes the parser, releases its buffers, and records err as the
// sticky result of every subsequent call.
func (p *Parser) fail(err error) error {
	p.state = stateClosed
	p.field = nil
	p.record = nil
	p.err = err
	return err
}
