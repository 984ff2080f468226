package tokenizer

// Tokenizer scans CSV text delivered as arbitrary chunks and emits tokens
// with maximal-munch matching, in this priority order: comma, quote, CRLF,
// bare CR, bare LF, and runs of field text.
//
// Chunk boundaries are transparent. A chunk ending in '\r' is ambiguous
// (it may be the first half of a CRLF), so that CR is held until the next
// chunk or Flush resolves it. A text run split by a chunk boundary is
// emitted as two consecutive KindText tokens; no token class can be
// misclassified that way, and the consumer's field buffer makes the split
// unobservable.
//
// The zero value is not ready for use; call New.
type Tokenizer struct {
	row     int
	col     int
	heldCR  bool
	heldPos Position
}

// EmitFunc receives each token as it is recognized. Returning a non-nil
// error stops the scan and propagates the error to the caller.
type EmitFunc func(Token) error

// New creates a Tokenizer positioned at row 1, column 1.
func New() *Tokenizer {
	return &Tokenizer{row: 1, col: 1}
}

// Position returns the position of the next character to be consumed.
// After Flush this is the position immediately past the last token, which
// is where end-of-input errors are reported.
func (t *Tokenizer) Position() Position {
	if t.heldCR {
		return t.heldPos
	}
	return Position{Row: t.row, Column: t.col}
}

// Next scans one chunk and emits every complete token it contains.
// An empty chunk is a no-op; a held CR survives it.
func (t *Tokenizer) Next(chunk []byte, emit EmitFunc) error {
	if len(chunk) == 0 {
		return nil
	}

	i := 0
	if t.heldCR {
		t.heldCR = false
		tok := Token{Kind: KindCR, Pos: t.heldPos}
		if chunk[0] == '\n' {
			tok.Kind = KindCRLF
			i = 1
		}
		t.row++
		t.col = 1
		if err := emit(tok); err != nil {
			return err
		}
	}

	for i < len(chunk) {
		start := Position{Row: t.row, Column: t.col}

		switch chunk[i] {
		case ',':
			i++
			t.col++
			if err := emit(Token{Kind: KindComma, Pos: start}); err != nil {
				return err
			}

		case '"':
			i++
			t.col++
			if err := emit(Token{Kind: KindQuote, Pos: start}); err != nil {
				return err
			}

		case '\n':
			i++
			t.row++
			t.col = 1
			if err := emit(Token{Kind: KindLF, Pos: start}); err != nil {
				return err
			}

		case '\r':
			if i == len(chunk)-1 {
				// Might be the start of a CRLF; wait for the next chunk.
				t.heldCR = true
				t.heldPos = start
				return nil
			}
			kind := KindCR
			i++
			if chunk[i] == '\n' {
				kind = KindCRLF
				i++
			}
			t.row++
			t.col = 1
			if err := emit(Token{Kind: kind, Pos: start}); err != nil {
				return err
			}

		default:
			j := i + 1
			for j < len(chunk) && !structural(chunk[j]) {
				j++
			}
			t.col += j - i
			if err := emit(Token{Kind: KindText, Text: chunk[i:j], Pos: start}); err != nil {
				return err
			}
			i = j
		}
	}
	return nil
}

// Flush resolves a held trailing CR as a bare CR token. It must be called
// exactly once, at end of input, before reading Position for a final error.
func (t *Tokenizer) Flush(emit EmitFunc) error {
	if !t.heldCR {
		return nil
	}
	t.heldCR = false
	pos := t.heldPos
	t.row++
	t.col = 1
	return emit(Token{Kind: KindCR, Pos: pos})
}

// structural reports whether b delimits a text run.
func structural(b byte) bool {
	return b == ',' || b == '"' || b == '\r' || b == '\n'
}
