// Package tokenizer provides chunk-incremental CSV tokenization.
package tokenizer

import "fmt"

// Kind identifies a CSV token class.
// These correspond to the terminals in the CSV grammar (RFC 4180).
//
// Note: The tokenizer emits simple character-level tokens. The parser is
// responsible for interpreting quotes and determining field boundaries.
type Kind uint8

const (
	// KindComma is the field separator ','.
	KindComma Kind = iota
	// KindQuote is the quote delimiter '"'.
	KindQuote
	// KindCRLF is the two-character line terminator "\r\n".
	KindCRLF
	// KindCR is a bare '\r' line terminator.
	KindCR
	// KindLF is a bare '\n' line terminator.
	KindLF
	// KindText is a maximal run of characters containing none of , " \r \n.
	KindText
)

// String returns the token class name.
func (k Kind) String() string {
	switch k {
	case KindComma:
		return "Comma"
	case KindQuote:
		return "Quote"
	case KindCRLF:
		return "CRLF"
	case KindCR:
		return "CR"
	case KindLF:
		return "LF"
	case KindText:
		return "Text"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Position is a 1-based (row, column) location in the input stream.
// Rows advance on line terminators; columns count bytes from the start
// of the row (all structural CSV characters are ASCII).
type Position struct {
	Row    int
	Column int
}

// String formats the position as "row:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// Token is a single lexical unit of the CSV stream.
// Text is only populated for KindText tokens and aliases the chunk passed
// to Next; it is valid until the next Next or Flush call.
type Token struct {
	Kind Kind
	Text []byte
	Pos  Position
}
