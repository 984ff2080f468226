package csv

import (
	"errors"
	"testing"
)

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Row: 3, Column: 7, Err: ErrUnescapedQuote}

	want := "csv: parse error on row 3, column 7: csv: quote in non-escaped data"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrUnescapedQuote) {
		t.Error("ParseError does not unwrap to its cause")
	}
}

func TestLengthError_Message(t *testing.T) {
	err := &LengthError{Record: 4, Got: 2, Expected: 5}

	want := "csv: record 4: wrong number of fields (got 2, expected 5)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrFieldCount) {
		t.Error("LengthError does not unwrap to ErrFieldCount")
	}
}
