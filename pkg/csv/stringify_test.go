package csv

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestStringify(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		opts    StringifyOptions
		want    string
	}{
		{
			name:    "quoting only where needed",
			records: []Record{{"a", "b,c"}, {`d"e`, "f"}},
			opts:    DefaultStringifyOptions(),
			want:    "a,\"b,c\"\r\nd\"\"e,f",
		},
		{
			name:    "no records",
			records: nil,
			opts:    DefaultStringifyOptions(),
			want:    "",
		},
		{
			name:    "single plain record",
			records: []Record{{"a", "b"}},
			opts:    DefaultStringifyOptions(),
			want:    "a,b",
		},
		{
			name:    "LF terminator",
			records: []Record{{"a"}, {"b"}},
			opts:    StringifyOptions{Terminator: TerminatorLF},
			want:    "a\nb",
		},
		{
			name:    "trailing terminator after every record",
			records: []Record{{"a"}, {"b"}},
			opts:    StringifyOptions{Terminator: TerminatorLF, TrailingTerminator: true},
			want:    "a\nb\n",
		},
		{
			name:    "force quote",
			records: []Record{{"a", ""}},
			opts:    StringifyOptions{Terminator: TerminatorCRLF, ForceQuote: true},
			want:    `"a",""`,
		},
		{
			name:    "empty record is an empty line",
			records: []Record{{}, {"a"}},
			opts:    DefaultStringifyOptions(),
			want:    "\r\na",
		},
		{
			name:    "field with newline is quoted",
			records: []Record{{"a\nb"}},
			opts:    DefaultStringifyOptions(),
			want:    "\"a\nb\"",
		},
		{
			name:    "field with CR is quoted",
			records: []Record{{"a\rb"}},
			opts:    DefaultStringifyOptions(),
			want:    "\"a\rb\"",
		},
		{
			name:    "empty terminator means CRLF",
			records: []Record{{"a"}, {"b"}},
			opts:    StringifyOptions{},
			want:    "a\r\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stringify(tt.records, tt.opts)
			if got != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringifier_Reset(t *testing.T) {
	s := NewStringifier(DefaultStringifyOptions())
	if got := s.Next(Record{"a"}); got != "a" {
		t.Fatalf("first Next = %q, want %q", got, "a")
	}
	if got := s.Next(Record{"b"}); got != "\r\nb" {
		t.Fatalf("second Next = %q, want %q", got, "\r\nb")
	}
	s.Reset()
	if got := s.Next(Record{"c"}); got != "c" {
		t.Errorf("Next after Reset = %q, want %q", got, "c")
	}
}

func TestStringifyOptions_Validate(t *testing.T) {
	valid := []string{"", TerminatorCRLF, TerminatorLF}
	for _, term := range valid {
		opts := StringifyOptions{Terminator: term}
		if err := opts.Validate(); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", term, err)
		}
	}

	opts := StringifyOptions{Terminator: "\r"}
	err := opts.Validate()
	if err == nil {
		t.Fatal("Validate(\"\\r\") = nil, want error")
	}
	var oerr *OptionsError
	if !errors.As(err, &oerr) {
		t.Fatalf("error %v is not an *OptionsError", err)
	}
	if oerr.Field != "Terminator" {
		t.Errorf("OptionsError.Field = %q, want %q", oerr.Field, "Terminator")
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, StringifyOptions{Terminator: TerminatorLF, TrailingTerminator: true})

	for _, rec := range []Record{{"a", "b"}, {"c,d", "e"}} {
		if err := w.Write(rec); err != nil {
			t.Fatalf("Write error: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}

	want := "a,b\n\"c,d\",e\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestRoundTrip verifies stringify followed by parse reproduces the record
// sequence exactly.
func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		opts    StringifyOptions
	}{
		{
			name:    "plain fields default options",
			records: []Record{{"a", "b"}, {"c", "d"}},
			opts:    DefaultStringifyOptions(),
		},
		{
			name:    "pathological characters",
			records: []Record{{"a,b", `c"d`}, {"e\r\nf", "g\nh"}},
			opts:    DefaultStringifyOptions(),
		},
		{
			name:    "LF convention",
			records: []Record{{"x"}, {"y", "z"}},
			opts:    StringifyOptions{Terminator: TerminatorLF},
		},
		{
			name:    "empty records and empty fields force-quoted trailing",
			records: []Record{{}, {""}, {"", ""}, {"a"}, {}},
			opts:    StringifyOptions{Terminator: TerminatorCRLF, TrailingTerminator: true, ForceQuote: true},
		},
		{
			name:    "empty record mid-stream default options",
			records: []Record{{"a"}, {}, {"b"}},
			opts:    DefaultStringifyOptions(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := Stringify(tt.records, tt.opts)
			got, err := Parse(text)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", text, err)
			}
			compareRecords(t, got, tt.records)
		})
	}
}

// TestQuotingIdempotence verifies fields without special characters are
// emitted unquoted, and that the quoting choice never changes parsed
// content.
func TestQuotingIdempotence(t *testing.T) {
	plain := Stringify([]Record{{"abc", "def"}}, DefaultStringifyOptions())
	if strings.Contains(plain, `"`) {
		t.Errorf("plain fields were quoted: %q", plain)
	}

	forced := Stringify([]Record{{"abc", "def"}}, StringifyOptions{Terminator: TerminatorCRLF, ForceQuote: true})
	gotPlain, err := Parse(plain)
	if err != nil {
		t.Fatal(err)
	}
	gotForced, err := Parse(forced)
	if err != nil {
		t.Fatal(err)
	}
	compareRecords(t, gotForced, gotPlain)
}
