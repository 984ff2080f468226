// Package csv defines the record type shared by the parser and stringifier.
package csv

import "slices"

// Record is one CSV line: an ordered, possibly empty sequence of string
// fields. A record with zero fields is "empty" and round-trips as a blank
// line. Records are immutable once emitted by the parser; ownership
// transfers fully to the consumer.
type Record []string

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r)
}

// Get returns the field value at the given 0-based index.
// Returns ("", false) if the index is out of bounds.
func (r Record) Get(index int) (string, bool) {
	if index < 0 || index >= len(r) {
		return "", false
	}
	return r[index], true
}

// IsEmpty reports whether the record has zero fields.
func (r Record) IsEmpty() bool {
	return len(r) == 0
}

// Clone returns a copy of the record with its own backing array.
func (r Record) Clone() Record {
	return slices.Clone(r)
}

// Equal reports whether two records have identical fields in order.
func (r Record) Equal(other Record) bool {
	return slices.Equal(r, other)
}
