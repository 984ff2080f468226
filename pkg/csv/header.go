// Package csv header stream helpers.
//
// Header injection and removal operate purely on stream position, with no
// knowledge of record content: the parser never tags a record as a header,
// it is a convention of the surrounding pipeline.
package csv

import "iter"

// InjectHeader returns a sequence that yields header first, then every
// record from records in order.
//
//	for rec := range csv.InjectHeader(csv.Record{"name", "age"}, scanner.Iter()) {
//	    // rec
//	}
func InjectHeader(header Record, records iter.Seq[Record]) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		if !yield(header) {
			return
		}
		for rec := range records {
			if !yield(rec) {
				return
			}
		}
	}
}

// DropHeader returns a sequence that skips exactly the first record of
// records and yields the rest in order.
func DropHeader(records iter.Seq[Record]) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		first := true
		for rec := range records {
			if first {
				first = false
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}
