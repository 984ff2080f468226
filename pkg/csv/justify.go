// Package csv record length justifier.
//
// The Justifier is a collaborator downstream of the parser: the one
// stateful stage that mutates records in flight. It checks every record
// against an expected field count and, depending on policy, rejects,
// drops, or repairs records that disagree.
package csv

import (
	"fmt"

	"go.uber.org/zap"
)

// MismatchMode specifies how the Justifier handles a record whose length
// differs from the expected field count.
type MismatchMode int

const (
	// MismatchError rejects the record with a *LengthError (default).
	MismatchError MismatchMode = iota
	// MismatchSkipEmpty drops records that are already empty; any other
	// mismatch is still rejected.
	MismatchSkipEmpty
	// MismatchRepair truncates long records and pads short ones with the
	// configured filler value.
	MismatchRepair
)

// String returns the string representation of MismatchMode.
func (m MismatchMode) String() string {
	switch m {
	case MismatchError:
		return "error"
	case MismatchSkipEmpty:
		return "skip-empty"
	case MismatchRepair:
		return "repair"
	default:
		return fmt.Sprintf("MismatchMode(%d)", int(m))
	}
}

// JustifyOptions configures a Justifier.
type JustifyOptions struct {
	// ExpectedLength is the required field count. 0 means the first
	// record seen (or the first header) sets it.
	ExpectedLength int

	// Mode specifies how length mismatches are handled.
	// Default: MismatchError
	Mode MismatchMode

	// Filler is the value MismatchRepair pads short records with.
	// Default: ""
	Filler string
}

// DefaultJustifyOptions returns the default configuration: length derived
// from the first record, mismatches rejected.
func DefaultJustifyOptions() JustifyOptions {
	return JustifyOptions{
		ExpectedLength: 0,
		Mode:           MismatchError,
		Filler:         "",
	}
}

// Justifier validates record lengths in a stream. It belongs to a separate
// error channel from the parser: a *LengthError never closes a Parser.
type Justifier struct {
	opts     JustifyOptions
	expected int
	index    int
}

// NewJustifier creates a Justifier with the given options.
func NewJustifier(opts JustifyOptions) *Justifier {
	return &Justifier{
		opts:     opts,
		expected: opts.ExpectedLength,
	}
}

// Justify checks one record against the expected length. It returns the
// record to pass downstream, whether to keep it, and an error for a
// rejected mismatch. The first record seen derives the expected length
// when none was configured and always passes.
func (j *Justifier) Justify(rec Record) (Record, bool, error) {
	index := j.index
	j.index++

	if j.expected == 0 {
		j.expected = len(rec)
		return rec, true, nil
	}
	if len(rec) == j.expected {
		return rec, true, nil
	}

	switch j.opts.Mode {
	case MismatchSkipEmpty:
		if rec.IsEmpty() {
			return nil, false, nil
		}
		return nil, false, &LengthError{Record: index, Got: len(rec), Expected: j.expected}

	case MismatchRepair:
		repaired := j.repair(rec)
		Logger().Warn("repaired record length",
			zap.Int("record", index),
			zap.Int("got", len(rec)),
			zap.Int("expected", j.expected))
		return repaired, true, nil

	default:
		return nil, false, &LengthError{Record: index, Got: len(rec), Expected: j.expected}
	}
}

// JustifyHeader resets the expected length to the header's field count and
// returns the header unchanged. A header validated against itself always
// passes.
func (j *Justifier) JustifyHeader(header Record) Record {
	j.expected = len(header)
	j.index++
	return header
}

// Expected returns the current expected field count; 0 until derived.
func (j *Justifier) Expected() int {
	return j.expected
}

// repair truncates or pads rec to the expected length without mutating the
// original.
func (j *Justifier) repair(rec Record) Record {
	if len(rec) > j.expected {
		return rec[:j.expected].Clone()
	}
	out := make(Record, j.expected)
	copy(out, rec)
	for i := len(rec); i < j.expected; i++ {
		out[i] = j.opts.Filler
	}
	return out
}
