package csv

import (
	"errors"
	"testing"
)

func TestJustifier_DerivedLength(t *testing.T) {
	j := NewJustifier(DefaultJustifyOptions())

	rec, keep, err := j.Justify(Record{"a", "b"})
	if err != nil || !keep {
		t.Fatalf("first record: keep=%v err=%v, want keep with nil error", keep, err)
	}
	if !rec.Equal(Record{"a", "b"}) {
		t.Errorf("first record = %q, want unchanged", rec)
	}
	if j.Expected() != 2 {
		t.Errorf("Expected() = %d, want 2 derived from first record", j.Expected())
	}

	if _, keep, err := j.Justify(Record{"c", "d"}); err != nil || !keep {
		t.Errorf("matching record: keep=%v err=%v, want keep with nil error", keep, err)
	}

	_, keep, err = j.Justify(Record{"too", "many", "fields"})
	if keep {
		t.Error("mismatched record was kept")
	}
	var lerr *LengthError
	if !errors.As(err, &lerr) {
		t.Fatalf("error = %v, want *LengthError", err)
	}
	if lerr.Record != 2 || lerr.Got != 3 || lerr.Expected != 2 {
		t.Errorf("LengthError = %+v, want record 2, got 3, expected 2", lerr)
	}
	if !errors.Is(err, ErrFieldCount) {
		t.Errorf("LengthError does not unwrap to ErrFieldCount")
	}
}

func TestJustifier_ConfiguredLength(t *testing.T) {
	j := NewJustifier(JustifyOptions{ExpectedLength: 3})

	if _, keep, err := j.Justify(Record{"a", "b", "c"}); err != nil || !keep {
		t.Fatalf("matching record rejected: keep=%v err=%v", keep, err)
	}
	if _, _, err := j.Justify(Record{"a"}); !errors.Is(err, ErrFieldCount) {
		t.Errorf("short record error = %v, want ErrFieldCount", err)
	}
}

func TestJustifier_SkipEmpty(t *testing.T) {
	j := NewJustifier(JustifyOptions{ExpectedLength: 2, Mode: MismatchSkipEmpty})

	_, keep, err := j.Justify(Record{})
	if err != nil {
		t.Fatalf("empty record error = %v, want nil", err)
	}
	if keep {
		t.Error("empty record was kept under skip-empty")
	}

	// Non-empty mismatches are still rejected.
	if _, _, err := j.Justify(Record{"only one"}); !errors.Is(err, ErrFieldCount) {
		t.Errorf("non-empty mismatch error = %v, want ErrFieldCount", err)
	}
}

func TestJustifier_Repair(t *testing.T) {
	j := NewJustifier(JustifyOptions{ExpectedLength: 3, Mode: MismatchRepair, Filler: "-"})

	tests := []struct {
		name string
		in   Record
		want Record
	}{
		{"pad short record", Record{"a"}, Record{"a", "-", "-"}},
		{"truncate long record", Record{"a", "b", "c", "d"}, Record{"a", "b", "c"}},
		{"exact length untouched", Record{"x", "y", "z"}, Record{"x", "y", "z"}},
		{"pad empty record", Record{}, Record{"-", "-", "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, keep, err := j.Justify(tt.in)
			if err != nil || !keep {
				t.Fatalf("keep=%v err=%v, want repaired record", keep, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("repaired = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestJustifier_RepairDoesNotMutate verifies truncation copies instead of
// aliasing the input's backing array.
func TestJustifier_RepairDoesNotMutate(t *testing.T) {
	j := NewJustifier(JustifyOptions{ExpectedLength: 1, Mode: MismatchRepair})
	in := Record{"a", "b"}
	out, _, _ := j.Justify(in)
	out[0] = "mutated"
	if in[0] != "a" {
		t.Error("repair aliased the input record")
	}
}

func TestJustifier_Header(t *testing.T) {
	j := NewJustifier(DefaultJustifyOptions())

	header := j.JustifyHeader(Record{"name", "age", "city"})
	if !header.Equal(Record{"name", "age", "city"}) {
		t.Errorf("JustifyHeader altered the header: %q", header)
	}
	if j.Expected() != 3 {
		t.Fatalf("Expected() = %d after header, want 3", j.Expected())
	}

	// A later header resets the expectation.
	j.JustifyHeader(Record{"a", "b"})
	if j.Expected() != 2 {
		t.Errorf("Expected() = %d after second header, want 2", j.Expected())
	}
	if _, _, err := j.Justify(Record{"x", "y"}); err != nil {
		t.Errorf("record matching new header rejected: %v", err)
	}
}

func TestMismatchMode_String(t *testing.T) {
	modes := map[MismatchMode]string{
		MismatchError:     "error",
		MismatchSkipEmpty: "skip-empty",
		MismatchRepair:    "repair",
	}
	for m, want := range modes {
		if got := m.String(); got != want {
			t.Errorf("MismatchMode(%d).String() = %q, want %q", m, got, want)
		}
	}
}
