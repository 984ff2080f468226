// Package csv stringifier configuration.
package csv

// Line terminators accepted by the stringifier. The parser has no
// configuration surface: RFC 4180 fixes comma, quote, CR, and LF semantics.
const (
	// TerminatorCRLF is the RFC 4180 default line terminator.
	TerminatorCRLF = "\r\n"
	// TerminatorLF is the Unix line terminator.
	TerminatorLF = "\n"
)

// StringifyOptions configures the stringifier.
type StringifyOptions struct {
	// Terminator is the line terminator placed between records.
	// Must be TerminatorCRLF or TerminatorLF. Default: TerminatorCRLF.
	Terminator string

	// TrailingTerminator, when true, emits a terminator after every
	// record including the last, instead of only between records.
	// Default: false
	TrailingTerminator bool

	// ForceQuote, when true, quotes every field regardless of content.
	// Default: false
	ForceQuote bool
}

// DefaultStringifyOptions returns the default stringifier configuration:
// CRLF terminators, no trailing terminator, quoting only where required.
func DefaultStringifyOptions() StringifyOptions {
	return StringifyOptions{
		Terminator:         TerminatorCRLF,
		TrailingTerminator: false,
		ForceQuote:         false,
	}
}

// Validate checks that the options are valid. An empty Terminator is
// accepted and treated as the default.
func (o StringifyOptions) Validate() error {
	switch o.Terminator {
	case "", TerminatorCRLF, TerminatorLF:
		return nil
	default:
		return &OptionsError{Field: "Terminator", Message: "must be \"\\r\\n\" or \"\\n\""}
	}
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "csv: invalid " + e.Field + ": " + e.Message
}
