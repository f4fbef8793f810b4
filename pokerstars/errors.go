package pokerstars

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedLine indicates a line required by the current
	// section's grammar matched no expected pattern.
	ErrUnrecognizedLine = errors.New("pokerstars: unrecognized line")

	// ErrUnknownPlayer indicates an action or blind line named a player
	// not present in the seat list.
	ErrUnknownPlayer = errors.New("pokerstars: unknown player")

	// ErrNotSeekable is returned by Rewind when the underlying stream
	// does not implement io.Seeker.
	ErrNotSeekable = errors.New("pokerstars: stream is not seekable")
)

// ParseError is a hard parse failure. It carries the raw offending line
// and enough positional context (section, hand ordinal within the
// stream) to locate the fault in the source log. The in-progress hand
// is aborted; no partial record is returned.
type ParseError struct {
	// Section is the hand section being parsed when the failure occurred.
	Section string
	// Hand is the 1-based ordinal of the hand within the stream.
	Hand int
	// Line is the raw line that could not be handled; empty when the
	// stream ended mid-section.
	Line string
	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pokerstars: hand %d, %s section: %v (line %q)", e.Hand, e.Section, e.Err, e.Line)
}

func (e *ParseError) Unwrap() error { return e.Err }
