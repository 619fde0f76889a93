package config

import (
	"fmt"
	"strconv"
	"strings"
)

// rangeSeparator splits the two bounds of a selection range.
const rangeSeparator = ".."

// Range selects absolute byte positions [Start, Stop) of the input stream.
// A nil Start means 0 and a nil Stop means unbounded.
//
// Stop is counted against absolute stream position and applied before
// Start, so a Start at or past Stop selects nothing.
type Range struct {
	Start *int
	Stop  *int
}

// ParseRange parses a range written as "N..N" where either N may be omitted.
func ParseRange(s string) (Range, error) {
	parts := strings.Split(s, rangeSeparator)
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("%w: %q (expecting a value matching '[0-9]*..[0-9]*')", ErrInvalidRange, s)
	}

	start, err := parseBound(parts[0])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: start: %w", ErrInvalidRange, s, err)
	}
	stop, err := parseBound(parts[1])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: stop: %w", ErrInvalidRange, s, err)
	}

	return Range{Start: start, Stop: stop}, nil
}

func parseBound(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("not a non-negative integer: %q", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Bounds returns the start and stop of the range. ok is false when Stop is unbounded.
func (r Range) Bounds() (start, stop int, ok bool) {
	if r.Start != nil {
		start = *r.Start
	}
	if r.Stop != nil {
		return start, *r.Stop, true
	}
	return start, 0, false
}

// String renders the range in the same "N..N" form ParseRange accepts.
func (r Range) String() string {
	var b strings.Builder
	if r.Start != nil {
		b.WriteString(strconv.Itoa(*r.Start))
	}
	b.WriteString(rangeSeparator)
	if r.Stop != nil {
		b.WriteString(strconv.Itoa(*r.Stop))
	}
	return b.String()
}

func (r Range) validate() error {
	if r.Start != nil && *r.Start < 0 {
		return fmt.Errorf("%w: negative start %d", ErrInvalidRange, *r.Start)
	}
	if r.Stop != nil && *r.Stop < 0 {
		return fmt.Errorf("%w: negative stop %d", ErrInvalidRange, *r.Stop)
	}
	return nil
}
