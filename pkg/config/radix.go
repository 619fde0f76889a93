package config

import (
	"fmt"
	"strings"
)

// Radix is the numeral base a byte value is rendered in.
type Radix string

const (
	RadixBinary  Radix = "bin"
	RadixOctal   Radix = "oct"
	RadixDecimal Radix = "dec"
	RadixHex     Radix = "hex"
)

// Radixes lists every supported radix in display order.
func Radixes() []Radix {
	return []Radix{RadixBinary, RadixOctal, RadixDecimal, RadixHex}
}

// IsValid returns true if r is one of the supported radixes.
func (r Radix) IsValid() bool {
	return r.Width() > 0
}

// Width is the number of characters a rendered byte occupies.
// Blank padding for an absent byte has the same width.
func (r Radix) Width() int {
	switch r {
	case RadixBinary:
		return 8
	case RadixOctal, RadixDecimal:
		return 3
	case RadixHex:
		return 2
	default:
		return 0
	}
}

// ParseRadix parses a radix name. Long names ("binary", "hexadecimal", ...)
// are accepted as aliases.
func ParseRadix(s string) (Radix, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bin", "binary", "2":
		return RadixBinary, nil
	case "oct", "octal", "8":
		return RadixOctal, nil
	case "dec", "decimal", "10":
		return RadixDecimal, nil
	case "hex", "hexadecimal", "16":
		return RadixHex, nil
	default:
		return "", fmt.Errorf("%w: %q (expected bin, oct, dec or hex)", ErrInvalidRadix, s)
	}
}

// String implements fmt.Stringer.
func (r Radix) String() string {
	return string(r)
}
