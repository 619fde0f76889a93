// Package config defines core configuration types for godump.
// These types are pure data structures; loading and layering live in internal/configloader.
package config

import (
	"errors"
	"fmt"
)

// Default values taken by a dump when nothing else is configured.
const (
	DefaultRadix     = RadixBinary
	DefaultLineWidth = 8
)

// Sentinel validation errors.
var (
	ErrInvalidRadix     = errors.New("invalid radix")
	ErrInvalidRange     = errors.New("invalid range")
	ErrInvalidLineWidth = errors.New("invalid line width")
	ErrInvalidBreakByte = errors.New("invalid break byte")
	ErrInvalidColorMode = errors.New("invalid color mode")
)

// ColorMode controls whether dump output carries ANSI color markup.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known modes.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the resolved configuration of a single dump run.
// It is immutable once handed to the format compiler and renderer.
type Config struct {
	// Address shows the stream offset of the first byte of each line.
	Address bool

	// Text shows the printable ASCII side column.
	Text bool

	// Radix is the numeral base used for byte values.
	Radix Radix

	// Select restricts the dump to a sub-range of absolute stream positions.
	Select Range

	// LineWidth is the maximum number of bytes per line (>= 1).
	LineWidth int

	// BreakOn holds sentinel byte values that end a line early.
	BreakOn ByteSet

	// Colored wraps the address and text columns in ANSI color markup.
	Colored bool
}

// NewConfig returns a Config with the defaults of the command line tool.
func NewConfig() Config {
	return Config{
		Radix:     DefaultRadix,
		LineWidth: DefaultLineWidth,
	}
}

// Validate reports the first problem that would make the config unusable.
func (c Config) Validate() error {
	if !c.Radix.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRadix, c.Radix)
	}
	if c.LineWidth < 1 {
		return fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidLineWidth, c.LineWidth)
	}
	return c.Select.validate()
}
