// Package format compiles a dump configuration into the ordered list of
// rendering elements executed for every line of output.
package format

import "github.com/yaklabco/godump/pkg/config"

// Element is one rendering instruction. The set of implementations is closed:
// Literal, AddressSlot, ValueSlot and ASCIISlot.
type Element interface {
	element()
}

// Literal is text written verbatim: separators, newlines and color markup.
type Literal struct {
	Text string
}

// AddressSlot renders the absolute stream offset of the byte at Offset
// within the current line.
type AddressSlot struct {
	Offset int
}

// ValueSlot renders the byte at Offset within the current line in Radix.
type ValueSlot struct {
	Radix  config.Radix
	Offset int
}

// ASCIISlot renders the byte at Offset within the current line as a
// printable character.
type ASCIISlot struct {
	Offset int
}

func (Literal) element()     {}
func (AddressSlot) element() {}
func (ValueSlot) element()   {}
func (ASCIISlot) element()   {}

// Sequence is a compiled, read-only list of elements.
type Sequence []Element
