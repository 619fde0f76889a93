package format

import (
	"strconv"
	"strings"

	"github.com/yaklabco/godump/pkg/config"
)

// AddressDigits is the minimum number of hex digits an address renders with.
const AddressDigits = 6

// Printable ASCII bounds for the text column.
const (
	firstPrintable = 32
	lastPrintable  = 126
)

//nolint:gochecknoglobals // Read-only lookup table.
var blanks = map[config.Radix]string{
	config.RadixBinary:  strings.Repeat(" ", config.RadixBinary.Width()),
	config.RadixOctal:   strings.Repeat(" ", config.RadixOctal.Width()),
	config.RadixDecimal: strings.Repeat(" ", config.RadixDecimal.Width()),
	config.RadixHex:     strings.Repeat(" ", config.RadixHex.Width()),
}

// addressBlank stands in for the address of a line with no byte at the slot.
const addressBlank = "      "

// Blank returns the padding written in place of an absent byte. It is as
// wide as a rendered value of the same radix.
func Blank(radix config.Radix) string {
	return blanks[radix]
}

// AppendValue appends b rendered in radix: binary and octal are zero-padded
// to 8 and 3 digits, decimal is right-aligned in 3 columns, and hex is two
// lowercase zero-padded digits.
func AppendValue(dst []byte, radix config.Radix, b byte) []byte {
	switch radix {
	case config.RadixBinary:
		return appendPadded(dst, uint64(b), 2, config.RadixBinary.Width(), '0')
	case config.RadixOctal:
		return appendPadded(dst, uint64(b), 8, config.RadixOctal.Width(), '0')
	case config.RadixDecimal:
		return appendPadded(dst, uint64(b), 10, config.RadixDecimal.Width(), ' ')
	case config.RadixHex:
		return appendPadded(dst, uint64(b), 16, config.RadixHex.Width(), '0')
	default:
		return dst
	}
}

// AppendAddress appends offset as lowercase hex, zero-padded to AddressDigits.
// Offsets that need more digits are written in full.
func AppendAddress(dst []byte, offset int) []byte {
	return appendPadded(dst, uint64(offset), 16, AddressDigits, '0')
}

// AppendAddressBlank appends the padding for an absent address.
func AppendAddressBlank(dst []byte) []byte {
	return append(dst, addressBlank...)
}

// AppendASCII appends b if it is printable ASCII and a single space otherwise.
func AppendASCII(dst []byte, b byte) []byte {
	if b >= firstPrintable && b <= lastPrintable {
		return append(dst, b)
	}
	return append(dst, ' ')
}

func appendPadded(dst []byte, v uint64, base, width int, pad byte) []byte {
	var scratch [64]byte
	digits := strconv.AppendUint(scratch[:0], v, base)
	for i := len(digits); i < width; i++ {
		dst = append(dst, pad)
	}
	return append(dst, digits...)
}
