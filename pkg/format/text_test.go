package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/godump/pkg/config"
	"github.com/yaklabco/godump/pkg/format"
)

func TestAppendValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		radix config.Radix
		value byte
		want  string
	}{
		{config.RadixHex, 0, "00"},
		{config.RadixHex, 255, "ff"},
		{config.RadixHex, 0x0a, "0a"},
		{config.RadixDecimal, 5, "  5"},
		{config.RadixDecimal, 42, " 42"},
		{config.RadixDecimal, 255, "255"},
		{config.RadixOctal, 8, "010"},
		{config.RadixOctal, 255, "377"},
		{config.RadixBinary, 5, "00000101"},
		{config.RadixBinary, 255, "11111111"},
		{config.RadixBinary, 0, "00000000"},
	}

	for _, tc := range tests {
		t.Run(tc.radix.String()+"/"+tc.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, string(format.AppendValue(nil, tc.radix, tc.value)))
		})
	}
}

func TestBlankMatchesValueWidth(t *testing.T) {
	t.Parallel()

	for _, radix := range config.Radixes() {
		blank := format.Blank(radix)
		assert.Equal(t, strings.Repeat(" ", radix.Width()), blank, "radix %s", radix)
		for _, b := range []byte{0, 1, 99, 127, 200, 255} {
			assert.Len(t, format.AppendValue(nil, radix, b), len(blank), "radix %s byte %d", radix, b)
		}
	}
}

func TestAppendAddress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "000000", string(format.AppendAddress(nil, 0)))
	assert.Equal(t, "0000ff", string(format.AppendAddress(nil, 255)))
	assert.Equal(t, "abcdef", string(format.AppendAddress(nil, 0xabcdef)))
	assert.Equal(t, "1000000", string(format.AppendAddress(nil, 0x1000000)))
	assert.Equal(t, "      ", string(format.AppendAddressBlank(nil)))
}

func TestAppendASCII(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A", string(format.AppendASCII(nil, 65)))
	assert.Equal(t, " ", string(format.AppendASCII(nil, 7)))
	assert.Equal(t, " ", string(format.AppendASCII(nil, 32)))
	assert.Equal(t, "~", string(format.AppendASCII(nil, 126)))
	assert.Equal(t, " ", string(format.AppendASCII(nil, 127)))
	assert.Equal(t, " ", string(format.AppendASCII(nil, 0xe9)))
}

func TestAppendPreservesPrefix(t *testing.T) {
	t.Parallel()

	dst := []byte("x=")
	dst = format.AppendValue(dst, config.RadixHex, 0xab)
	assert.Equal(t, "x=ab", string(dst))
}
