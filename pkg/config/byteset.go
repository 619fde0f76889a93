package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ByteSet is a membership set over all 256 byte values.
// The zero value is an empty set.
type ByteSet struct {
	bits [4]uint64
}

// NewByteSet builds a set from byte values.
func NewByteSet(values ...byte) ByteSet {
	var s ByteSet
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// ByteSetFromInts builds a set from integers, rejecting anything outside 0..255.
func ByteSetFromInts(values []int) (ByteSet, error) {
	var s ByteSet
	for _, v := range values {
		if v < 0 || v > 0xff {
			return ByteSet{}, fmt.Errorf("%w: %d (must be 0..255)", ErrInvalidBreakByte, v)
		}
		s.Add(byte(v))
	}
	return s, nil
}

// ParseByte parses a byte value written in decimal, or in hex, octal or
// binary with an explicit 0x, 0o or 0b prefix. A leading zero alone does not
// switch to octal, so "010" is 10.
func ParseByte(s string) (byte, error) {
	digits, base := strings.TrimSpace(s), 10
	if len(digits) > 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X':
			digits, base = digits[2:], 16
		case 'o', 'O':
			digits, base = digits[2:], 8
		case 'b', 'B':
			digits, base = digits[2:], 2
		}
	}

	v, err := strconv.ParseUint(digits, base, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (must be 0..255)", ErrInvalidBreakByte, s)
	}
	return byte(v), nil
}

// Add inserts b into the set.
func (s *ByteSet) Add(b byte) {
	s.bits[b>>6] |= 1 << (b & 63)
}

// Contains reports whether b is in the set. A nil set contains nothing.
func (s *ByteSet) Contains(b byte) bool {
	if s == nil {
		return false
	}
	return s.bits[b>>6]&(1<<(b&63)) != 0
}

// Empty reports whether the set has no members.
func (s *ByteSet) Empty() bool {
	return s == nil || s.bits == [4]uint64{}
}

// Ints returns the members in ascending order.
func (s *ByteSet) Ints() []int {
	var values []int
	for i := 0; i <= 0xff; i++ {
		if s.Contains(byte(i)) {
			values = append(values, i)
		}
	}
	return values
}
