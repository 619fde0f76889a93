package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/godump/pkg/config"
)

func TestByteSet(t *testing.T) {
	t.Parallel()

	set := config.NewByteSet(0x0a, 0x00, 0xff, 0x0a)
	assert.True(t, set.Contains(0x0a))
	assert.True(t, set.Contains(0x00))
	assert.True(t, set.Contains(0xff))
	assert.False(t, set.Contains(0x0b))
	assert.False(t, set.Empty())
	assert.Equal(t, []int{0x00, 0x0a, 0xff}, set.Ints())
}

func TestByteSetNil(t *testing.T) {
	t.Parallel()

	var set *config.ByteSet
	assert.False(t, set.Contains(0))
	assert.True(t, set.Empty())
}

func TestByteSetFromInts(t *testing.T) {
	t.Parallel()

	set, err := config.ByteSetFromInts([]int{10, 13})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 13}, set.Ints())

	_, err = config.ByteSetFromInts([]int{256})
	require.ErrorIs(t, err, config.ErrInvalidBreakByte)

	_, err = config.ByteSetFromInts([]int{-1})
	require.ErrorIs(t, err, config.ErrInvalidBreakByte)
}

func TestParseByte(t *testing.T) {
	t.Parallel()

	tests := map[string]byte{
		"10":         10,
		"0x0a":       10,
		"0X0A":       10,
		"0o12":       10,
		"0b00001010": 10,
		"255":        255,
		"0":          0,
		"010":        10,
		"08":         8,
		"009":        9,
		" 13 ":       13,
	}
	for input, want := range tests {
		got, err := config.ParseByte(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	for _, input := range []string{"256", "-1", "x", "", "1_0", "0x_0a", "0x", "+5", "0b2", "0xfff"} {
		_, err := config.ParseByte(input)
		assert.ErrorIs(t, err, config.ErrInvalidBreakByte, "input %q", input)
	}
}
