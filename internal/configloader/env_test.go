package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/godump/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GODUMP_ADDRESS", "true")
	t.Setenv("GODUMP_TEXT", "0")
	t.Setenv("GODUMP_RADIX", "hex")
	t.Setenv("GODUMP_SELECT", "4..")
	t.Setenv("GODUMP_LINE_WIDTH", "12")
	t.Setenv("GODUMP_BREAK_ON", "0x0a,,0")
	t.Setenv("GODUMP_COLOR", "never")

	f, err := LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, *f.Address)
	assert.False(t, *f.Text)
	assert.Equal(t, "hex", *f.Radix)
	assert.Equal(t, "4..", *f.Select)
	assert.Equal(t, 12, *f.LineWidth)
	assert.Equal(t, []int{10, 0}, f.BreakOn)
	assert.Equal(t, config.ColorNever, *f.Color)
}

func TestLoadFromEnvUnset(t *testing.T) {
	for suffix := range envMappings {
		t.Setenv(envVarPrefix+suffix, "")
	}

	f, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, &config.File{}, f)
}

func TestLoadFromEnvInvalid(t *testing.T) {
	tests := map[string]string{
		"GODUMP_ADDRESS":    "yes please",
		"GODUMP_LINE_WIDTH": "wide",
		"GODUMP_BREAK_ON":   "10,300",
	}

	for envVar, value := range tests {
		t.Run(envVar, func(t *testing.T) {
			t.Setenv(envVar, value)

			_, err := LoadFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), envVar)
		})
	}
}

func TestLoadFromEnvBreakOnIsDecimal(t *testing.T) {
	t.Setenv("GODUMP_BREAK_ON", "010, 08,0x0d")

	f, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, []int{10, 8, 13}, f.BreakOn)

	t.Setenv("GODUMP_BREAK_ON", "1_0")
	_, err = LoadFromEnv()
	require.ErrorIs(t, err, config.ErrInvalidBreakByte)
}

func TestEnvVarNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GODUMP_LINE_WIDTH", GetEnvVarName(KeyLineWidth))
	assert.Equal(t, "GODUMP_BREAK_ON", GetEnvVarName(KeyBreakOn))
	assert.Empty(t, GetEnvVarName("nope"))

	vars := ListEnvVars()
	assert.Len(t, vars, len(Keys()))
	for _, key := range Keys() {
		assert.Contains(t, vars, GetEnvVarName(key))
	}
}
