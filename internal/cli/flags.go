package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/yaklabco/godump/pkg/config"
)

// radixValue is a pflag.Value accepting bin, oct, dec or hex.
type radixValue struct {
	radix config.Radix
}

var _ pflag.Value = (*radixValue)(nil)

func (v *radixValue) String() string { return string(v.radix) }

func (v *radixValue) Set(s string) error {
	radix, err := config.ParseRadix(s)
	if err != nil {
		return err
	}
	v.radix = radix
	return nil
}

func (v *radixValue) Type() string { return "radix" }

// rangeValue is a pflag.Value accepting N..N selection ranges.
type rangeValue struct {
	text string
}

var _ pflag.Value = (*rangeValue)(nil)

func (v *rangeValue) String() string { return v.text }

func (v *rangeValue) Set(s string) error {
	sel, err := config.ParseRange(s)
	if err != nil {
		return err
	}
	v.text = sel.String()
	return nil
}

func (v *rangeValue) Type() string { return "N..N" }

// byteListValue is a repeatable pflag.Value collecting byte values.
// Each occurrence may itself be a comma-separated list.
type byteListValue struct {
	values []int
}

var _ pflag.SliceValue = (*byteListValue)(nil)

func (v *byteListValue) String() string {
	parts := make([]string, len(v.values))
	for i, b := range v.values {
		parts[i] = strconv.Itoa(b)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (v *byteListValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		b, err := config.ParseByte(part)
		if err != nil {
			return err
		}
		v.values = append(v.values, int(b))
	}
	return nil
}

func (v *byteListValue) Type() string { return "byte" }

func (v *byteListValue) Append(s string) error { return v.Set(s) }

func (v *byteListValue) Replace(values []string) error {
	v.values = nil
	for _, s := range values {
		if err := v.Set(s); err != nil {
			return err
		}
	}
	return nil
}

func (v *byteListValue) GetSlice() []string {
	out := make([]string, len(v.values))
	for i, b := range v.values {
		out[i] = strconv.Itoa(b)
	}
	return out
}

// colorModeValue is a pflag.Value accepting auto, always or never.
type colorModeValue struct {
	mode config.ColorMode
}

var _ pflag.Value = (*colorModeValue)(nil)

func (v *colorModeValue) String() string { return string(v.mode) }

func (v *colorModeValue) Set(s string) error {
	mode := config.ColorMode(strings.ToLower(s))
	if !mode.IsValid() {
		return config.ErrInvalidColorMode
	}
	v.mode = mode
	return nil
}

func (v *colorModeValue) Type() string { return "mode" }
