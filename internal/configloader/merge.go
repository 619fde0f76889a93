package configloader

import (
	"slices"

	"github.com/yaklabco/godump/pkg/config"
)

// Field keys as they appear in YAML files and in the effective configuration view.
const (
	KeyAddress   = "address"
	KeyText      = "text"
	KeyRadix     = "radix"
	KeySelect    = "select"
	KeyLineWidth = "line_width"
	KeyBreakOn   = "break_on"
	KeyColor     = "color"
)

// Keys lists every configuration key in display order.
func Keys() []string {
	return []string{KeyAddress, KeyText, KeyRadix, KeySelect, KeyLineWidth, KeyBreakOn, KeyColor}
}

// merge combines two layers, with override taking precedence over base.
// Nil fields in override leave base untouched; a non-nil BreakOn replaces
// base's list entirely.
func merge(base, override *config.File) *config.File {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.Address != nil {
		v := *override.Address
		result.Address = &v
	}
	if override.Text != nil {
		v := *override.Text
		result.Text = &v
	}
	if override.Radix != nil {
		v := *override.Radix
		result.Radix = &v
	}
	if override.Select != nil {
		v := *override.Select
		result.Select = &v
	}
	if override.LineWidth != nil {
		v := *override.LineWidth
		result.LineWidth = &v
	}
	if override.BreakOn != nil {
		result.BreakOn = slices.Clone(override.BreakOn)
	}
	if override.Color != nil {
		v := *override.Color
		result.Color = &v
	}

	return result
}

// setKeys returns the keys a layer sets, in display order.
func setKeys(f *config.File) []string {
	if f == nil {
		return nil
	}

	var keys []string
	if f.Address != nil {
		keys = append(keys, KeyAddress)
	}
	if f.Text != nil {
		keys = append(keys, KeyText)
	}
	if f.Radix != nil {
		keys = append(keys, KeyRadix)
	}
	if f.Select != nil {
		keys = append(keys, KeySelect)
	}
	if f.LineWidth != nil {
		keys = append(keys, KeyLineWidth)
	}
	if f.BreakOn != nil {
		keys = append(keys, KeyBreakOn)
	}
	if f.Color != nil {
		keys = append(keys, KeyColor)
	}
	return keys
}
