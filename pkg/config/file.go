package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// File is one layer of configuration as read from a YAML file, the
// environment or the command line. Nil fields are unset and never override
// a lower-precedence layer.
type File struct {
	Address   *bool      `yaml:"address,omitempty"`
	Text      *bool      `yaml:"text,omitempty"`
	Radix     *string    `yaml:"radix,omitempty"`
	Select    *string    `yaml:"select,omitempty"`
	LineWidth *int       `yaml:"line_width,omitempty"`
	BreakOn   []int      `yaml:"break_on,omitempty"`
	Color     *ColorMode `yaml:"color,omitempty"`
}

// DefaultFile returns a fully populated layer holding the built-in defaults.
func DefaultFile() *File {
	address, text := false, false
	radix := string(DefaultRadix)
	sel := Range{}.String()
	width := DefaultLineWidth
	color := ColorAuto
	return &File{
		Address:   &address,
		Text:      &text,
		Radix:     &radix,
		Select:    &sel,
		LineWidth: &width,
		BreakOn:   []int{},
		Color:     &color,
	}
}

// FromYAML parses a configuration layer from YAML bytes.
// Unknown keys are rejected so typos surface instead of being ignored.
func FromYAML(data []byte) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		if errors.Is(err, io.EOF) {
			return f, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return f, nil
}

// ToYAML serializes the layer to YAML format.
func (f *File) ToYAML() ([]byte, error) {
	if f == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(f); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// Clone returns a deep copy of the layer.
func (f *File) Clone() *File {
	if f == nil {
		return nil
	}
	clone := &File{
		Address:   clonePtr(f.Address),
		Text:      clonePtr(f.Text),
		Radix:     clonePtr(f.Radix),
		Select:    clonePtr(f.Select),
		LineWidth: clonePtr(f.LineWidth),
		Color:     clonePtr(f.Color),
	}
	if f.BreakOn != nil {
		clone.BreakOn = slices.Clone(f.BreakOn)
	}
	return clone
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// ColorMode returns the configured color mode, defaulting to auto.
func (f *File) ColorMode() ColorMode {
	if f == nil || f.Color == nil {
		return ColorAuto
	}
	return *f.Color
}

// Resolve turns the layer into a Config, starting from NewConfig for unset
// fields. Dump output is colored only for ColorAlways; auto and never both
// give plain output, so terminal detection only affects help and summaries.
func (f *File) Resolve() (Config, error) {
	cfg := NewConfig()
	if f == nil {
		return cfg, nil
	}

	if f.Address != nil {
		cfg.Address = *f.Address
	}
	if f.Text != nil {
		cfg.Text = *f.Text
	}
	if f.Radix != nil {
		radix, err := ParseRadix(*f.Radix)
		if err != nil {
			return Config{}, err
		}
		cfg.Radix = radix
	}
	if f.Select != nil {
		sel, err := ParseRange(*f.Select)
		if err != nil {
			return Config{}, err
		}
		cfg.Select = sel
	}
	if f.LineWidth != nil {
		cfg.LineWidth = *f.LineWidth
	}
	breakOn, err := ByteSetFromInts(f.BreakOn)
	if err != nil {
		return Config{}, err
	}
	cfg.BreakOn = breakOn

	mode := f.ColorMode()
	if !mode.IsValid() {
		return Config{}, fmt.Errorf("%w: %q (expected auto, always or never)", ErrInvalidColorMode, mode)
	}
	cfg.Colored = mode == ColorAlways

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
