package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/godump/pkg/config"
)

// envVarPrefix is the prefix for all godump environment variables.
const envVarPrefix = "GODUMP_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeByteList
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"ADDRESS":    {field: KeyAddress, typ: envTypeBool, help: "Show line addresses: true or false"},
	"TEXT":       {field: KeyText, typ: envTypeBool, help: "Show the ASCII column: true or false"},
	"RADIX":      {field: KeyRadix, typ: envTypeString, help: "Numerical base: bin, oct, dec or hex"},
	"SELECT":     {field: KeySelect, typ: envTypeString, help: "Byte range to show, as N..N"},
	"LINE_WIDTH": {field: KeyLineWidth, typ: envTypeInt, help: "Bytes per line (>= 1)"},
	"BREAK_ON":   {field: KeyBreakOn, typ: envTypeByteList, help: "Comma-separated byte values that end a line"},
	"COLOR":      {field: KeyColor, typ: envTypeString, help: "Color mode: auto, always or never"},
}

// LoadFromEnv reads GODUMP_* environment variables into a new layer.
// Unset or empty variables leave the corresponding field nil.
func LoadFromEnv() (*config.File, error) {
	f := &config.File{}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(f, mapping, value, envVar); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// applyEnvValue applies a single environment variable value to the layer.
func applyEnvValue(f *config.File, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(f, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(f, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(f, mapping.field, i)
	case envTypeByteList:
		values, err := parseByteList(value)
		if err != nil {
			return fmt.Errorf("invalid byte list for %s: %w", envVar, err)
		}
		f.BreakOn = values
		return nil
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseByteList parses a comma-separated list of byte values.
// Each element is trimmed of whitespace and is decimal unless it carries a
// 0x, 0o or 0b prefix.
func parseByteList(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	result := make([]int, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		b, err := config.ParseByte(trimmed)
		if err != nil {
			return nil, err
		}
		result = append(result, int(b))
	}
	return result, nil
}

// setStringField sets a string field on the layer by key.
func setStringField(f *config.File, field, value string) error {
	switch field {
	case KeyRadix:
		f.Radix = &value
	case KeySelect:
		f.Select = &value
	case KeyColor:
		mode := config.ColorMode(value)
		f.Color = &mode
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the layer by key.
func setBoolField(f *config.File, field string, value bool) error {
	switch field {
	case KeyAddress:
		f.Address = &value
	case KeyText:
		f.Text = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the layer by key.
func setIntField(f *config.File, field string, value int) error {
	switch field {
	case KeyLineWidth:
		f.LineWidth = &value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config key.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.help
	}
	return vars
}
