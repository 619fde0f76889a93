package config

import (
	"bytes"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every key with its default value instead of commenting it out.
	Full bool
}

// templateHeader introduces generated configuration files.
const templateHeader = `# godump configuration
# See: https://github.com/yaklabco/godump
`

// GenerateTemplate creates a commented configuration file.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate(), nil
}

func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(templateHeader)
	buf.WriteString(`
# Show the address of the first byte of each line
# address: false

# Show the printable ASCII characters next to the values
# text: false

# Numerical base for byte values: bin, oct, dec or hex
radix: bin

# Range of absolute byte positions to show, as N..N (either side optional)
# select: ".."

# How many bytes per line
line_width: 8

# Byte values that start a new line once found (0..255)
# break_on:
#   - 10

# Colorize the address and text columns: auto, always or never
# color: auto
`)

	return buf.Bytes()
}

func generateFullTemplate() ([]byte, error) {
	body, err := DefaultFile().ToYAML()
	if err != nil {
		return nil, fmt.Errorf("generate full template: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(templateHeader)
	buf.WriteByte('\n')
	buf.Write(body)
	return buf.Bytes(), nil
}
