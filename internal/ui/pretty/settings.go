package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Setting is one row of the effective configuration view.
type Setting struct {
	Key    string
	Value  string
	Source string
}

// FormatSettings renders settings as an aligned key/value/source table
// under a heading.
func (s *Styles) FormatSettings(heading string, settings []Setting) string {
	keyWidth, valueWidth := 0, 0
	for _, setting := range settings {
		keyWidth = max(keyWidth, lipgloss.Width(setting.Key))
		valueWidth = max(valueWidth, lipgloss.Width(setting.Value))
	}

	var builder strings.Builder
	if heading != "" {
		builder.WriteString(s.Heading.Render(heading))
		builder.WriteString("\n")
	}

	for _, setting := range settings {
		builder.WriteString("  ")
		builder.WriteString(s.Key.Render(padRight(setting.Key, keyWidth)))
		builder.WriteString("  ")
		if setting.Source == "" {
			builder.WriteString(s.Value.Render(setting.Value))
		} else {
			builder.WriteString(s.Value.Render(padRight(setting.Value, valueWidth)))
			builder.WriteString("  ")
			builder.WriteString(s.Source.Render(setting.Source))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

// padRight pads str with spaces to width display columns.
func padRight(str string, width int) string {
	if w := lipgloss.Width(str); w < width {
		return str + strings.Repeat(" ", width-w)
	}
	return str
}
