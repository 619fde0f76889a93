package cli

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/godump/internal/ui/pretty"
)

// argumentsAnnotation holds the "Arguments:" help section of a command,
// one "NAME  description" entry per line.
const argumentsAnnotation = "godump/arguments"

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	Argument    lipgloss.Style
	Description lipgloss.Style
	Dim         lipgloss.Style
}

// NewHelpStyles creates help styles based on color mode.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{
			Command:     plain,
			Heading:     plain,
			Subcommand:  plain,
			Flag:        plain,
			Argument:    plain,
			Description: plain,
			Dim:         plain,
		}
	}
	return &HelpStyles{
		Command:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Argument:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Description: lipgloss.NewStyle(),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter provides styled help output for Cobra commands.
// The color mode is read each time help is rendered, so --color given on the
// same command line as --help takes effect.
type HelpFormatter struct {
	colorMode func() string
}

// NewHelpFormatter creates a help formatter that asks colorMode for the
// current auto/always/never setting.
func NewHelpFormatter(colorMode func() string) *HelpFormatter {
	return &HelpFormatter{colorMode: colorMode}
}

func (h *HelpFormatter) stylesFor(cmd *cobra.Command) *HelpStyles {
	mode := "auto"
	if h.colorMode != nil {
		mode = h.colorMode()
	}
	return NewHelpStyles(pretty.IsColorEnabled(mode, cmd.OutOrStdout()))
}

func templateFuncs(styles *HelpStyles) template.FuncMap {
	return template.FuncMap{
		"styleCommand":     styles.Command.Render,
		"styleHeading":     styles.Heading.Render,
		"styleSubcommand":  styles.Subcommand.Render,
		"styleDescription": styles.Description.Render,
		"styleDim":         styles.Dim.Render,
		"styleFlagsUsage": func(flags interface{ FlagUsages() string }) string {
			return styleFlagsUsage(styles, flags.FlagUsages())
		},
		"styleArguments": func(cmd *cobra.Command) string {
			return styleArguments(styles, cmd.Annotations[argumentsAnnotation])
		},
		"rpad":                    rpad,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

const usageTemplate = `{{ styleHeading "Usage:" }}
  {{if .Runnable}}{{ styleCommand .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ styleCommand .CommandPath }} [command]{{end}}

{{- with (index .Annotations "godump/arguments")}}

{{ styleHeading "Arguments:" }}
{{ styleArguments $ }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{ styleDescription .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ styleFlagsUsage .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ styleFlagsUsage .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ styleCommand .CommandPath }}

{{end}}{{with (or .Long .Short)}}{{ . | trimTrailingWhitespaces }}

{{end}}` + usageTemplate

// ApplyToCommand installs styled help and usage output on cmd. Subcommands
// inherit it.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return h.execute(command, "usage", usageTemplate)
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := h.execute(command, "help", helpTemplate); err != nil {
			command.PrintErrln(err)
		}
	})
}

func (h *HelpFormatter) execute(cmd *cobra.Command, name, text string) error {
	tmpl, err := template.New(name).Funcs(templateFuncs(h.stylesFor(cmd))).Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(cmd.OutOrStdout(), cmd); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// styleArguments renders the positional argument table.
func styleArguments(styles *HelpStyles, annotation string) string {
	lines := strings.Split(strings.TrimSpace(annotation), "\n")
	width := 0
	for _, line := range lines {
		name, _, _ := strings.Cut(strings.TrimSpace(line), " ")
		width = max(width, len(name))
	}

	var result strings.Builder
	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}
		name, desc, _ := strings.Cut(strings.TrimSpace(line), " ")
		result.WriteString("  ")
		result.WriteString(styles.Argument.Render(rpad(name, width)))
		result.WriteString("   ")
		result.WriteString(styles.Description.Render(strings.TrimSpace(desc)))
	}
	return result.String()
}

// styleFlagsUsage styles the output of pflag's FlagUsages.
func styleFlagsUsage(styles *HelpStyles, usages string) string {
	if usages == "" {
		return ""
	}

	lines := strings.Split(strings.TrimSuffix(usages, "\n"), "\n")
	for i, line := range lines {
		lines[i] = styleFlagLine(styles, line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine styles one "  -f, --flag type   description" line.
func styleFlagLine(styles *HelpStyles, line string) string {
	trimmed := strings.TrimLeft(line, " ")
	flagPart, descPart, ok := splitFlagLine(trimmed)
	if !ok {
		return line
	}

	var styled strings.Builder
	styled.WriteString(line[:len(line)-len(trimmed)])
	for i, token := range strings.Fields(flagPart) {
		if i > 0 {
			styled.WriteString(" ")
		}
		if strings.HasPrefix(token, "-") {
			clean := strings.TrimSuffix(token, ",")
			styled.WriteString(styles.Flag.Render(clean))
			styled.WriteString(token[len(clean):])
		} else {
			styled.WriteString(styles.Dim.Render(token))
		}
	}
	styled.WriteString("   ")
	styled.WriteString(styles.Description.Render(descPart))
	return styled.String()
}

// splitFlagLine splits at the first run of two or more spaces.
func splitFlagLine(line string) (string, string, bool) {
	idx := strings.Index(line, "  ")
	if idx < 0 {
		return "", "", false
	}
	rest := strings.TrimLeft(line[idx:], " ")
	if rest == "" {
		return "", "", false
	}
	return line[:idx], rest, true
}

// rpad adds padding to the right of a string.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

// trimTrailingWhitespaces removes trailing whitespace from lines.
func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
