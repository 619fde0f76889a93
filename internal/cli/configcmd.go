package cli

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/godump/internal/configloader"
	"github.com/yaklabco/godump/internal/ui/pretty"
	"github.com/yaklabco/godump/pkg/config"
)

// configFlags holds the flags for the config command.
type configFlags struct {
	yaml bool
	env  bool
}

func newConfigCommand() *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration a dump started from the current directory would use,
and which layer (default, file, env or flag) supplied each setting.

Examples:
  godump config                 Show settings with their sources
  godump config --yaml          Print the merged settings as YAML
  godump config --env           Also list the supported environment variables`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.yaml, "yaml", false, "Print the merged configuration as YAML")
	cmd.Flags().BoolVar(&flags.env, "env", false, "List supported environment variables")

	return cmd
}

func runConfig(cmd *cobra.Command, flags *configFlags) error {
	result, err := loadConfig(commandContext(cmd), cmd, newDumpFlags())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if flags.yaml {
		data, err := result.File.ToYAML()
		if err != nil {
			return withExitCode(ExitInternalError, err)
		}
		if _, err := out.Write(data); err != nil {
			return withExitCode(ExitIOError, fmt.Errorf("write output: %w", err))
		}
		return nil
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(string(result.File.ColorMode()), out))

	settings := make([]pretty.Setting, 0, len(configloader.Keys()))
	for _, key := range configloader.Keys() {
		source := result.Sources[key]
		if source == configloader.SourceEnv {
			source += " " + configloader.GetEnvVarName(key)
		}
		settings = append(settings, pretty.Setting{
			Key:    key,
			Value:  settingValue(result.File, key),
			Source: source,
		})
	}

	var builder strings.Builder
	builder.WriteString(styles.FormatSettings("Effective configuration", settings))

	if flags.env {
		vars := configloader.ListEnvVars()
		envSettings := make([]pretty.Setting, 0, len(vars))
		for _, name := range slices.Sorted(maps.Keys(vars)) {
			envSettings = append(envSettings, pretty.Setting{Key: name, Value: vars[name]})
		}
		builder.WriteString("\n")
		builder.WriteString(styles.FormatSettings("Environment variables", envSettings))
	}

	if _, err := fmt.Fprint(out, builder.String()); err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("write output: %w", err))
	}
	return nil
}

// settingValue formats one key of a merged layer for display.
func settingValue(f *config.File, key string) string {
	switch key {
	case configloader.KeyAddress:
		return formatBoolPtr(f.Address)
	case configloader.KeyText:
		return formatBoolPtr(f.Text)
	case configloader.KeyRadix:
		if f.Radix != nil {
			return *f.Radix
		}
	case configloader.KeySelect:
		if f.Select != nil {
			return *f.Select
		}
	case configloader.KeyLineWidth:
		if f.LineWidth != nil {
			return strconv.Itoa(*f.LineWidth)
		}
	case configloader.KeyBreakOn:
		if len(f.BreakOn) == 0 {
			return "none"
		}
		parts := make([]string, 0, len(f.BreakOn))
		for _, b := range f.BreakOn {
			parts = append(parts, fmt.Sprintf("0x%02x", b))
		}
		return strings.Join(parts, ",")
	case configloader.KeyColor:
		return string(f.ColorMode())
	}
	return "-"
}

func formatBoolPtr(v *bool) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatBool(*v)
}
