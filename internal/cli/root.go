// Package cli provides the Cobra command structure for godump.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yaklabco/godump/internal/logging"
	"github.com/yaklabco/godump/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root godump command with all subcommands.
// The root command itself performs the dump.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	color := &colorModeValue{mode: config.ColorAuto}
	flags := newDumpFlags()

	rootCmd := &cobra.Command{
		Use:   "godump [flags] [INPUT [OUTPUT]]",
		Short: "Dump binary data as hex, octal, binary or decimal text",
		Long:  rootLongDescription,
		Args:  dumpArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(commandContext(cmd), logging.Default()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args, flags)
		},
		Annotations: map[string]string{
			argumentsAnnotation: "INPUT  file to read, or - for standard input (default)\n" +
				"OUTPUT  file to write, or - for standard output (default)",
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().Var(color, "color", "color mode for help and summaries: auto, always, never (always also colors the dump)")

	addDumpFlags(rootCmd, flags)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withExitCode(ExitInvalidUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(func() string { return string(color.mode) })
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

const rootLongDescription = `godump renders a binary stream as line-oriented text: one value per byte
in binary, octal, decimal or hexadecimal, optionally preceded by the
address of the line and followed by its printable ASCII characters.

INPUT defaults to standard input and OUTPUT to standard output; "-" names
either stream explicitly.

Examples:
  godump firmware.bin                   # 8 binary values per line
  godump -r hex -l 16 -a -t image.png   # classic hex dump
  godump -r hex -s 512..1024 disk.img   # bytes 512 up to 1024
  godump -r dec -b 10 -l 80 notes.txt   # one line of output per text line
  cat blob | godump -c -r oct - out.txt # force color, write to a file`

// commandContext returns the command's context, or a background context.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
