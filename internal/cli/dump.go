package cli

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/godump/internal/configloader"
	"github.com/yaklabco/godump/internal/logging"
	"github.com/yaklabco/godump/internal/ui/pretty"
	"github.com/yaklabco/godump/pkg/config"
	"github.com/yaklabco/godump/pkg/fsutil"
	"github.com/yaklabco/godump/pkg/render"
)

// maxDumpArgs is INPUT and OUTPUT.
const maxDumpArgs = 2

type dumpFlags struct {
	address   bool
	text      bool
	radix     radixValue
	sel       rangeValue
	lineWidth int
	breakOn   byteListValue
	colored   bool
	stats     bool
}

func newDumpFlags() *dumpFlags {
	return &dumpFlags{
		radix:     radixValue{radix: config.DefaultRadix},
		sel:       rangeValue{text: config.Range{}.String()},
		lineWidth: config.DefaultLineWidth,
	}
}

func addDumpFlags(cmd *cobra.Command, flags *dumpFlags) {
	cmd.Flags().BoolVarP(&flags.address, "address", "a", false, "show the address of the first byte of each line")
	cmd.Flags().BoolVarP(&flags.text, "text", "t", false, "show the corresponding ASCII characters")
	cmd.Flags().VarP(&flags.radix, "radix", "r", "numerical base for byte values: bin, oct, dec, hex")
	cmd.Flags().VarP(&flags.sel, "select", "s", "range of the input to show, as N..N where each N is optional")
	cmd.Flags().IntVarP(&flags.lineWidth, "line-width", "l", config.DefaultLineWidth, "how many bytes per line")
	cmd.Flags().VarP(&flags.breakOn, "break-on", "b", "start a new line after this byte value (repeatable)")
	cmd.Flags().BoolVarP(&flags.colored, "colored", "c", false, "color the address and ASCII columns with ANSI escapes")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "print a summary line to stderr when done")
}

// dumpArgs accepts at most INPUT and OUTPUT.
func dumpArgs(_ *cobra.Command, args []string) error {
	if len(args) > maxDumpArgs {
		return withExitCode(ExitInvalidUsage,
			fmt.Errorf("accepts at most %d args (INPUT and OUTPUT), received %d", maxDumpArgs, len(args)))
	}
	return nil
}

// cliLayer builds a configuration layer from the flags the user set explicitly.
func cliLayer(cmd *cobra.Command, flags *dumpFlags) *config.File {
	layer := &config.File{}
	fs := cmd.Flags()

	if fs.Changed("address") {
		v := flags.address
		layer.Address = &v
	}
	if fs.Changed("text") {
		v := flags.text
		layer.Text = &v
	}
	if fs.Changed("radix") {
		v := string(flags.radix.radix)
		layer.Radix = &v
	}
	if fs.Changed("select") {
		v := flags.sel.text
		layer.Select = &v
	}
	if fs.Changed("line-width") {
		v := flags.lineWidth
		layer.LineWidth = &v
	}
	if fs.Changed("break-on") {
		layer.BreakOn = slices.Clone(flags.breakOn.values)
		if layer.BreakOn == nil {
			layer.BreakOn = []int{}
		}
	}

	switch {
	case fs.Changed("colored") && flags.colored:
		mode := config.ColorAlways
		layer.Color = &mode
	case fs.Changed("color"):
		if value, ok := fs.Lookup("color").Value.(*colorModeValue); ok {
			mode := value.mode
			layer.Color = &mode
		}
	}

	return layer
}

// loadConfig merges every configuration source with the explicitly set flags.
func loadConfig(ctx context.Context, cmd *cobra.Command, flags *dumpFlags) (*configloader.LoadResult, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	layer := cliLayer(cmd, flags)
	if validation := configloader.Validate(layer); !validation.Valid() {
		return nil, withExitCode(ExitInvalidUsage, &validation.Errors[0])
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    layer,
	})
	if err != nil {
		return nil, withExitCode(ExitConfigError, fmt.Errorf("load configuration: %w", err))
	}

	logger := logging.FromContext(ctx)
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, result.LoadedFrom)
	}

	return result, nil
}

func runDump(cmd *cobra.Command, args []string, flags *dumpFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	loadResult, err := loadConfig(ctx, cmd, flags)
	if err != nil {
		return err
	}

	// Resolve before touching OUTPUT so a bad configuration never truncates it.
	cfg, err := loadResult.File.Resolve()
	if err != nil {
		return withExitCode(ExitConfigError, err)
	}

	inputPath, outputPath := argAt(args, 0), argAt(args, 1)

	in, closeIn, err := fsutil.OpenInput(inputPath, cmd.InOrStdin())
	if err != nil {
		return withExitCode(ExitIOError, err)
	}
	defer func() { _ = closeIn() }()

	if fsutil.IsStdio(inputPath) {
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			logger.Debug("reading from terminal; end input with Ctrl-D")
		}
	}

	out, closeOut, err := fsutil.CreateOutput(outputPath, cmd.OutOrStdout())
	if err != nil {
		return withExitCode(ExitIOError, err)
	}

	ctx = logging.WithFields(ctx,
		logging.FieldInput, streamName(inputPath, "stdin"),
		logging.FieldOutput, streamName(outputPath, "stdout"),
	)
	logger = logging.FromContext(ctx)

	logger.Debug("starting dump",
		logging.FieldRadix, cfg.Radix,
		logging.FieldLineWidth, cfg.LineWidth,
		logging.FieldSelect, cfg.Select.String(),
		logging.FieldBreakOn, cfg.BreakOn.Ints(),
		logging.FieldAddress, cfg.Address,
		logging.FieldText, cfg.Text,
		logging.FieldColored, cfg.Colored,
	)

	start := time.Now()
	stats, dumpErr := render.Dump(in, out, cfg)
	elapsed := time.Since(start)
	closeErr := closeOut()

	if dumpErr != nil {
		return withExitCode(ExitIOError, fmt.Errorf("dump %s: %w", streamName(inputPath, "stdin"), dumpErr))
	}
	if closeErr != nil {
		return withExitCode(ExitIOError, fmt.Errorf("close output: %w", closeErr))
	}

	logger.Debug("dump finished",
		logging.FieldLines, stats.Lines,
		logging.FieldBytes, humanize.Bytes(uint64(stats.Bytes)),
		logging.FieldConsumed, humanize.Bytes(uint64(stats.Consumed)),
		logging.FieldElapsed, elapsed,
	)

	if flags.stats {
		stderr := cmd.ErrOrStderr()
		styles := pretty.NewStyles(pretty.IsColorEnabled(string(loadResult.File.ColorMode()), stderr))
		if _, err := fmt.Fprint(stderr, styles.FormatSummaryOneLine(stats, elapsed)); err != nil {
			return withExitCode(ExitIOError, fmt.Errorf("write summary: %w", err))
		}
	}

	return nil
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func streamName(path, stdio string) string {
	if fsutil.IsStdio(path) {
		return stdio
	}
	return path
}
