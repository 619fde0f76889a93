//go:build stave

package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test.Default,
	"s":   Test.Smoke,
	"l":   Lint.Default,
	"c":   Check,
	"fmt": Lint.Fmt,
	"tp":  Bench.Throughput,
}

// Namespace types group related targets.
type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
)

const binary = "bin/godump"

// Build compiles the godump binary with version info.
// Skips recompilation when source files have not changed.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	fmt.Println("Building godump...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/godump")
}

// Check runs format, lint, and test sequentially.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default, Test.Smoke)
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("Cleaning build artifacts...")
	if err := sh.Rm("bin"); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

// Install installs godump to $GOBIN or $GOPATH/bin.
func Install() error {
	fmt.Println("Installing godump...")
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/godump")
}

// Deps ensures all dependencies are downloaded.
func Deps() error {
	fmt.Println("Downloading dependencies...")
	if err := sh.RunV("go", "mod", "download"); err != nil {
		return err
	}
	return sh.RunV("go", "mod", "tidy")
}

// Default runs all tests using gotestsum with race detection and coverage.
func (Test) Default() error {
	fmt.Println("Running tests...")
	return gotestsum("pkgname-and-test-fails")
}

// Verbose runs all tests with standard-verbose output.
func (Test) Verbose() error {
	fmt.Println("Running tests (verbose)...")
	return gotestsum("standard-verbose")
}

// Smoke runs the built binary on a known input and compares its output.
func (Test) Smoke() error {
	st.Deps(Build)
	fmt.Println("Running smoke test...")

	want := "000000  48 65 6c 6c 6f 0a" + strings.Repeat("   ", 2) + "  Hello   \n" +
		"000006  62 79 65" + strings.Repeat("   ", 5) + "  bye     \n"

	dir, err := os.MkdirTemp("", "godump-smoke-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	input, output := filepath.Join(dir, "in.bin"), filepath.Join(dir, "out.txt")
	if err := os.WriteFile(input, []byte("Hello\nbye"), 0o600); err != nil {
		return fmt.Errorf("write sample: %w", err)
	}
	if err := sh.Run(binary, "-a", "-t", "-r", "hex", "-l", "8", "-b", "10", input, output); err != nil {
		return fmt.Errorf("run %s: %w", binary, err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		return fmt.Errorf("read output: %w", err)
	}
	if string(got) != want {
		return fmt.Errorf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
	fmt.Println("✓ Smoke test passed")
	return nil
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	fmt.Println("Running linters...")
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// CI runs golangci-lint without auto-fix (for CI pipelines).
func (Lint) CI() error {
	fmt.Println("Running linters (CI mode)...")
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	fmt.Println("Formatting code...")
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck verifies code formatting without modifying files.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt check failed: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s\nRun 'stave lint:fmt' to fix", out)
	}
	return nil
}

// Vet runs go vet.
func (Lint) Vet() error {
	fmt.Println("Running go vet...")
	return sh.RunV("go", "vet", "./...")
}

// Gate runs all CI checks.
func (CI) Gate() error {
	st.SerialDeps(Lint.FmtCheck, Lint.Vet, Lint.CI, Test.Default, Test.Smoke, CI.ModTidy)
	fmt.Println("✓ All CI gate checks passed")
	return nil
}

// ModTidy checks that go.mod and go.sum are tidy.
func (CI) ModTidy() error {
	fmt.Println("Checking go.mod/go.sum are tidy...")
	before, err := readModFiles()
	if err != nil {
		return err
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	after, err := readModFiles()
	if err != nil {
		return err
	}
	if !bytes.Equal(before, after) {
		return errors.New("go.mod or go.sum changed after 'go mod tidy' - please commit the changes")
	}
	return nil
}

// Default runs the Go benchmarks.
func (Bench) Default() error {
	fmt.Println("Running benchmarks...")
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./pkg/...")
}

// Throughput dumps a generated 64 MiB file with bin/godump in every radix.
func (Bench) Throughput() error {
	st.Deps(Build)
	sample, err := writeSample(64 << 20)
	if err != nil {
		return err
	}
	defer os.Remove(sample)

	for _, radix := range []string{"bin", "oct", "dec", "hex"} {
		start := time.Now()
		if err := sh.Run(binary, "-a", "-t", "-l", "16", "-r", radix, sample, os.DevNull); err != nil {
			return fmt.Errorf("dump %s: %w", radix, err)
		}
		fmt.Printf("  %-4s %s\n", radix, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func gotestsum(format string) error {
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go",
		"tool", "gotestsum",
		"-f", format,
		"--",
		"-race",
		"-p", nCores,
		"-parallel", nCores,
		"./...",
		"-coverprofile=coverage.out",
		"-covermode=atomic",
	)
}

// readModFiles returns go.mod followed by go.sum; a missing go.sum reads as empty.
func readModFiles() ([]byte, error) {
	mod, err := os.ReadFile("go.mod")
	if err != nil {
		return nil, fmt.Errorf("read go.mod: %w", err)
	}
	sum, err := os.ReadFile("go.sum")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read go.sum: %w", err)
	}
	return append(mod, sum...), nil
}

// gitOutput runs a git command and returns trimmed stdout, or empty on error.
func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags returns the linker flags for version injection.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf(
		"-X main.version=%s -X main.commit=%s -X main.date=%s",
		version, commit, date,
	)
}

// writeSample creates a temporary file of size bytes cycling through every byte value.
func writeSample(size int) (string, error) {
	f, err := os.CreateTemp("", "godump-bench-*.bin")
	if err != nil {
		return "", fmt.Errorf("create sample: %w", err)
	}
	defer f.Close()

	block := make([]byte, 1<<16)
	for i := range block {
		block[i] = byte(i)
	}
	for written := 0; written < size; written += len(block) {
		if _, err := f.Write(block); err != nil {
			return "", fmt.Errorf("write sample: %w", err)
		}
	}
	return f.Name(), nil
}
