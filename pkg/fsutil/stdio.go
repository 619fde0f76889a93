package fsutil

import (
	"fmt"
	"io"
	"os"
)

// StdioPath is the path that stands for standard input or standard output.
const StdioPath = "-"

// IsStdio reports whether path refers to a standard stream.
func IsStdio(path string) bool {
	return path == "" || path == StdioPath
}

// OpenInput opens path for reading. An empty path or "-" returns stdin,
// which the returned close function leaves open.
func OpenInput(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if IsStdio(path) {
		return stdin, noClose, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, nil, fmt.Errorf("open input: %s is a directory", path)
	}

	return f, f.Close, nil
}

// CreateOutput creates or truncates path for writing. An empty path or "-"
// returns stdout, which the returned close function leaves open.
func CreateOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if IsStdio(path) {
		return stdout, noClose, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func noClose() error { return nil }
