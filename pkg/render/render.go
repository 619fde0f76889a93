package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/yaklabco/godump/pkg/config"
	"github.com/yaklabco/godump/pkg/format"
)

// Stats describes a finished render.
type Stats struct {
	// Lines is the number of lines written.
	Lines int

	// Bytes is the number of input bytes rendered.
	Bytes int

	// Consumed is the number of bytes read from the input, skipped ones included.
	Consumed int
}

// AppendLine executes seq against line and appends the text to dst. It has
// no state: the same sequence and line always produce the same text.
func AppendLine(dst []byte, seq format.Sequence, line Line) []byte {
	for _, el := range seq {
		switch el := el.(type) {
		case format.Literal:
			dst = append(dst, el.Text...)
		case format.AddressSlot:
			if el.Offset < len(line) {
				dst = format.AppendAddress(dst, line[el.Offset].Offset)
			} else {
				dst = format.AppendAddressBlank(dst)
			}
		case format.ValueSlot:
			if el.Offset < len(line) {
				dst = format.AppendValue(dst, el.Radix, line[el.Offset].Value)
			} else {
				dst = append(dst, format.Blank(el.Radix)...)
			}
		case format.ASCIISlot:
			if el.Offset < len(line) {
				dst = format.AppendASCII(dst, line[el.Offset].Value)
			} else {
				dst = append(dst, ' ')
			}
		}
	}
	return dst
}

// Render dumps r to w. seq must have been compiled from cfg. Lines are
// written as they are completed; on a read or write error the lines
// rendered so far are flushed and the error is returned.
func Render(r io.Reader, w io.Writer, cfg config.Config, seq format.Sequence) (Stats, error) {
	src := NewSource(r, cfg.Select)
	out := bufio.NewWriter(w)

	var (
		stats Stats
		line  = make(Line, 0, cfg.LineWidth)
		text  []byte
		err   error
	)

	for {
		line, err = src.ReadLine(line, cfg.LineWidth, &cfg.BreakOn)
		if err != nil {
			stats.Consumed = src.Consumed()
			_ = out.Flush()
			return stats, fmt.Errorf("read input: %w", err)
		}
		if len(line) == 0 {
			break
		}

		text = AppendLine(text[:0], seq, line)
		if _, err := out.Write(text); err != nil {
			stats.Consumed = src.Consumed()
			return stats, fmt.Errorf("write output: %w", err)
		}
		stats.Lines++
		stats.Bytes += len(line)
	}

	stats.Consumed = src.Consumed()
	if err := out.Flush(); err != nil {
		return stats, fmt.Errorf("write output: %w", err)
	}
	return stats, nil
}

// Dump compiles cfg and renders r to w with it.
func Dump(r io.Reader, w io.Writer, cfg config.Config) (Stats, error) {
	return Render(r, w, cfg, format.Compile(cfg))
}
