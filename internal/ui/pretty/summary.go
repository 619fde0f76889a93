package pretty

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/yaklabco/godump/pkg/render"
)

// FormatSummaryOneLine formats dump statistics as a single line.
// Example: "1.0 kB dumped in 128 lines (4 bytes skipped) in 2ms".
func (s *Styles) FormatSummaryOneLine(stats render.Stats, elapsed time.Duration) string {
	if stats.Bytes == 0 {
		return s.Dim.Render("nothing to dump") + s.Dim.Render(fmt.Sprintf(" (%s read)", humanize.Bytes(uint64(stats.Consumed)))) + "\n"
	}

	lineWord := "lines"
	if stats.Lines == 1 {
		lineWord = "line"
	}

	parts := []string{
		s.Count.Render(humanize.Bytes(uint64(stats.Bytes))) + " dumped in " +
			s.Count.Render(humanize.Comma(int64(stats.Lines))) + " " + lineWord,
	}

	if skipped := stats.Consumed - stats.Bytes; skipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("(%s skipped)", humanize.Bytes(uint64(skipped)))))
	}

	if elapsed > 0 {
		parts = append(parts, s.Dim.Render("in "+elapsed.Round(time.Millisecond).String()))
	}

	return strings.Join(parts, " ") + "\n"
}
