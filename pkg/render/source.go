// Package render drives a byte stream through a compiled element sequence,
// one line at a time.
package render

import (
	"bufio"
	"errors"
	"io"

	"github.com/yaklabco/godump/pkg/config"
)

// Cell is one input byte paired with its absolute position in the stream.
type Cell struct {
	Offset int
	Value  byte
}

// Line is the group of cells rendered as one line of output.
type Line []Cell

// Source draws indexed bytes from a reader in a single forward pass and
// applies a selection range. The stop bound is checked against absolute
// position before the start bound skips anything, so a start at or beyond
// stop yields an empty stream.
type Source struct {
	r       io.ByteReader
	next    int
	skip    int
	stop    int
	bounded bool
	done    bool
}

// NewSource wraps r, buffering it unless it already reads byte by byte.
func NewSource(r io.Reader, sel config.Range) *Source {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	start, stop, bounded := sel.Bounds()
	return &Source{
		r:       br,
		skip:    start,
		stop:    stop,
		bounded: bounded,
	}
}

// Next returns the next selected cell, or io.EOF once the stream or the
// selection is exhausted. Any other error comes from the underlying reader.
func (s *Source) Next() (Cell, error) {
	for {
		if s.done || (s.bounded && s.next >= s.stop) {
			s.done = true
			return Cell{}, io.EOF
		}

		b, err := s.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.done = true
			}
			return Cell{}, err
		}

		cell := Cell{Offset: s.next, Value: b}
		s.next++

		if s.skip > 0 {
			s.skip--
			continue
		}
		return cell, nil
	}
}

// Consumed is the number of bytes drawn from the underlying reader so far,
// including skipped ones.
func (s *Source) Consumed() int {
	return s.next
}

// ReadLine refills line with up to width cells. Drawing stops early right
// after a cell whose value is in breakOn. An empty line with a nil error
// means the source is exhausted.
func (s *Source) ReadLine(line Line, width int, breakOn *config.ByteSet) (Line, error) {
	line = line[:0]
	breaks := !breakOn.Empty()
	for len(line) < width {
		cell, err := s.Next()
		if errors.Is(err, io.EOF) {
			return line, nil
		}
		if err != nil {
			return line, err
		}

		line = append(line, cell)
		if breaks && breakOn.Contains(cell.Value) {
			break
		}
	}
	return line, nil
}
