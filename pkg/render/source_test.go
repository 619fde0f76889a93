package render_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/godump/pkg/config"
	"github.com/yaklabco/godump/pkg/render"
)

func intPtr(n int) *int { return &n }

func seq(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func drain(t *testing.T, src *render.Source) []render.Cell {
	t.Helper()

	var cells []render.Cell
	for {
		cell, err := src.Next()
		if errors.Is(err, io.EOF) {
			return cells
		}
		require.NoError(t, err)
		cells = append(cells, cell)
	}
}

func values(cells []render.Cell) []byte {
	out := make([]byte, len(cells))
	for i, c := range cells {
		out[i] = c.Value
	}
	return out
}

func TestSourceIndexesEveryByte(t *testing.T) {
	t.Parallel()

	cells := drain(t, render.NewSource(bytes.NewReader([]byte("abc")), config.Range{}))
	assert.Equal(t, []render.Cell{
		{Offset: 0, Value: 'a'},
		{Offset: 1, Value: 'b'},
		{Offset: 2, Value: 'c'},
	}, cells)
}

func TestSourceSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		sel         config.Range
		want        []byte
		wantOffsets []int
	}{
		{"whole stream", config.Range{}, seq(10), nil},
		{"start and stop", config.Range{Start: intPtr(2), Stop: intPtr(5)}, []byte{2, 3, 4}, []int{2, 3, 4}},
		{"start only", config.Range{Start: intPtr(7)}, []byte{7, 8, 9}, []int{7, 8, 9}},
		{"stop only", config.Range{Stop: intPtr(2)}, []byte{0, 1}, []int{0, 1}},
		{"start past stop", config.Range{Start: intPtr(5), Stop: intPtr(3)}, nil, nil},
		{"start equals stop", config.Range{Start: intPtr(4), Stop: intPtr(4)}, nil, nil},
		{"start past end", config.Range{Start: intPtr(50)}, nil, nil},
		{"stop past end", config.Range{Start: intPtr(8), Stop: intPtr(50)}, []byte{8, 9}, []int{8, 9}},
		{"zero stop", config.Range{Stop: intPtr(0)}, nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cells := drain(t, render.NewSource(bytes.NewReader(seq(10)), tc.sel))
			if tc.want == nil {
				assert.Empty(t, cells)
				return
			}
			assert.Equal(t, tc.want, values(cells))
			if tc.wantOffsets != nil {
				offsets := make([]int, len(cells))
				for i, c := range cells {
					offsets[i] = c.Offset
				}
				assert.Equal(t, tc.wantOffsets, offsets)
			}
		})
	}
}

func TestSourceStopDoesNotReadPastBound(t *testing.T) {
	t.Parallel()

	// An endless reader must still terminate once stop is reached.
	endless := iotest.OneByteReader(&repeatReader{b: 0x41})
	cells := drain(t, render.NewSource(endless, config.Range{Start: intPtr(1), Stop: intPtr(4)}))
	assert.Equal(t, []render.Cell{
		{Offset: 1, Value: 0x41},
		{Offset: 2, Value: 0x41},
		{Offset: 3, Value: 0x41},
	}, cells)
}

func TestSourceReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := io.MultiReader(bytes.NewReader([]byte{1, 2}), iotest.ErrReader(boom))
	src := render.NewSource(r, config.Range{})

	cell, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, render.Cell{Offset: 0, Value: 1}, cell)

	_, err = src.Next()
	require.NoError(t, err)

	_, err = src.Next()
	assert.ErrorIs(t, err, boom)
}

func TestSourceStaysExhausted(t *testing.T) {
	t.Parallel()

	src := render.NewSource(bytes.NewReader(nil), config.Range{})
	for range 3 {
		_, err := src.Next()
		assert.ErrorIs(t, err, io.EOF)
	}
	assert.Equal(t, 0, src.Consumed())
}

func TestReadLineBreaksOnSentinel(t *testing.T) {
	t.Parallel()

	input := []byte{1, 2, 0x0a, 3, 4, 5, 6, 7, 8, 9}
	src := render.NewSource(bytes.NewReader(input), config.Range{})
	breakOn := config.NewByteSet(0x0a)

	line, err := src.ReadLine(nil, 8, &breakOn)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 0x0a}, values(line))

	line, err = src.ReadLine(line, 8, &breakOn)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4, 5, 6, 7, 8, 9}, values(line))
	assert.Equal(t, 3, line[0].Offset)

	line, err = src.ReadLine(line, 8, &breakOn)
	require.NoError(t, err)
	assert.Empty(t, line)
}

func TestReadLineEmptyBreakSetNeverBreaks(t *testing.T) {
	t.Parallel()

	src := render.NewSource(bytes.NewReader([]byte{0, 0x0a, 0, 0x0a}), config.Range{})
	var none config.ByteSet

	line, err := src.ReadLine(nil, 4, &none)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0x0a, 0, 0x0a}, values(line))
}

func TestReadLineFillsToWidth(t *testing.T) {
	t.Parallel()

	src := render.NewSource(bytes.NewReader(seq(20)), config.Range{})

	line, err := src.ReadLine(nil, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, seq(8), values(line))

	line, err = src.ReadLine(line, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{8, 9, 10, 11, 12, 13, 14, 15}, values(line))

	line, err = src.ReadLine(line, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{16, 17, 18, 19}, values(line))
}

func TestReadLineSentinelAtWidthBoundary(t *testing.T) {
	t.Parallel()

	input := []byte{0, 1, 2, 0x0a, 4, 5}
	src := render.NewSource(bytes.NewReader(input), config.Range{})
	breakOn := config.NewByteSet(0x0a)

	line, err := src.ReadLine(nil, 4, &breakOn)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 0x0a}, values(line))

	line, err = src.ReadLine(line, 4, &breakOn)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5}, values(line))
}

func TestReadLineReusesBuffer(t *testing.T) {
	t.Parallel()

	src := render.NewSource(bytes.NewReader(seq(16)), config.Range{})
	buf := make(render.Line, 0, 8)

	line, err := src.ReadLine(buf, 8, nil)
	require.NoError(t, err)
	require.Len(t, line, 8)
	assert.Same(t, &buf[:1][0], &line[0])
}

type repeatReader struct {
	b byte
}

func (r *repeatReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
	}
	return len(p), nil
}
