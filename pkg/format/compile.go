package format

import "github.com/yaklabco/godump/pkg/config"

// ANSI markup wrapped around the address and text columns when color is on.
const (
	AddressColor = "\x1b[1;95m"
	TextColor    = "\x1b[94m"
	ColorReset   = "\x1b[0m"
)

// Separators between columns.
const (
	columnSeparator = "  "
	valueSeparator  = " "
	lineTerminator  = "\n"
)

// Compile builds the element sequence for cfg. It is a pure function: equal
// configs always produce equal sequences, and all configuration-dependent
// branching happens here rather than per line.
func Compile(cfg config.Config) Sequence {
	seq := make(Sequence, 0, compiledLen(cfg))

	if cfg.Address {
		if cfg.Colored {
			seq = append(seq, Literal{AddressColor}, AddressSlot{0}, Literal{ColorReset})
		} else {
			seq = append(seq, AddressSlot{0})
		}
		seq = append(seq, Literal{columnSeparator})
	}

	for i := range cfg.LineWidth {
		if i > 0 {
			seq = append(seq, Literal{valueSeparator})
		}
		seq = append(seq, ValueSlot{Radix: cfg.Radix, Offset: i})
	}

	if cfg.Text {
		seq = append(seq, Literal{columnSeparator})
		if cfg.Colored {
			seq = append(seq, Literal{TextColor})
		}
		for i := range cfg.LineWidth {
			seq = append(seq, ASCIISlot{i})
		}
		if cfg.Colored {
			seq = append(seq, Literal{ColorReset})
		}
	}

	return append(seq, Literal{lineTerminator})
}

// compiledLen is the exact number of elements Compile emits for cfg.
func compiledLen(cfg config.Config) int {
	width := max(cfg.LineWidth, 0)
	n := 1 + max(2*width-1, 0)
	if cfg.Address {
		n += 2
		if cfg.Colored {
			n += 2
		}
	}
	if cfg.Text {
		n += 1 + width
		if cfg.Colored {
			n += 2
		}
	}
	return n
}

// Width is the number of output columns one rendered line occupies,
// excluding color markup and the newline.
func Width(cfg config.Config) int {
	width := max(cfg.LineWidth, 0)
	n := width*cfg.Radix.Width() + max(width-1, 0)
	if cfg.Address {
		n += AddressDigits + len(columnSeparator)
	}
	if cfg.Text {
		n += len(columnSeparator) + width
	}
	return n
}
