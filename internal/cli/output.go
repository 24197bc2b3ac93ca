package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/pt/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiGray   = "\033[90m"
)

// colorEnabled is on when stdout is a terminal. Tests override it.
var colorEnabled = IsTerminal(os.Stdout)

// SetColorEnabled overrides terminal detection.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func paint(code, s string) string {
	if !colorEnabled || s == "" {
		return s
	}
	return code + s + ansiReset
}

// Green marks healthy values, such as products in stock.
func Green(s string) string { return paint(ansiGreen, s) }

// Red marks problems, such as products out of stock.
func Red(s string) string { return paint(ansiRed, s) }

// Yellow marks warnings.
func Yellow(s string) string { return paint(ansiYellow, s) }

// Gray marks secondary information.
func Gray(s string) string { return paint(ansiGray, s) }

// Money formats an amount with two decimals, as it is written to the data file.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Level returns a bracketed, colored stock level label.
func Level(l model.StockLevel) string {
	label := "[" + string(l) + "]"
	switch l {
	case model.StockLevelIn:
		return Green(label)
	case model.StockLevelLow:
		return Yellow(label)
	case model.StockLevelOut:
		return Red(label)
	}
	return label
}

// DefaultMaxNameWidth is the default maximum visible width for client name columns.
const DefaultMaxNameWidth = 40

// Table lays out rows in columns separated by two spaces. Widths ignore
// ANSI color codes.
type Table struct {
	rows      [][]string
	widths    []int
	maxWidths map[int]int
	right     map[int]bool
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{maxWidths: make(map[int]int), right: make(map[int]bool)}
}

// SetMaxWidth caps the visible width of a column. Longer cells are cut
// with "...".
func (t *Table) SetMaxWidth(col, maxWidth int) {
	t.maxWidths[col] = maxWidth
}

// AlignRight right-aligns the given columns, for amounts and counts.
func (t *Table) AlignRight(cols ...int) {
	for _, c := range cols {
		t.right[c] = true
	}
}

// AddRow adds a row. Rows may have different lengths.
func (t *Table) AddRow(cols ...string) {
	for i, col := range cols {
		if maxW, ok := t.maxWidths[i]; ok {
			col = Truncate(col, maxW)
			cols[i] = col
		}
		if i == len(t.widths) {
			t.widths = append(t.widths, 0)
		}
		if w := visibleWidth(col); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w. The last column of a row is not padded
// unless it is right-aligned.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, len(row))
		for i, col := range row {
			pad := strings.Repeat(" ", t.widths[i]-visibleWidth(col))
			switch {
			case t.right[i]:
				parts[i] = pad + col
			case i == len(row)-1:
				parts[i] = col
			default:
				parts[i] = col + pad
			}
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate cuts s to maxWidth visible characters, ending with "..." when
// there is room for it. Color codes are kept and closed with a reset.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	keep := maxWidth
	if maxWidth >= len(ellipsis) {
		keep = maxWidth - len(ellipsis)
	}

	var b strings.Builder
	visible := 0
	colored := false
	walkRunes(s, func(r rune, escape bool) bool {
		if escape {
			colored = true
			b.WriteRune(r)
			return true
		}
		if visible == keep {
			return false
		}
		b.WriteRune(r)
		visible++
		return true
	})

	if maxWidth >= len(ellipsis) {
		b.WriteString(ellipsis)
		if colored {
			b.WriteString(ansiReset)
		}
	}
	return b.String()
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	n := 0
	walkRunes(s, func(_ rune, escape bool) bool {
		if !escape {
			n++
		}
		return true
	})
	return n
}

// walkRunes calls fn for each rune of s, flagging runes that belong to an
// ANSI escape sequence. It stops when fn returns false.
func walkRunes(s string, fn func(r rune, escape bool) bool) {
	inEscape := false
	for _, r := range s {
		escape := inEscape || r == '\033'
		switch {
		case r == '\033':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		}
		if !fn(r, escape) {
			return
		}
	}
}
