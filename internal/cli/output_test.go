package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacksmith/pt/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *Table) string {
	var buf bytes.Buffer
	t.Render(&buf)
	return buf.String()
}

func TestIsTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f), "regular file is not a terminal")
	assert.False(t, IsTerminal(&bytes.Buffer{}), "buffer is not a terminal")
}

func TestColors(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	assert.True(t, ColorEnabled())
	assert.Equal(t, "\033[32mok\033[0m", Green("ok"))
	assert.Equal(t, "\033[31mok\033[0m", Red("ok"))
	assert.Equal(t, "\033[33mok\033[0m", Yellow("ok"))
	assert.Equal(t, "\033[90mok\033[0m", Gray("ok"))
	assert.Equal(t, "", Red(""), "empty strings stay empty")

	SetColorEnabled(false)
	assert.False(t, ColorEnabled())
	assert.Equal(t, "ok", Green("ok"))
	assert.Equal(t, "ok", Red("ok"))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "5.00", Money(decimal.NewFromInt(5)))
	assert.Equal(t, "1.20", Money(decimal.RequireFromString("1.2")))
	assert.Equal(t, "2.35", Money(decimal.RequireFromString("2.345")))
	assert.Equal(t, "0.00", Money(decimal.Zero))
}

func TestLevel(t *testing.T) {
	SetColorEnabled(false)
	assert.Equal(t, "[in_stock]", Level(model.StockLevelIn))
	assert.Equal(t, "[low]", Level(model.StockLevelLow))
	assert.Equal(t, "[out]", Level(model.StockLevelOut))

	SetColorEnabled(true)
	defer SetColorEnabled(false)
	assert.Equal(t, Yellow("[low]"), Level(model.StockLevelLow))
	assert.Equal(t, Red("[out]"), Level(model.StockLevelOut))
}

func TestTable(t *testing.T) {
	SetColorEnabled(false)

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", render(NewTable()))
	})

	t.Run("columns are padded to the widest cell", func(t *testing.T) {
		table := NewTable()
		table.AddRow("#1", "tarte", "[in_stock]")
		table.AddRow("#2", "croissant", "[out]")
		table.AddRow("#100", "gateau", "[low]")

		want := "#1    tarte      [in_stock]\n" +
			"#2    croissant  [out]\n" +
			"#100  gateau     [low]\n"
		assert.Equal(t, want, render(table))
	})

	t.Run("right-aligned amounts", func(t *testing.T) {
		table := NewTable()
		table.AlignRight(1, 2)
		table.AddRow("tarte", "5.00", "10")
		table.AddRow("gateau", "118.50", "4")

		want := "tarte     5.00  10\n" +
			"gateau  118.50   4\n"
		assert.Equal(t, want, render(table))
	})

	t.Run("color codes do not count toward width", func(t *testing.T) {
		SetColorEnabled(true)
		defer SetColorEnabled(false)

		table := NewTable()
		table.AddRow(Green("in"), "tarte")
		table.AddRow("out", "croissant")

		lines := strings.Split(strings.TrimSuffix(render(table), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, Green("in")+"   tarte", lines[0])
		assert.Equal(t, "out  croissant", lines[1])
	})

	t.Run("max width truncates", func(t *testing.T) {
		table := NewTable()
		table.SetMaxWidth(1, 15)
		table.AddRow("#1", "Amira", "22123456")
		table.AddRow("#2", "Mohamed Amine Ben Abdallah", "98765432")

		lines := strings.Split(strings.TrimSuffix(render(table), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "#1  Amira"+strings.Repeat(" ", 12)+"22123456", lines[0])
		assert.Equal(t, "#2  Mohamed Amin...  98765432", lines[1])
	})

	t.Run("uneven rows", func(t *testing.T) {
		table := NewTable()
		table.AddRow("a", "b", "c")
		table.AddRow("dd", "e")

		assert.Equal(t, "a   b  c\ndd  e\n", render(table))
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "tarte", 10, "tarte"},
		{"exact fit", "tarte", 5, "tarte"},
		{"cut with ellipsis", "croissant", 7, "croi..."},
		{"only ellipsis", "croissant", 3, "..."},
		{"too narrow for ellipsis", "croissant", 2, "cr"},
		{"zero width", "croissant", 0, ""},
		{"empty", "", 10, ""},
		{"unicode", "Éléonore Dupré", 8, "Éléon..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, visibleWidth(got), tt.maxWidth)
		})
	}
}

func TestTruncateColored(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	got := Truncate(Red("out of stock"), 8)
	assert.Equal(t, 8, visibleWidth(got))
	assert.True(t, strings.HasPrefix(got, ansiRed))
	assert.True(t, strings.HasSuffix(got, "..."+ansiReset))

	short := Green("ok")
	assert.Equal(t, short, Truncate(short, 10))
}

func TestVisibleWidth(t *testing.T) {
	assert.Equal(t, 5, visibleWidth("tarte"))
	assert.Equal(t, 0, visibleWidth(""))
	assert.Equal(t, 5, visibleWidth("\033[32mtarte\033[0m"))
	assert.Equal(t, 0, visibleWidth("\033[31m\033[0m"))
	assert.Equal(t, 3, visibleWidth("a\033[32mb\033[0mc"))
	assert.Equal(t, 4, visibleWidth("Dupé"))
}
