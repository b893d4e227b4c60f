// Package termio provides terminal output helpers: a column-aligned table
// printer and terminal geometry detection.  Cell contents are measured in
// runes rather than bytes, since proof statements lean heavily on
// mathematical Unicode.
package termio

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths []uint
	rows   [][]string
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
	}

	return &TablePrinter{widths, rows}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(utf8.RuneCountInString(val)))
	p.rows[row][col] = val
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], uint(utf8.RuneCountInString(vals[i])))
	}
	// Done
	p.rows[row] = vals
}

// SetMaxWidths puts an upper bound on the width of every column.
func (p *TablePrinter) SetMaxWidths(width uint) {
	for i := uint(0); i < uint(len(p.widths)); i++ {
		p.SetMaxWidth(i, width)
	}
}

// SetMaxWidth puts an upper bound on the width of a given column.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], width)
}

// Print the table.
func (p *TablePrinter) Print() {
	for i := 0; i < len(p.rows); i++ {
		fmt.Println(p.renderRow(p.rows[i]))
	}
}

// Render a single row with every cell padded to its column width,
// truncating cells that overflow.
func (p *TablePrinter) renderRow(row []string) string {
	var builder strings.Builder
	//
	for j, col := range row {
		width := p.widths[j]
		runes := uint(utf8.RuneCountInString(col))
		//
		if runes > width {
			col = string([]rune(col)[0:width-2]) + ".."
			runes = width
		}

		builder.WriteString(" ")
		builder.WriteString(col)
		builder.WriteString(strings.Repeat(" ", int(width-runes)))
		builder.WriteString(" |")
	}
	//
	return builder.String()
}
