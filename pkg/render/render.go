// Package render draws a board to the terminal for visual inspection
// (spec §6 "Solution output"): column constraints stacked above the
// grid, row constraints to the left, cells shown as '.', 'X', or '?'.
// The output is for a human, not a machine — there is no reader for it.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/eng618/nonogram-solver/pkg/nonogram"
)

var (
	filledColor  = color.New(color.FgGreen, color.Bold)
	emptyColor   = color.New(color.FgHiBlack)
	unknownColor = color.New(color.FgYellow)
)

// Options controls how Board is drawn.
type Options struct {
	// Color enables ANSI coloring of cells. Disable for output that
	// will be captured or diffed rather than viewed in a terminal.
	Color bool
}

// Board draws b to w using the given options, grounded on the
// top-border / per-row-prefix / per-column-header grid-drawing shape
// the teacher's level renderer uses.
func Board(w io.Writer, b *nonogram.Board, opts Options) {
	rowLabels := make([]string, b.Height)
	rowLabelWidth := 0
	for row := 0; row < b.Height; row++ {
		rowLabels[row] = formatConstraintList(b.RowConstraints[row])
		if len(rowLabels[row]) > rowLabelWidth {
			rowLabelWidth = len(rowLabels[row])
		}
	}

	colLabelRows := columnHeaderRows(b.ColConstraints)

	for _, headerRow := range colLabelRows {
		fmt.Fprint(w, strings.Repeat(" ", rowLabelWidth+1))
		for col := 0; col < b.Width; col++ {
			fmt.Fprintf(w, "%2s", headerRow[col])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, strings.Repeat(" ", rowLabelWidth+1))
	fmt.Fprintln(w, strings.Repeat("--", b.Width))

	for row := 0; row < b.Height; row++ {
		fmt.Fprintf(w, "%*s|", rowLabelWidth, rowLabels[row])
		for col := 0; col < b.Width; col++ {
			fmt.Fprint(w, " ")
			writeCell(w, b.Cell(col, row), opts.Color)
		}
		fmt.Fprintln(w)
	}
}

// columnHeaderRows bottom-aligns each column's constraint digits into
// a rectangular block, one header line per entry of the longest list.
func columnHeaderRows(cols []nonogram.ConstraintList) [][]string {
	depth := 1
	for _, cl := range cols {
		if len(cl) > depth {
			depth = len(cl)
		}
	}
	rows := make([][]string, depth)
	for d := 0; d < depth; d++ {
		rows[d] = make([]string, len(cols))
		for c, cl := range cols {
			offset := depth - len(cl)
			if d < offset {
				rows[d][c] = ""
				continue
			}
			rows[d][c] = strconv.Itoa(int(cl[d-offset]))
		}
	}
	return rows
}

func formatConstraintList(cl nonogram.ConstraintList) string {
	if len(cl) == 0 {
		return "0"
	}
	parts := make([]string, len(cl))
	for i, c := range cl {
		parts[i] = strconv.Itoa(int(c))
	}
	return strings.Join(parts, ",")
}

func writeCell(w io.Writer, c nonogram.Cell, colored bool) {
	if !colored {
		fmt.Fprint(w, c.String())
		return
	}
	switch c {
	case nonogram.Filled:
		filledColor.Fprint(w, c.String())
	case nonogram.Empty:
		emptyColor.Fprint(w, c.String())
	default:
		unknownColor.Fprint(w, c.String())
	}
}
