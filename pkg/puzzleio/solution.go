package puzzleio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/eng618/nonogram-solver/pkg/nonogram"
)

// ReadSolutionBoard reads a header-less CSV grid (spec §6 "Solution
// input"): one record per board row, one field per cell, values 0
// (Empty), 1 (Filled), or -1 (Unknown). All records must have equal
// length. Row and column constraints are derived from the grid by
// scanning runs of Filled cells (spec §4.1's "generate constraints from
// a completed line"), so the returned board need not be fully
// determined — a grid with some -1 cells produces the constraints of
// whatever Filled runs are already visible. cmd repair reads only the
// cells of such a file and takes its constraints from the puzzle file.
func ReadSolutionBoard(r io.Reader) (*nonogram.Board, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validated manually for a clearer error

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading solution CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("solution CSV has no rows")
	}

	width := len(records[0])
	height := len(records)
	cells := make([]nonogram.Cell, width*height)

	for row, record := range records {
		if len(record) != width {
			return nil, fmt.Errorf("row %d has %d fields, expected %d", row, len(record), width)
		}
		for col, field := range record {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %q is not an integer", row, col, field)
			}
			cell, err := nonogram.CellFromInt(v)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row, col, err)
			}
			cells[col+row*width] = cell
		}
	}

	rowConstraints := make([]nonogram.ConstraintList, height)
	for row := 0; row < height; row++ {
		rowConstraints[row] = constraintsFromRun(cells[row*width : row*width+width])
	}
	colConstraints := make([]nonogram.ConstraintList, width)
	for col := 0; col < width; col++ {
		line := make([]nonogram.Cell, height)
		for row := 0; row < height; row++ {
			line[row] = cells[col+row*width]
		}
		colConstraints[col] = constraintsFromRun(line)
	}

	board, err := nonogram.NewBoard(width, height, rowConstraints, colConstraints)
	if err != nil {
		return nil, err
	}
	copy(board.Cells, cells)
	return board, nil
}

// constraintsFromRun scans a line of cells and returns the run-length
// constraint list implied by its Filled cells. Unknown cells do not
// break or extend a run; a run is terminated only by an Empty cell (or
// the end of the line), so a fully Unknown line yields an empty list
// exactly like a fully Empty one.
func constraintsFromRun(cells []nonogram.Cell) nonogram.ConstraintList {
	cl := nonogram.ConstraintList{}
	run := 0
	for _, c := range cells {
		switch c {
		case nonogram.Filled:
			run++
		case nonogram.Empty:
			if run > 0 {
				cl = append(cl, nonogram.Constraint(run))
				run = 0
			}
		}
	}
	if run > 0 {
		cl = append(cl, nonogram.Constraint(run))
	}
	return cl
}

// WriteSolutionBoard serializes a board's cells as a header-less CSV
// grid, the inverse of ReadSolutionBoard.
func WriteSolutionBoard(w io.Writer, b *nonogram.Board) error {
	writer := csv.NewWriter(w)
	for row := 0; row < b.Height; row++ {
		record := make([]string, b.Width)
		for col := 0; col < b.Width; col++ {
			record[col] = strconv.Itoa(b.Cell(col, row).Int())
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing solution CSV row %d: %w", row, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ConstraintsFromBoard derives the constraint lists implied by a fully
// or partially determined board, for the puzzle generator and for
// constraint round-trip testing (spec §8).
func ConstraintsFromBoard(b *nonogram.Board) (rows, cols []nonogram.ConstraintList) {
	rows = make([]nonogram.ConstraintList, b.Height)
	for row := 0; row < b.Height; row++ {
		line := make([]nonogram.Cell, b.Width)
		for col := 0; col < b.Width; col++ {
			line[col] = b.Cell(col, row)
		}
		rows[row] = constraintsFromRun(line)
	}
	cols = make([]nonogram.ConstraintList, b.Width)
	for col := 0; col < b.Width; col++ {
		line := make([]nonogram.Cell, b.Height)
		for row := 0; row < b.Height; row++ {
			line[row] = b.Cell(col, row)
		}
		cols[col] = constraintsFromRun(line)
	}
	return rows, cols
}
