// Package puzzleio reads and writes the two on-disk formats the
// solving engine trades with the outside world: the puzzle constraint
// file and the CSV solution grid. Both are thin adapters around the
// standard library; the formats themselves are the collaborator
// boundary the core engine was designed against.
package puzzleio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eng618/nonogram-solver/pkg/nonogram"
)

const (
	columnsSentinel = "=COLUMNS"
	rowsSentinel    = "=ROWS"
)

// Puzzle is a board's constraint lists, decoupled from any particular
// cell assignment, as read from a puzzle file.
type Puzzle struct {
	Width, Height int
	RowConstraint []nonogram.ConstraintList
	ColConstraint []nonogram.ConstraintList
}

// ReadPuzzle parses the sentinel-delimited puzzle format (spec §6):
// a "=COLUMNS" section listing one column's comma-separated constraint
// list per line, followed by a "=ROWS" section in the same format. An
// empty line means an empty constraint list. Column lines come before
// row lines; board width is the number of column lines, height the
// number of row lines.
func ReadPuzzle(r io.Reader) (*Puzzle, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("puzzle file is empty")
	}
	if strings.TrimSpace(scanner.Text()) != columnsSentinel {
		return nil, fmt.Errorf("expected %q as the first line, got %q", columnsSentinel, scanner.Text())
	}

	var cols, rows []nonogram.ConstraintList
	section := &cols
	sawRowsSentinel := false

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == rowsSentinel {
			section = &rows
			sawRowsSentinel = true
			continue
		}
		cl, err := parseConstraintLine(line)
		if err != nil {
			return nil, fmt.Errorf("parsing constraint line %q: %w", line, err)
		}
		*section = append(*section, cl)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading puzzle file: %w", err)
	}
	if !sawRowsSentinel {
		return nil, fmt.Errorf("missing %q sentinel", rowsSentinel)
	}

	return &Puzzle{
		Width:         len(cols),
		Height:        len(rows),
		RowConstraint: rows,
		ColConstraint: cols,
	}, nil
}

// parseConstraintLine parses one comma-separated list of positive
// integers. A blank line (after trimming) is an empty constraint list.
func parseConstraintLine(line string) (nonogram.ConstraintList, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nonogram.ConstraintList{}, nil
	}
	fields := strings.Split(trimmed, ",")
	cl := make(nonogram.ConstraintList, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("field %d (%q) is not an integer", i, f)
		}
		cl[i] = nonogram.Constraint(v)
	}
	if err := cl.Validate(); err != nil {
		return nil, err
	}
	return cl, nil
}

// NewBoard constructs an all-Unknown board from the puzzle's constraints.
func (p *Puzzle) NewBoard() (*nonogram.Board, error) {
	return nonogram.NewBoard(p.Width, p.Height, p.RowConstraint, p.ColConstraint)
}

// WritePuzzle serializes a Puzzle back to the sentinel-delimited format,
// the inverse of ReadPuzzle. Used by puzzle generation (cmd newpuzzle)
// to emit a freshly-derived constraint file.
func WritePuzzle(w io.Writer, p *Puzzle) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, columnsSentinel)
	for _, cl := range p.ColConstraint {
		fmt.Fprintln(bw, formatConstraintLine(cl))
	}
	fmt.Fprintln(bw, rowsSentinel)
	for _, cl := range p.RowConstraint {
		fmt.Fprintln(bw, formatConstraintLine(cl))
	}
	return bw.Flush()
}

func formatConstraintLine(cl nonogram.ConstraintList) string {
	parts := make([]string, len(cl))
	for i, c := range cl {
		parts[i] = strconv.Itoa(int(c))
	}
	return strings.Join(parts, ",")
}
