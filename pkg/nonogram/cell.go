package nonogram

import "fmt"

// Cell is the three-valued state of one board position.
type Cell int8

const (
	// Empty marks a cell that is definitely not part of any run.
	Empty Cell = 0
	// Filled marks a cell that is definitely part of a run.
	Filled Cell = 1
	// Unknown marks a cell whose state has not yet been determined.
	Unknown Cell = -1
)

// String renders a cell the way the ASCII pretty-printer does: "." for
// Empty, "X" for Filled, "?" for Unknown.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case Filled:
		return "X"
	case Unknown:
		return "?"
	default:
		return fmt.Sprintf("<bad cell %d>", int8(c))
	}
}

// CellFromInt converts the serialization convention (0, 1, -1) used by
// puzzle and solution files into a Cell. It reports an error for any
// other value.
func CellFromInt(v int) (Cell, error) {
	switch v {
	case 0:
		return Empty, nil
	case 1:
		return Filled, nil
	case -1:
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("invalid cell value %d (want 0, 1, or -1)", v)
	}
}

// Int returns the serialization convention value for a cell.
func (c Cell) Int() int {
	return int(c)
}

// Constraint is a single run length. It must be a positive integer;
// constructors that build a ConstraintList from user input are
// responsible for rejecting non-positive values.
type Constraint int

// ConstraintList is the ordered sequence of run lengths for one line.
// An empty list means the line has no filled cells.
type ConstraintList []Constraint

// Sum returns the total length of all runs in the list.
func (cl ConstraintList) Sum() int {
	total := 0
	for _, c := range cl {
		total += int(c)
	}
	return total
}

// MinLength returns the shortest line length that can satisfy this
// constraint list: the sum of the runs plus one separator between each
// pair of adjacent runs.
func (cl ConstraintList) MinLength() int {
	if len(cl) == 0 {
		return 0
	}
	return cl.Sum() + len(cl) - 1
}

// Validate reports an error if any constraint is non-positive.
func (cl ConstraintList) Validate() error {
	for i, c := range cl {
		if c < 1 {
			return fmt.Errorf("constraint %d at index %d must be positive", c, i)
		}
	}
	return nil
}
