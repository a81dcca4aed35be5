package nonogram

import "fmt"

// Board is the full puzzle: dimensions, the flat cell array, and the
// per-row and per-column constraint lists (spec §3).
type Board struct {
	Width, Height  int
	Cells          []Cell
	RowConstraints []ConstraintList
	ColConstraints []ConstraintList
}

// NewBoard builds a board of the given dimensions with every cell
// Unknown and the given constraint lists. len(rowConstraints) must
// equal height and len(colConstraints) must equal width.
func NewBoard(width, height int, rowConstraints, colConstraints []ConstraintList) (*Board, error) {
	if len(rowConstraints) != height {
		return nil, fmt.Errorf("expected %d row constraint lists, got %d", height, len(rowConstraints))
	}
	if len(colConstraints) != width {
		return nil, fmt.Errorf("expected %d column constraint lists, got %d", width, len(colConstraints))
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Unknown
	}
	return &Board{
		Width:          width,
		Height:         height,
		Cells:          cells,
		RowConstraints: rowConstraints,
		ColConstraints: colConstraints,
	}, nil
}

// index converts (col, row) into a flat index, per the row-major
// convention of spec §3: index = col + row*width.
func (b *Board) index(col, row int) int {
	return col + row*b.Width
}

// Cell returns the value at (col, row).
func (b *Board) Cell(col, row int) Cell {
	return b.Cells[b.index(col, row)]
}

// SetCell sets the value at (col, row).
func (b *Board) SetCell(col, row int, v Cell) {
	b.Cells[b.index(col, row)] = v
}

// Row returns a Line view over the given row.
func (b *Board) Row(row int) Line {
	return rowLine{b: b, row: row}
}

// Col returns a Line view over the given column.
func (b *Board) Col(col int) Line {
	return colLine{b: b, col: col}
}

// Line returns a Line view for the given LineInfo, dispatching on axis.
func (b *Board) Line(li LineInfo) Line {
	if li.Axis == AxisRow {
		return b.Row(li.Index)
	}
	return b.Col(li.Index)
}

// Clone returns a deep value copy of the board, used to snapshot state
// before exploring a branch (spec §3 "Lifecycle").
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	// Constraint lists are immutable after construction (spec §3), so
	// the slice headers can be shared between clones; only the
	// top-level slices need copying.
	rows := make([]ConstraintList, len(b.RowConstraints))
	copy(rows, b.RowConstraints)
	cols := make([]ConstraintList, len(b.ColConstraints))
	copy(cols, b.ColConstraints)
	return &Board{
		Width:          b.Width,
		Height:         b.Height,
		Cells:          cells,
		RowConstraints: rows,
		ColConstraints: cols,
	}
}

// NewBoardMeta builds a BoardMeta describing a freshly-constructed
// all-Unknown board of the given dimensions.
func NewBoardMeta(width, height int) *BoardMeta {
	m := &BoardMeta{
		UnsolvedPerRow: make([]int, height),
		UnsolvedPerCol: make([]int, width),
	}
	for i := range m.UnsolvedPerRow {
		m.UnsolvedPerRow[i] = width
	}
	for i := range m.UnsolvedPerCol {
		m.UnsolvedPerCol[i] = height
	}
	m.NumUnsolved = width * height
	return m
}

// BoardMeta tracks the running count of Unknown cells per row, per
// column, and overall (spec §3). It is updated monotonically downward
// as the solver determines cells.
type BoardMeta struct {
	NumUnsolved    int
	UnsolvedPerRow []int
	UnsolvedPerCol []int
}

// MarkSolved decrements the three counters for a single cell that has
// just transitioned from Unknown to Empty or Filled.
func (m *BoardMeta) MarkSolved(col, row int) {
	m.NumUnsolved--
	m.UnsolvedPerRow[row]--
	m.UnsolvedPerCol[col]--
}

// Clone returns a deep value copy of the board meta.
func (m *BoardMeta) Clone() *BoardMeta {
	rows := make([]int, len(m.UnsolvedPerRow))
	copy(rows, m.UnsolvedPerRow)
	cols := make([]int, len(m.UnsolvedPerCol))
	copy(cols, m.UnsolvedPerCol)
	return &BoardMeta{
		NumUnsolved:    m.NumUnsolved,
		UnsolvedPerRow: rows,
		UnsolvedPerCol: cols,
	}
}

// RowUnsolved reports whether the given row still has Unknown cells.
func (m *BoardMeta) RowUnsolved(row int) bool {
	return m.UnsolvedPerRow[row] > 0
}

// ColUnsolved reports whether the given column still has Unknown cells.
func (m *BoardMeta) ColUnsolved(col int) bool {
	return m.UnsolvedPerCol[col] > 0
}

// LineUnsolved reports whether the given line still has Unknown cells.
func (m *BoardMeta) LineUnsolved(li LineInfo) bool {
	if li.Axis == AxisRow {
		return m.RowUnsolved(li.Index)
	}
	return m.ColUnsolved(li.Index)
}

// FirstUnknown returns the row and column of the first Unknown cell
// in row-major order, or ok=false if the board is fully
// solved. This is the default pivot-selection rule of spec §4.3.
func (b *Board) FirstUnknown() (row, col int, ok bool) {
	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			if b.Cell(c, r) == Unknown {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
