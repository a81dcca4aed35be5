package nonogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	rows := []ConstraintList{{2}, {1, 1}, {2}}
	cols := []ConstraintList{{1, 1}, {3}, {1}}
	b, err := NewBoard(3, 3, rows, cols)
	require.NoError(t, err)
	return b
}

func TestNewBoardRejectsMismatchedConstraintCounts(t *testing.T) {
	_, err := NewBoard(3, 3, []ConstraintList{{1}}, []ConstraintList{{1}, {1}, {1}})
	assert.Error(t, err)
}

func TestNewBoardAllUnknown(t *testing.T) {
	b := newTestBoard(t)
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			assert.Equal(t, Unknown, b.Cell(col, row))
		}
	}
}

func TestBoardRowColViews(t *testing.T) {
	b := newTestBoard(t)
	b.SetCell(1, 0, Filled)

	row := b.Row(0)
	assert.Equal(t, Filled, row.Cell(1))

	col := b.Col(1)
	assert.Equal(t, Filled, col.Cell(0))

	// Mutating through a Line view mutates the backing board.
	col.SetCell(2, Empty)
	assert.Equal(t, Empty, b.Cell(1, 2))
}

func TestBoardLineDispatch(t *testing.T) {
	b := newTestBoard(t)
	rowLine := b.Line(LineInfo{Axis: AxisRow, Index: 1})
	assert.Equal(t, ConstraintList{1, 1}, rowLine.Constraints())

	colLine := b.Line(LineInfo{Axis: AxisColumn, Index: 1})
	assert.Equal(t, ConstraintList{3}, colLine.Constraints())
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := newTestBoard(t)
	b.SetCell(0, 0, Filled)

	clone := b.Clone()
	clone.SetCell(0, 0, Empty)

	assert.Equal(t, Filled, b.Cell(0, 0))
	assert.Equal(t, Empty, clone.Cell(0, 0))
}

func TestBoardMetaMarkSolved(t *testing.T) {
	meta := NewBoardMeta(3, 3)
	assert.Equal(t, 9, meta.NumUnsolved)

	meta.MarkSolved(1, 2)
	assert.Equal(t, 8, meta.NumUnsolved)
	assert.Equal(t, 2, meta.UnsolvedPerRow[2])
	assert.Equal(t, 2, meta.UnsolvedPerCol[1])
}

func TestBoardMetaCloneIsIndependent(t *testing.T) {
	meta := NewBoardMeta(2, 2)
	clone := meta.Clone()
	clone.MarkSolved(0, 0)

	assert.Equal(t, 4, meta.NumUnsolved)
	assert.Equal(t, 3, clone.NumUnsolved)
}

func TestBoardMetaLineUnsolved(t *testing.T) {
	meta := NewBoardMeta(2, 2)
	for meta.UnsolvedPerRow[0] > 0 {
		meta.MarkSolved(meta.UnsolvedPerRow[0]-1, 0)
	}
	assert.False(t, meta.LineUnsolved(LineInfo{Axis: AxisRow, Index: 0}))
	assert.True(t, meta.LineUnsolved(LineInfo{Axis: AxisRow, Index: 1}))
}

func TestBoardFirstUnknown(t *testing.T) {
	b := newTestBoard(t)
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			b.SetCell(col, row, Empty)
		}
	}
	b.SetCell(2, 1, Unknown)

	row, col, ok := b.FirstUnknown()
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)

	b.SetCell(2, 1, Filled)
	_, _, ok = b.FirstUnknown()
	assert.False(t, ok)
}
