package puzzleio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eng618/nonogram-solver/pkg/nonogram"
)

func TestReadSolutionBoardDerivesConstraints(t *testing.T) {
	// A plus sign on a 3x3 grid.
	csvData := strings.Join([]string{
		"0,1,0",
		"1,1,1",
		"0,1,0",
	}, "\n") + "\n"

	b, err := ReadSolutionBoard(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 3, b.Width)
	assert.Equal(t, 3, b.Height)
	assert.Equal(t, nonogram.ConstraintList{1}, b.RowConstraints[0])
	assert.Equal(t, nonogram.ConstraintList{3}, b.RowConstraints[1])
	assert.Equal(t, nonogram.ConstraintList{1}, b.ColConstraints[0])
	assert.Equal(t, nonogram.ConstraintList{3}, b.ColConstraints[1])
}

func TestReadSolutionBoardRejectsRaggedRows(t *testing.T) {
	_, err := ReadSolutionBoard(strings.NewReader("0,1\n0,1,0\n"))
	assert.Error(t, err)
}

func TestReadSolutionBoardRejectsBadCellValue(t *testing.T) {
	_, err := ReadSolutionBoard(strings.NewReader("0,7\n1,0\n"))
	assert.Error(t, err)
}

func TestReadSolutionBoardToleratesUnknownCells(t *testing.T) {
	b, err := ReadSolutionBoard(strings.NewReader("1,-1,0\n"))
	require.NoError(t, err)
	assert.Equal(t, nonogram.Filled, b.Cell(0, 0))
	assert.Equal(t, nonogram.Unknown, b.Cell(1, 0))
	assert.Equal(t, nonogram.Empty, b.Cell(2, 0))
	// A run broken by Unknown rather than Empty is not cut short.
	assert.Equal(t, nonogram.ConstraintList{1}, b.RowConstraints[0])
}

func TestWriteSolutionBoardRoundTrips(t *testing.T) {
	rows := []nonogram.ConstraintList{{1}, {3}, {1}}
	cols := []nonogram.ConstraintList{{1}, {3}, {1}}
	b, err := nonogram.NewBoard(3, 3, rows, cols)
	require.NoError(t, err)
	b.SetCell(1, 0, nonogram.Filled)
	b.SetCell(0, 1, nonogram.Filled)
	b.SetCell(1, 1, nonogram.Filled)
	b.SetCell(2, 1, nonogram.Filled)
	b.SetCell(1, 2, nonogram.Filled)
	for _, cell := range []struct{ col, row int }{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
		b.SetCell(cell.col, cell.row, nonogram.Empty)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSolutionBoard(&buf, b))

	reread, err := ReadSolutionBoard(&buf)
	require.NoError(t, err)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			assert.Equal(t, b.Cell(col, row), reread.Cell(col, row))
		}
	}
}

func TestConstraintsFromBoardMatchesCompletedRuns(t *testing.T) {
	rows := []nonogram.ConstraintList{{2}}
	cols := []nonogram.ConstraintList{{1}, {1}, {}}
	b, err := nonogram.NewBoard(3, 1, rows, cols)
	require.NoError(t, err)
	b.SetCell(0, 0, nonogram.Filled)
	b.SetCell(1, 0, nonogram.Filled)
	b.SetCell(2, 0, nonogram.Empty)

	gotRows, gotCols := ConstraintsFromBoard(b)
	assert.Equal(t, nonogram.ConstraintList{2}, gotRows[0])
	assert.Equal(t, nonogram.ConstraintList{1}, gotCols[0])
	assert.Equal(t, nonogram.ConstraintList{1}, gotCols[1])
	assert.Equal(t, nonogram.ConstraintList{}, gotCols[2])
}
