package puzzleio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eng618/nonogram-solver/pkg/nonogram"
)

func TestReadPuzzleParsesSentinelSections(t *testing.T) {
	input := strings.Join([]string{
		"=COLUMNS",
		"1",
		"3,1",
		"",
		"=ROWS",
		"1,1",
		"2",
	}, "\n")

	p, err := ReadPuzzle(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, p.Width)
	assert.Equal(t, 2, p.Height)
	assert.Equal(t, nonogram.ConstraintList{1}, p.ColConstraint[0])
	assert.Equal(t, nonogram.ConstraintList{3, 1}, p.ColConstraint[1])
	assert.Equal(t, nonogram.ConstraintList{}, p.ColConstraint[2])
	assert.Equal(t, nonogram.ConstraintList{1, 1}, p.RowConstraint[0])
	assert.Equal(t, nonogram.ConstraintList{2}, p.RowConstraint[1])
}

func TestReadPuzzleRejectsMissingSentinel(t *testing.T) {
	_, err := ReadPuzzle(strings.NewReader("1,2\n3\n"))
	assert.Error(t, err)
}

func TestReadPuzzleRejectsMissingRowsSection(t *testing.T) {
	_, err := ReadPuzzle(strings.NewReader("=COLUMNS\n1\n2\n"))
	assert.Error(t, err)
}

func TestReadPuzzleRejectsNonPositiveConstraint(t *testing.T) {
	input := "=COLUMNS\n0\n=ROWS\n1\n"
	_, err := ReadPuzzle(strings.NewReader(input))
	assert.Error(t, err)
}

func TestWritePuzzleRoundTrips(t *testing.T) {
	p := &Puzzle{
		Width:         2,
		Height:        2,
		ColConstraint: []nonogram.ConstraintList{{1}, {}},
		RowConstraint: []nonogram.ConstraintList{{1}, {1}},
	}
	var buf bytes.Buffer
	require.NoError(t, WritePuzzle(&buf, p))

	reread, err := ReadPuzzle(&buf)
	require.NoError(t, err)
	assert.Equal(t, p.Width, reread.Width)
	assert.Equal(t, p.Height, reread.Height)
	assert.Equal(t, p.ColConstraint, reread.ColConstraint)
	assert.Equal(t, p.RowConstraint, reread.RowConstraint)
}

func TestPuzzleNewBoardAllUnknown(t *testing.T) {
	p := &Puzzle{
		Width:         2,
		Height:        1,
		ColConstraint: []nonogram.ConstraintList{{1}, {1}},
		RowConstraint: []nonogram.ConstraintList{{1, 1}},
	}
	b, err := p.NewBoard()
	require.NoError(t, err)
	assert.Equal(t, nonogram.Unknown, b.Cell(0, 0))
	assert.Equal(t, nonogram.Unknown, b.Cell(1, 0))
}
