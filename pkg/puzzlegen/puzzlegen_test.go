package puzzlegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eng618/nonogram-solver/pkg/nonogram"
	"github.com/eng618/nonogram-solver/pkg/puzzleio"
	"github.com/eng618/nonogram-solver/pkg/validator"
)

func TestGenerateProducesASolvablePuzzle(t *testing.T) {
	_, puzzle, stats, err := Generate(Config{Width: 5, Height: 5, Density: 0.5, Seed: 42})
	require.NoError(t, err)
	assert.Greater(t, stats.Attempts, 0)

	blank, err := nonogram.NewBoard(puzzle.Width, puzzle.Height, puzzle.RowConstraint, puzzle.ColConstraint)
	require.NoError(t, err)
	meta := nonogram.NewBoardMeta(blank.Width, blank.Height)
	queue := nonogram.NewWorkQueue()
	queue.SeedAll(blank.Width, blank.Height)
	scratch := &nonogram.Scratch{}

	result := nonogram.Search(blank, meta, queue, scratch)
	require.Equal(t, nonogram.StatusSuccess, result.Status)

	// The generator guarantees *a* solution exists, not that the
	// search recovers the exact grid it started from (the puzzle may
	// admit more than one satisfying assignment).
	validation := validator.ValidateBoard(blank)
	assert.True(t, validation.Valid)
	assert.Empty(t, validation.Warnings)
}

func TestGenerateRejectsInvalidDimensions(t *testing.T) {
	_, _, _, err := Generate(Config{Width: 0, Height: 5})
	assert.Error(t, err)
}

func TestConstraintsFromBoardRoundTripsThroughPuzzleIO(t *testing.T) {
	filled, puzzle, _, err := Generate(Config{Width: 4, Height: 4, Density: 0.4, Seed: 7})
	require.NoError(t, err)
	rows, cols := puzzleio.ConstraintsFromBoard(filled)
	assert.Equal(t, rows, puzzle.RowConstraint)
	assert.Equal(t, cols, puzzle.ColConstraint)
}
