// Package puzzlegen generates random solvable puzzles: fill a grid at
// random, derive its constraints, and confirm the branching search can
// recover a solution from those constraints alone before handing the
// puzzle back to the caller. Grounded on the teacher's
// generate-then-verify-with-the-solver pipeline shape
// (pkg/gen2/gen2.go's GenerateLevel / GenerateRobust).
package puzzlegen

import (
	"fmt"
	"math/rand"

	"github.com/eng618/nonogram-solver/pkg/nonogram"
	"github.com/eng618/nonogram-solver/pkg/puzzleio"
)

// Config holds configuration for one puzzle-generation attempt.
type Config struct {
	Width, Height int
	// Density is the target fraction of Filled cells, in (0, 1).
	Density float64
	Seed    int64
	// MaxAttempts bounds how many random fills are tried before giving
	// up on this call; each attempt that fails solvability is discarded
	// and a new random grid is tried.
	MaxAttempts int
}

// Stats reports how a generation attempt went, for the caller to log.
type Stats struct {
	Attempts int
	Branches int
}

// Generate produces a random board, derives its constraints, and
// verifies the result is solvable by the branching search before
// returning it. It returns the solved board (whose cells already hold
// the generated solution) and the puzzle constraints derived from it.
func Generate(cfg Config) (*nonogram.Board, *puzzleio.Puzzle, Stats, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, nil, Stats{}, fmt.Errorf("invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Density <= 0 || cfg.Density >= 1 {
		cfg.Density = 0.55
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 20
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	stats := Stats{}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		stats.Attempts++

		filled := randomGrid(cfg.Width, cfg.Height, cfg.Density, rng)
		rows, cols := puzzleio.ConstraintsFromBoard(filled)

		blank, err := nonogram.NewBoard(cfg.Width, cfg.Height, rows, cols)
		if err != nil {
			continue
		}
		meta := nonogram.NewBoardMeta(cfg.Width, cfg.Height)
		queue := nonogram.NewWorkQueue()
		queue.SeedAll(cfg.Width, cfg.Height)
		scratch := &nonogram.Scratch{}

		result := nonogram.Search(blank, meta, queue, scratch)
		stats.Branches += result.Branches
		if result.Status != nonogram.StatusSuccess {
			continue
		}

		puzzle := &puzzleio.Puzzle{
			Width:         cfg.Width,
			Height:        cfg.Height,
			RowConstraint: rows,
			ColConstraint: cols,
		}
		return filled, puzzle, stats, nil
	}

	return nil, nil, stats, fmt.Errorf("no solvable puzzle found in %d attempts", maxAttempts)
}

// randomGrid builds a fully-determined board with each cell
// independently Filled with the given probability.
func randomGrid(width, height int, density float64, rng *rand.Rand) *nonogram.Board {
	cells := make([]nonogram.Cell, width*height)
	for i := range cells {
		if rng.Float64() < density {
			cells[i] = nonogram.Filled
		} else {
			cells[i] = nonogram.Empty
		}
	}
	rowConstraints := make([]nonogram.ConstraintList, height)
	colConstraints := make([]nonogram.ConstraintList, width)
	for i := range rowConstraints {
		rowConstraints[i] = nonogram.ConstraintList{}
	}
	for i := range colConstraints {
		colConstraints[i] = nonogram.ConstraintList{}
	}
	// NewBoard requires constraint lists up front but we only know the
	// cell contents so far; placeholder empty lists are replaced below
	// once the board exists to read cells back from.
	board, _ := nonogram.NewBoard(width, height, rowConstraints, colConstraints)
	copy(board.Cells, cells)
	rows, cols := puzzleio.ConstraintsFromBoard(board)
	board.RowConstraints = rows
	board.ColConstraints = cols
	return board
}
