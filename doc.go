// Command nonogram-solver solves nonogram (paint-by-numbers) puzzles.
//
// # Overview
//
// Given a puzzle file of row and column run-length constraints,
// nonogram-solver fills in the grid by alternating line propagation
// (deriving every cell a line's constraints force, regardless of its
// neighbors) with a branching search over the first remaining unknown
// cell when propagation alone stalls. It renders the solved board to
// the terminal and can write it out as a solution CSV.
//
// # Commands
//
// ## (root)
//
// Solve a puzzle file directly:
//
//	nonogram-solver puzzle.txt
//	nonogram-solver puzzle.txt --no-branch
//	nonogram-solver puzzle.txt --output solved.csv
//
// ## render
//
// Render a previously solved solution CSV to the terminal:
//
//	nonogram-solver render --file out/heart.csv
//
// ## validate
//
// Check a solution CSV against a puzzle file's constraints:
//
//	nonogram-solver validate --puzzle heart.puzzle --solution out/heart.csv
//
// ## repair
//
// Recover a solution CSV with damaged (Unknown) cells from its puzzle
// constraints:
//
//	nonogram-solver repair --puzzle heart.puzzle --solution damaged.csv --output fixed.csv
//
// ## batch
//
// Solve many puzzle files concurrently:
//
//	nonogram-solver batch puzzles/*.puzzle --output-dir out --workers 8
//
// ## newpuzzle
//
// Generate a new random solvable puzzle:
//
//	nonogram-solver newpuzzle --width 15 --height 15 --output random.puzzle
//
// # Package Structure
//
//	cmd/              - Cobra command implementations
//	pkg/nonogram/      - line solver, work queue, propagation, branching search
//	pkg/puzzleio/       - puzzle and solution file formats
//	pkg/render/         - terminal rendering
//	pkg/validator/      - constraint round-trip verification
//	pkg/batch/          - concurrent multi-puzzle solving
//	pkg/puzzlegen/       - random puzzle generation
//	pkg/common/         - logging
//	pkg/ui/             - progress spinner
package main
