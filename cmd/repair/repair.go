package repair

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/nonogram-solver/pkg/common"
	"github.com/eng618/nonogram-solver/pkg/nonogram"
	"github.com/eng618/nonogram-solver/pkg/puzzleio"
	"github.com/eng618/nonogram-solver/pkg/validator"
)

var (
	puzzleFlag   string
	solutionFlag string
	outputFlag   string
)

// repairCmd repairs a damaged solution CSV (cells marked -1/Unknown) by
// running propagation and branching search against the puzzle's stated
// constraints, then re-validating the recovered board.
var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Recover a damaged solution CSV from its puzzle constraints",
	Long: `Repair a solution CSV that has some cells marked -1 (Unknown, i.e.
illegible or lost) by re-solving it against the puzzle's row/column
constraints.

Examples:
  nonogram-solver repair --puzzle heart.puzzle --solution damaged.csv --output fixed.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if puzzleFlag == "" || solutionFlag == "" {
			return fmt.Errorf("please provide both --puzzle and --solution")
		}

		pf, err := os.Open(puzzleFlag)
		if err != nil {
			return fmt.Errorf("failed to open puzzle file: %w", err)
		}
		defer pf.Close()

		puzzle, err := puzzleio.ReadPuzzle(pf)
		if err != nil {
			return fmt.Errorf("failed to parse puzzle: %w", err)
		}

		board, err := puzzle.NewBoard()
		if err != nil {
			return fmt.Errorf("building board from puzzle: %w", err)
		}

		sf, err := os.Open(solutionFlag)
		if err != nil {
			return fmt.Errorf("failed to open solution file: %w", err)
		}
		defer sf.Close()

		damaged, err := puzzleio.ReadSolutionBoard(sf)
		if err != nil {
			return fmt.Errorf("failed to parse damaged solution: %w", err)
		}
		if damaged.Width != board.Width || damaged.Height != board.Height {
			return fmt.Errorf("solution is %dx%d, puzzle expects %dx%d",
				damaged.Width, damaged.Height, board.Width, board.Height)
		}
		copy(board.Cells, damaged.Cells)

		meta := rebuildMeta(board)
		queue := nonogram.NewWorkQueue()
		queue.SeedAll(board.Width, board.Height)
		scratch := &nonogram.Scratch{}

		result := nonogram.Search(board, meta, queue, scratch)
		common.Info("Repair status: %s (branches=%d)", result.Status, result.Branches)
		if result.Status != nonogram.StatusSuccess {
			return fmt.Errorf("could not repair solution: %s", result.Status)
		}

		validation := validator.ValidateBoard(board)
		for _, v := range validation.Violations {
			common.Error("%s", v.String())
		}
		if !validation.Valid {
			return fmt.Errorf("repaired board does not match its constraints")
		}

		out := solutionFlag
		if outputFlag != "" {
			out = outputFlag
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		if err := puzzleio.WriteSolutionBoard(f, board); err != nil {
			return fmt.Errorf("writing repaired solution: %w", err)
		}

		common.Info("Repaired solution written to %s", out)
		return nil
	},
}

// rebuildMeta marks every already-determined cell as solved so the
// work queue only re-derives lines that still have Unknown cells.
func rebuildMeta(b *nonogram.Board) *nonogram.BoardMeta {
	meta := nonogram.NewBoardMeta(b.Width, b.Height)
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if b.Cell(col, row) != nonogram.Unknown {
				meta.MarkSolved(col, row)
			}
		}
	}
	return meta
}

func init() {
	repairCmd.Flags().StringVarP(&puzzleFlag, "puzzle", "p", "", "path to a puzzle constraint file")
	repairCmd.Flags().StringVarP(&solutionFlag, "solution", "s", "", "path to the damaged solution CSV")
	repairCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "where to write the repaired CSV (default: overwrite --solution)")
}

// GetCommand returns the repair command for registration with root.
func GetCommand() *cobra.Command {
	return repairCmd
}
