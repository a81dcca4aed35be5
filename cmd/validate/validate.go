package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/nonogram-solver/pkg/common"
	"github.com/eng618/nonogram-solver/pkg/puzzleio"
	"github.com/eng618/nonogram-solver/pkg/validator"
)

var (
	puzzleFlag   string
	solutionFlag string
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"val", "v"},
	Short:   "Validate a solution CSV against a puzzle file's constraints",
	Long: `Validate a solved board against the row/column constraints recorded
in its puzzle file.

The solution's cells are re-scanned for their implied run-length
constraints and compared against what the puzzle file states. Unknown
cells are skipped when runs are re-scanned; their count is reported
as a warning.

Examples:
  nonogram-solver validate --puzzle heart.puzzle --solution out/heart.csv`,
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

		solved, err := puzzleio.ReadSolutionBoard(sf)
		if err != nil {
			return fmt.Errorf("failed to parse solution: %w", err)
		}
		if solved.Width != board.Width || solved.Height != board.Height {
			return fmt.Errorf("solution is %dx%d, puzzle expects %dx%d",
				solved.Width, solved.Height, board.Width, board.Height)
		}
		copy(board.Cells, solved.Cells)

		result := validator.ValidateBoard(board)
		for _, w := range result.Warnings {
			common.Warning("%s", w)
		}
		for _, v := range result.Violations {
			common.Error("%s", v.String())
		}

		if !result.Valid {
			return fmt.Errorf("validation failed: %d violation(s)", len(result.Violations))
		}

		common.Info("Valid: %s matches %s", solutionFlag, puzzleFlag)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&puzzleFlag, "puzzle", "p", "", "path to a puzzle constraint file")
	validateCmd.Flags().StringVarP(&solutionFlag, "solution", "s", "", "path to a solution CSV to validate")
}

// GetCommand returns the validate command for registration with root.
func GetCommand() *cobra.Command {
	return validateCmd
}
