package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eng618/nonogram-solver/cmd/batch"
	"github.com/eng618/nonogram-solver/cmd/newpuzzle"
	"github.com/eng618/nonogram-solver/cmd/render"
	"github.com/eng618/nonogram-solver/cmd/repair"
	"github.com/eng618/nonogram-solver/cmd/validate"
	"github.com/eng618/nonogram-solver/pkg/common"
	"github.com/eng618/nonogram-solver/pkg/nonogram"
	renderpkg "github.com/eng618/nonogram-solver/pkg/render"
	"github.com/eng618/nonogram-solver/pkg/puzzleio"
	"github.com/eng618/nonogram-solver/pkg/ui"
)

var (
	// Global flags
	verbose bool
	noColor bool

	// Solve flags
	noBranch bool
	outFile  string
)

// rootCmd represents the base command when called without any subcommands.
// Given a puzzle file, it solves it and prints the solution to stdout.
var rootCmd = &cobra.Command{
	Use:   "nonogram-solver [puzzle-file]",
	Short: "Solve nonogram (paint-by-numbers) puzzles",
	Long: `nonogram-solver reads a puzzle file of row/column constraints,
solves it by line propagation plus branching search, and renders the
solution to the terminal.

It provides commands for:
  - Solving a puzzle file directly (the default command)
  - Rendering a solved board for visual inspection
  - Validating a solution against its stated constraints
  - Repairing a solution file with damaged (unknown) cells
  - Batch-solving many puzzle files concurrently
  - Generating new random solvable puzzles`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose
		common.Verbose("verbose logging enabled")
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return solvePuzzleFile(cmd, args[0])
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized rendering")

	rootCmd.Flags().BoolVar(&noBranch, "no-branch", false, "propagate only; report stalled instead of branching")
	rootCmd.Flags().StringVarP(&outFile, "output", "o", "", "write the solved grid as a solution CSV to this path")

	rootCmd.AddCommand(render.GetCommand())
	rootCmd.AddCommand(validate.GetCommand())
	rootCmd.AddCommand(repair.GetCommand())
	rootCmd.AddCommand(batch.GetCommand())
	rootCmd.AddCommand(newpuzzle.GetCommand())
}

func solvePuzzleFile(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening puzzle file: %w", err)
	}
	defer f.Close()

	puzzle, err := puzzleio.ReadPuzzle(f)
	if err != nil {
		return fmt.Errorf("reading puzzle: %w", err)
	}

	board, err := puzzle.NewBoard()
	if err != nil {
		return fmt.Errorf("building board: %w", err)
	}

	meta := nonogram.NewBoardMeta(board.Width, board.Height)
	queue := nonogram.NewWorkQueue()
	queue.SeedAll(board.Width, board.Height)
	scratch := &nonogram.Scratch{}

	spin := ui.NewSpinner(fmt.Sprintf("solving %s", path))
	spin.Start()
	start := time.Now()

	var status nonogram.Status
	branches := 0
	if noBranch {
		status = nonogram.Propagate(board, meta, queue, scratch)
	} else {
		result := nonogram.Search(board, meta, queue, scratch)
		status = result.Status
		branches = result.Branches
	}
	elapsed := time.Since(start)
	spin.Stop()

	common.Verbose("status=%s branches=%d elapsed=%s", status, branches, elapsed)

	renderpkg.Board(cmd.OutOrStdout(), board, renderpkg.Options{Color: !noColor})

	switch status {
	case nonogram.StatusContradiction:
		return fmt.Errorf("puzzle has no solution: constraints are contradictory")
	case nonogram.StatusStalled:
		return fmt.Errorf("propagation stalled without a solution (try without --no-branch)")
	}

	if outFile != "" {
		out, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer out.Close()
		if err := puzzleio.WriteSolutionBoard(out, board); err != nil {
			return fmt.Errorf("writing solution: %w", err)
		}
		common.Info("Wrote solution: %s", outFile)
	}

	return nil
}
