package render

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/nonogram-solver/pkg/puzzleio"
	"github.com/eng618/nonogram-solver/pkg/render"
)

var (
	fileFlag string
	noColor  bool
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a solution CSV to the terminal",
	Long: `Render a solved board to the terminal for quick visual inspection.

Reads a solution CSV (as written by the solve or batch commands) and
prints it as a labeled grid.

Examples:
  nonogram-solver render --file out/heart.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fileFlag == "" {
			return fmt.Errorf("please provide --file with a solution CSV to render")
		}

		f, err := os.Open(fileFlag)
		if err != nil {
			return fmt.Errorf("failed to open solution file: %w", err)
		}
		defer f.Close()

		board, err := puzzleio.ReadSolutionBoard(f)
		if err != nil {
			return fmt.Errorf("failed to read solution: %w", err)
		}

		render.Board(cmd.OutOrStdout(), board, render.Options{Color: !noColor})
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "path to a solution CSV to render")
	renderCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colorized rendering")
}

// GetCommand returns the render command for registration with root.
func GetCommand() *cobra.Command {
	return renderCmd
}
