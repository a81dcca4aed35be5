/*
Package batch provides the command-line interface for solving many
puzzle files concurrently.

Usage examples:

	nonogram-solver batch puzzles/*.puzzle --output-dir out
	nonogram-solver batch a.puzzle b.puzzle --workers 8 --stats-out stats.json
	nonogram-solver batch a.puzzle --no-branch

The command solves each file on its own goroutine (bounded by
--workers) and reports a summary of successes and failures at the end.
*/
package batch

import (
	"fmt"

	"github.com/spf13/cobra"

	batchsvc "github.com/eng618/nonogram-solver/pkg/batch"
	"github.com/eng618/nonogram-solver/pkg/common"
)

var (
	workers   int
	noBranch  bool
	outputDir string
	statsOut  string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <puzzle-file>...",
	Short: "Solve many puzzle files concurrently",
	Long: `Solve a list of puzzle files concurrently, one goroutine per file
bounded by --workers, and report a summary of successes and failures.

Examples:
  nonogram-solver batch puzzles/*.puzzle --output-dir out
  nonogram-solver batch a.puzzle b.puzzle --workers 8 --stats-out stats.json
  nonogram-solver batch a.puzzle --no-branch`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&workers, "workers", "j", 4, "number of concurrent workers")
	batchCmd.Flags().BoolVar(&noBranch, "no-branch", false, "propagate only; report stalled files without branching")
	batchCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory to write solved solution CSVs (optional)")
	batchCmd.Flags().StringVar(&statsOut, "stats-out", "", "optional path to write aggregate batch stats JSON")
}

// GetCommand returns the batch command
func GetCommand() *cobra.Command {
	return batchCmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	common.Info("Starting batch solve of %d file(s)...", len(args))

	result, err := batchsvc.Run(batchsvc.Config{
		Files:     args,
		OutputDir: outputDir,
		Workers:   workers,
		NoBranch:  noBranch,
		StatsOut:  statsOut,
	})
	if err != nil {
		return err
	}

	return reportSummary(result)
}

func reportSummary(batch *batchsvc.Batch) error {
	common.Info("\n=== Batch Solve Summary ===")
	common.Info("Total Time: %v", batch.TotalTime)
	common.Info("Success: %d / %d", batch.SuccessCount, len(batch.Results))
	common.Info("Failures: %d", batch.FailureCount)

	if batch.FailureCount == 0 {
		return nil
	}

	common.Warning("\nFailed files:")
	for _, result := range batch.Results {
		if !result.Success {
			common.Warning("  %s (%s): %s", result.File, result.Status, result.Error)
		}
	}
	return fmt.Errorf("batch solve completed with %d failure(s)", batch.FailureCount)
}
