// Package batch solves many puzzle files concurrently, one goroutine
// per file bounded by a worker pool — concurrency across independent
// puzzles, never inside a single puzzle's branching search. Grounded on
// the teacher's Config/Result/aggregate-batch shape and its
// semaphore-bounded goroutine-per-item loop.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/eng618/nonogram-solver/pkg/common"
	"github.com/eng618/nonogram-solver/pkg/nonogram"
	"github.com/eng618/nonogram-solver/pkg/puzzleio"
)

// Config holds configuration for a batch solve run.
type Config struct {
	Files     []string
	OutputDir string // where to write solution CSVs; empty means don't write
	Workers   int    // bounded concurrency; <= 0 means 4
	NoBranch  bool   // propagation only, no branching search
	StatsOut  string // optional path to write aggregate stats JSON
}

// Result holds the outcome of solving a single puzzle file.
type Result struct {
	File      string
	Success   bool
	Error     string
	Status    string // "success", "contradiction", or "stalled"; empty if the file could not be read or parsed
	Branches  int
	ElapsedMS int64
}

// Batch is the aggregate outcome of a batch run.
type Batch struct {
	Results      []Result
	TotalTime    time.Duration
	SuccessCount int
	FailureCount int
}

// Run solves every file in cfg.Files, at most cfg.Workers at a time,
// and collects one Result per file.
func Run(cfg Config) (*Batch, error) {
	if len(cfg.Files) == 0 {
		return nil, fmt.Errorf("no puzzle files given")
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}

	start := time.Now()
	sem := make(chan struct{}, workers)
	resultsCh := make(chan Result, len(cfg.Files))
	var wg sync.WaitGroup

	for _, file := range cfg.Files {
		file := file
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			resultsCh <- solveOne(file, cfg)
		}()
	}

	wg.Wait()
	close(resultsCh)

	batch := &Batch{}
	for r := range resultsCh {
		batch.Results = append(batch.Results, r)
		if r.Success {
			batch.SuccessCount++
		} else {
			batch.FailureCount++
		}
	}
	batch.TotalTime = time.Since(start)

	if cfg.StatsOut != "" {
		if err := writeStats(cfg.StatsOut, batch); err != nil {
			common.Warning("failed to write batch stats: %v", err)
		}
	}

	return batch, nil
}

func solveOne(file string, cfg Config) Result {
	result := Result{File: file}
	start := time.Now()

	f, err := os.Open(file)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer f.Close()

	puzzle, err := puzzleio.ReadPuzzle(f)
	if err != nil {
		result.Error = fmt.Errorf("reading puzzle: %w", err).Error()
		return result
	}

	board, err := puzzle.NewBoard()
	if err != nil {
		result.Error = fmt.Errorf("building board: %w", err).Error()
		return result
	}

	meta := nonogram.NewBoardMeta(board.Width, board.Height)
	queue := nonogram.NewWorkQueue()
	queue.SeedAll(board.Width, board.Height)
	scratch := &nonogram.Scratch{}

	var status nonogram.Status
	branches := 0
	if cfg.NoBranch {
		status = nonogram.Propagate(board, meta, queue, scratch)
	} else {
		searchResult := nonogram.Search(board, meta, queue, scratch)
		status = searchResult.Status
		branches = searchResult.Branches
	}

	result.Status = status.String()
	result.Branches = branches
	result.ElapsedMS = time.Since(start).Milliseconds()
	result.Success = status == nonogram.StatusSuccess

	if result.Success && cfg.OutputDir != "" {
		if err := writeSolution(cfg.OutputDir, file, board); err != nil {
			result.Error = err.Error()
			result.Success = false
		}
	}

	return result
}

func writeSolution(outputDir, sourceFile string, board *nonogram.Board) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	name := baseNameWithoutExt(sourceFile) + ".csv"
	out, err := os.Create(filepath.Join(outputDir, name))
	if err != nil {
		return fmt.Errorf("creating solution file: %w", err)
	}
	defer out.Close()
	return puzzleio.WriteSolutionBoard(out, board)
}

func baseNameWithoutExt(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)]
}

// writeStats writes one JSON record per file (matching the shape
// cmd stats expects) so a batch run's results can be aggregated later.
func writeStats(path string, batch *Batch) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating stats dir: %w", err)
		}
	}
	b, err := json.MarshalIndent(batch.Results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling batch stats: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("writing batch stats: %w", err)
	}
	common.Info("Wrote batch stats: %s", path)
	return nil
}
