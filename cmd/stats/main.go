// Command stats summarizes the aggregate batch stats JSON written by
// the batch command's --stats-out flag.
package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Stat mirrors one entry of pkg/batch.Result as marshaled by the batch
// command's --stats-out flag.
type Stat struct {
	File      string `json:"File"`
	Success   bool   `json:"Success"`
	Error     string `json:"Error"`
	Status    string `json:"Status"`
	Branches  int    `json:"Branches"`
	ElapsedMS int64  `json:"ElapsedMS"`
}

func summarize(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var arr []Stat
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	if len(arr) == 0 {
		fmt.Printf("%s: no results\n", path)
		return nil
	}

	successes := 0
	totalBranches := 0
	maxBranches := 0
	totalTime := int64(0)
	for _, s := range arr {
		if s.Success {
			successes++
		}
		totalBranches += s.Branches
		if s.Branches > maxBranches {
			maxBranches = s.Branches
		}
		totalTime += s.ElapsedMS
	}
	n := len(arr)
	fmt.Printf(
		"%s: files=%d success=%d avg_branches=%.1f max_branches=%d avg_time_ms=%.1f\n",
		path, n, successes, float64(totalBranches)/float64(n), maxBranches, float64(totalTime)/float64(n),
	)
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: stats <file1> [file2 ...]")
		os.Exit(1)
	}
	for _, p := range os.Args[1:] {
		if err := summarize(p); err != nil {
			fmt.Printf("error summarizing %s: %v\n", p, err)
		}
	}
}
