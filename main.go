package main

import "github.com/eng618/nonogram-solver/cmd"

func main() {
	cmd.Execute()
}
