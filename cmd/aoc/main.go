// Command aoc runs the Advent of Code 2024 solutions.
package main

import (
	"os"

	"github.com/BenDeJonge/advent-of-code-2024/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
