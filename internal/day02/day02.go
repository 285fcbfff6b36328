// Package day02 checks reactor level reports for safe gradients.
package day02

import (
	"fmt"
	"strings"

	"github.com/BenDeJonge/advent-of-code-2024/internal/scan"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   2,
		Title: "Red-Nosed Reports",
		Part1: Part1,
		Part2: Part2,
	})
}

func parse(input string) ([][]int, error) {
	var reports [][]int
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		var levels []int
		for _, field := range strings.Fields(line) {
			n, rest, ok := scan.Decimal(field)
			if !ok || rest != "" {
				return nil, fmt.Errorf("line %d: bad level %q", i+1, field)
			}
			levels = append(levels, n)
		}
		reports = append(reports, levels)
	}
	return reports, nil
}

// safe reports whether consecutive levels all move in one direction by 1
// to 3.
func safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	increasing := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if !increasing {
			d = -d
		}
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

// safeDampened reports whether the report is safe outright or after
// dropping any single level.
func safeDampened(levels []int) bool {
	if safe(levels) {
		return true
	}
	for i := range levels {
		trimmed := make([]int, 0, len(levels)-1)
		trimmed = append(trimmed, levels[:i]...)
		trimmed = append(trimmed, levels[i+1:]...)
		if safe(trimmed) {
			return true
		}
	}
	return false
}

// Part1 counts safe reports.
func Part1(input string) (int, error) {
	reports, err := parse(input)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, levels := range reports {
		if safe(levels) {
			count++
		}
	}
	return count, nil
}

// Part2 counts reports that the problem dampener can tolerate.
func Part2(input string) (int, error) {
	reports, err := parse(input)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, levels := range reports {
		if safeDampened(levels) {
			count++
		}
	}
	return count, nil
}
