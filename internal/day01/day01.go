// Package day01 pairs up two lists of location IDs.
package day01

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BenDeJonge/advent-of-code-2024/internal/scan"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   1,
		Title: "Historian Hysteria",
		Part1: Part1,
		Part2: Part2,
	})
}

func parse(input string) (left, right []int, err error) {
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		l, rest, ok := scan.Decimal(line)
		if !ok {
			return nil, nil, fmt.Errorf("line %d: no left value", i+1)
		}
		r, _, ok := scan.Decimal(strings.TrimLeft(rest, " "))
		if !ok {
			return nil, nil, fmt.Errorf("line %d: no right value", i+1)
		}
		left = append(left, l)
		right = append(right, r)
	}
	return left, right, nil
}

// Part1 sums the distances between the sorted lists, pairing smallest with
// smallest.
func Part1(input string) (int, error) {
	left, right, err := parse(input)
	if err != nil {
		return 0, err
	}
	sort.Ints(left)
	sort.Ints(right)
	total := 0
	for i := range left {
		d := left[i] - right[i]
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total, nil
}

// Part2 scores each left value by how often it appears in the right list.
func Part2(input string) (int, error) {
	left, right, err := parse(input)
	if err != nil {
		return 0, err
	}
	counts := make(map[int]int, len(right))
	for _, r := range right {
		counts[r]++
	}
	total := 0
	for _, l := range left {
		total += l * counts[l]
	}
	return total, nil
}
