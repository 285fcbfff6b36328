// Package day03 scans corrupted memory for uncorrupted instructions.
package day03

import (
	"regexp"
	"strconv"

	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   3,
		Title: "Mull It Over",
		Part1: Part1,
		Part2: Part2,
	})
}

var instruction = regexp.MustCompile(`mul\((\d+),(\d+)\)|do\(\)|don't\(\)`)

// Part1 sums every mul instruction in the memory dump.
func Part1(input string) (int, error) {
	total := 0
	for _, m := range instruction.FindAllStringSubmatch(input, -1) {
		if m[1] == "" {
			continue
		}
		a, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, err
		}
		b, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, err
		}
		total += a * b
	}
	return total, nil
}

// Part2 sums mul instructions, with don't() disabling them until the next
// do().
func Part2(input string) (int, error) {
	total := 0
	enabled := true
	for _, m := range instruction.FindAllStringSubmatch(input, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if !enabled {
				continue
			}
			a, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, err
			}
			b, err := strconv.Atoi(m[2])
			if err != nil {
				return 0, err
			}
			total += a * b
		}
	}
	return total, nil
}
