// Package day11 simulates blinking at the Plutonian pebbles.
package day11

import (
	"fmt"
	"strings"

	"github.com/BenDeJonge/advent-of-code-2024/internal/scan"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   11,
		Title: "Plutonian Pebbles",
		Part1: Part1,
		Part2: Part2,
	})
}

func parse(input string) (map[int]int, error) {
	stones := map[int]int{}
	for _, field := range strings.Fields(input) {
		n, rest, ok := scan.Decimal(field)
		if !ok || rest != "" {
			return nil, fmt.Errorf("bad stone %q", field)
		}
		stones[n]++
	}
	return stones, nil
}

// blink applies one step of the rules to every stone. The order of stones
// never matters, so they are tracked as value counts.
func blink(stones map[int]int) map[int]int {
	next := make(map[int]int, len(stones))
	for stone, count := range stones {
		switch digits := scan.CountDigits(stone); {
		case stone == 0:
			next[1] += count
		case digits%2 == 0:
			shift := 1
			for range digits / 2 {
				shift *= 10
			}
			next[stone/shift] += count
			next[stone%shift] += count
		default:
			next[stone*2024] += count
		}
	}
	return next
}

func countAfter(input string, blinks int) (int, error) {
	stones, err := parse(input)
	if err != nil {
		return 0, err
	}
	for range blinks {
		stones = blink(stones)
	}
	total := 0
	for _, count := range stones {
		total += count
	}
	return total, nil
}

// Part1 counts the stones after 25 blinks.
func Part1(input string) (int, error) {
	return countAfter(input, 25)
}

// Part2 counts the stones after 75 blinks.
func Part2(input string) (int, error) {
	return countAfter(input, 75)
}
