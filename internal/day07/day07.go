// Package day07 repairs bridge calibration equations by inserting
// operators.
package day07

import (
	"fmt"
	"strings"

	"github.com/BenDeJonge/advent-of-code-2024/internal/scan"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   7,
		Title: "Bridge Repair",
		Part1: Part1,
		Part2: Part2,
	})
}

type equation struct {
	target   int
	operands []int
}

func parse(input string) ([]equation, error) {
	var eqs []equation
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		target, rest, ok := scan.Decimal(line)
		if !ok {
			return nil, fmt.Errorf("line %d: no target", i+1)
		}
		rest, ok = scan.Literal(rest, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: missing colon", i+1)
		}
		var operands []int
		for _, field := range strings.Fields(rest) {
			n, trail, ok := scan.Decimal(field)
			if !ok || trail != "" {
				return nil, fmt.Errorf("line %d: bad operand %q", i+1, field)
			}
			operands = append(operands, n)
		}
		if len(operands) == 0 {
			return nil, fmt.Errorf("line %d: no operands", i+1)
		}
		eqs = append(eqs, equation{target: target, operands: operands})
	}
	return eqs, nil
}

// concat glues b onto the end of a, so concat(12, 345) is 12345.
func concat(a, b int) int {
	shift := 1
	for range scan.CountDigits(b) {
		shift *= 10
	}
	return a*shift + b
}

// solvable tries every operator assignment left to right. Operators cannot
// shrink the accumulator, so branches past the target are pruned.
func solvable(eq equation, acc int, rest []int, withConcat bool) bool {
	if acc > eq.target {
		return false
	}
	if len(rest) == 0 {
		return acc == eq.target
	}
	next, rest := rest[0], rest[1:]
	if solvable(eq, acc+next, rest, withConcat) {
		return true
	}
	if solvable(eq, acc*next, rest, withConcat) {
		return true
	}
	return withConcat && solvable(eq, concat(acc, next), rest, withConcat)
}

func total(input string, withConcat bool) (int, error) {
	eqs, err := parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, eq := range eqs {
		if solvable(eq, eq.operands[0], eq.operands[1:], withConcat) {
			sum += eq.target
		}
	}
	return sum, nil
}

// Part1 sums the targets reachable with + and *.
func Part1(input string) (int, error) {
	return total(input, false)
}

// Part2 also allows the concatenation operator.
func Part2(input string) (int, error) {
	return total(input, true)
}
