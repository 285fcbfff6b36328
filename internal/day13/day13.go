// Package day13 wins claw machine prizes for the fewest tokens.
package day13

import (
	"fmt"
	"strings"

	"github.com/BenDeJonge/advent-of-code-2024/internal/scan"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   13,
		Title: "Claw Contraption",
		Part1: Part1,
		Part2: Part2,
	})
}

const (
	costA = 3
	costB = 1

	part2Offset = 10_000_000_000_000
)

type machine struct {
	ax, ay int
	bx, by int
	px, py int
}

// parseLine pulls the X and Y values out of a line such as
// "Button A: X+94, Y+34" or "Prize: X=8400, Y=5400".
func parseLine(line, label string) (x, y int, err error) {
	rest, ok := scan.Literal(line, label+": X")
	if !ok {
		return 0, 0, fmt.Errorf("expected %q in %q", label, line)
	}
	x, rest, ok = scan.Int(strings.TrimLeft(rest, "+="))
	if !ok {
		return 0, 0, fmt.Errorf("no X value in %q", line)
	}
	rest, ok = scan.Literal(rest, ", Y")
	if !ok {
		return 0, 0, fmt.Errorf("no Y value in %q", line)
	}
	y, _, ok = scan.Int(strings.TrimLeft(rest, "+="))
	if !ok {
		return 0, 0, fmt.Errorf("no Y value in %q", line)
	}
	return x, y, nil
}

func parse(input string) ([]machine, error) {
	var machines []machine
	for _, block := range strings.Split(strings.TrimSpace(input), "\n\n") {
		lines := strings.Split(block, "\n")
		if len(lines) != 3 {
			return nil, fmt.Errorf("machine block has %d lines, want 3", len(lines))
		}
		var m machine
		var err error
		if m.ax, m.ay, err = parseLine(lines[0], "Button A"); err != nil {
			return nil, err
		}
		if m.bx, m.by, err = parseLine(lines[1], "Button B"); err != nil {
			return nil, err
		}
		if m.px, m.py, err = parseLine(lines[2], "Prize"); err != nil {
			return nil, err
		}
		machines = append(machines, m)
	}
	return machines, nil
}

// presses solves the two-equation system for button presses a and b with
// Cramer's rule. The button vectors are never parallel in practice, so a
// zero determinant means no prize. Non-integer or negative solutions mean
// no prize either.
func presses(m machine) (a, b int, ok bool) {
	det := m.ax*m.by - m.ay*m.bx
	if det == 0 {
		return 0, 0, false
	}
	aNum := m.px*m.by - m.py*m.bx
	bNum := m.ax*m.py - m.ay*m.px
	if aNum%det != 0 || bNum%det != 0 {
		return 0, 0, false
	}
	a, b = aNum/det, bNum/det
	if a < 0 || b < 0 {
		return 0, 0, false
	}
	return a, b, true
}

func tokens(machines []machine, maxPresses int) int {
	total := 0
	for _, m := range machines {
		a, b, ok := presses(m)
		if !ok {
			continue
		}
		if maxPresses > 0 && (a > maxPresses || b > maxPresses) {
			continue
		}
		total += costA*a + costB*b
	}
	return total
}

// Part1 sums the token cost of every winnable prize, capped at 100 presses
// per button.
func Part1(input string) (int, error) {
	machines, err := parse(input)
	if err != nil {
		return 0, err
	}
	return tokens(machines, 100), nil
}

// Part2 shifts every prize by ten trillion on both axes and drops the
// press cap.
func Part2(input string) (int, error) {
	machines, err := parse(input)
	if err != nil {
		return 0, err
	}
	for i := range machines {
		machines[i].px += part2Offset
		machines[i].py += part2Offset
	}
	return tokens(machines, 0), nil
}
