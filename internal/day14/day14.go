// Package day14 predicts patrolling robots outside the bathroom.
package day14

import (
	"fmt"
	"strings"

	"github.com/BenDeJonge/advent-of-code-2024/internal/scan"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   14,
		Title: "Restroom Redoubt",
		Part1: Part1,
		Part2: Part2,
	})
}

// Full puzzle floor dimensions.
const (
	width  = 101
	height = 103
)

type robot struct {
	px, py int
	vx, vy int
}

func parse(input string) ([]robot, error) {
	var robots []robot
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		var r robot
		rest, ok := scan.Literal(line, "p=")
		if !ok {
			return nil, fmt.Errorf("line %d: missing position", i+1)
		}
		if r.px, rest, ok = scan.Int(rest); !ok {
			return nil, fmt.Errorf("line %d: bad position", i+1)
		}
		rest, _ = scan.Literal(rest, ",")
		if r.py, rest, ok = scan.Int(rest); !ok {
			return nil, fmt.Errorf("line %d: bad position", i+1)
		}
		rest, ok = scan.Literal(rest, " v=")
		if !ok {
			return nil, fmt.Errorf("line %d: missing velocity", i+1)
		}
		if r.vx, rest, ok = scan.Int(rest); !ok {
			return nil, fmt.Errorf("line %d: bad velocity", i+1)
		}
		rest, _ = scan.Literal(rest, ",")
		if r.vy, _, ok = scan.Int(rest); !ok {
			return nil, fmt.Errorf("line %d: bad velocity", i+1)
		}
		robots = append(robots, r)
	}
	return robots, nil
}

// at returns the robot's wrapped position after the given number of steps.
func (r robot) at(steps, w, h int) (x, y int) {
	x = ((r.px+r.vx*steps)%w + w) % w
	y = ((r.py+r.vy*steps)%h + h) % h
	return x, y
}

// safety multiplies the robot counts of the four quadrants. Robots on the
// middle row or column count for no quadrant.
func safety(robots []robot, steps, w, h int) int {
	var quadrants [4]int
	for _, r := range robots {
		x, y := r.at(steps, w, h)
		if x == w/2 || y == h/2 {
			continue
		}
		q := 0
		if x > w/2 {
			q |= 1
		}
		if y > h/2 {
			q |= 2
		}
		quadrants[q]++
	}
	return quadrants[0] * quadrants[1] * quadrants[2] * quadrants[3]
}

// Part1 computes the safety factor after 100 seconds.
func Part1(input string) (int, error) {
	robots, err := parse(input)
	if err != nil {
		return 0, err
	}
	return safety(robots, 100, width, height), nil
}

// Part2 finds the second when the robots draw the Easter egg. The picture
// concentrates the robots in one quadrant, so it is the step with the
// lowest safety factor.
func Part2(input string) (int, error) {
	robots, err := parse(input)
	if err != nil {
		return 0, err
	}
	best, bestStep := -1, 0
	for steps := 0; steps <= 10_000; steps++ {
		if s := safety(robots, steps, width, height); best < 0 || s < best {
			best, bestStep = s, steps
		}
	}
	return bestStep, nil
}
