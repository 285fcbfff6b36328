// Package day15 drives the lanternfish warehouse robot.
package day15

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BenDeJonge/advent-of-code-2024/internal/grid"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   15,
		Title: "Warehouse Woes",
		Part1: Part1,
		Part2: Part2,
	})
}

const (
	wall     = '#'
	floor    = '.'
	robot    = '@'
	box      = 'O'
	boxLeft  = '['
	boxRight = ']'
)

func parse(input string) (grid.Grid[byte], []grid.Direction, error) {
	mapText, moveText, ok := strings.Cut(strings.TrimSpace(input), "\n\n")
	if !ok {
		return nil, nil, fmt.Errorf("missing blank line between map and moves")
	}
	g := grid.Parse(mapText)
	var moves []grid.Direction
	for _, c := range moveText {
		switch c {
		case '^':
			moves = append(moves, grid.North)
		case '>':
			moves = append(moves, grid.East)
		case 'v':
			moves = append(moves, grid.South)
		case '<':
			moves = append(moves, grid.West)
		case '\n':
		default:
			return nil, nil, fmt.Errorf("bad move %q", c)
		}
	}
	return g, moves, nil
}

// widen doubles the warehouse horizontally for part 2. Boxes become two
// cells wide, the robot stays one cell.
func widen(g grid.Grid[byte]) grid.Grid[byte] {
	wide := make(grid.Grid[byte], g.Rows())
	for r := range g {
		row := make([]byte, 0, 2*g.Cols())
		for _, cell := range g[r] {
			switch cell {
			case box:
				row = append(row, boxLeft, boxRight)
			case robot:
				row = append(row, robot, floor)
			default:
				row = append(row, cell, cell)
			}
		}
		wide[r] = row
	}
	return wide
}

// push moves the robot one step in direction d, shoving any chain of boxes
// ahead of it. It returns the robot's new position, unchanged when a wall
// blocks the push. The map border is solid wall, so stepping never leaves
// the grid.
func push(g grid.Grid[byte], pos grid.Coord, d grid.Direction) grid.Coord {
	moving := []grid.Coord{pos}
	seen := map[grid.Coord]bool{pos: true}
	enqueue := func(c grid.Coord) {
		if !seen[c] {
			seen[c] = true
			moving = append(moving, c)
		}
	}
	for i := 0; i < len(moving); i++ {
		next := moving[i].Step(d)
		switch g[next.Row][next.Col] {
		case wall:
			return pos
		case box:
			enqueue(next)
		case boxLeft:
			enqueue(next)
			enqueue(next.East())
		case boxRight:
			enqueue(next)
			enqueue(next.West())
		}
	}

	// Move the furthest cells first so nothing is overwritten.
	o := d.Offset()
	sort.Slice(moving, func(i, j int) bool {
		return moving[i].Row*o.Row+moving[i].Col*o.Col >
			moving[j].Row*o.Row+moving[j].Col*o.Col
	})
	for _, c := range moving {
		n := c.Step(d)
		g[n.Row][n.Col] = g[c.Row][c.Col]
		g[c.Row][c.Col] = floor
	}
	return pos.Step(d)
}

// gps sums the GPS coordinates, 100 times the row plus the column, of
// every box. Wide boxes are located by their left half.
func gps(g grid.Grid[byte]) int {
	total := 0
	for r := range g {
		for c, cell := range g[r] {
			if cell == box || cell == boxLeft {
				total += 100*r + c
			}
		}
	}
	return total
}

func run(g grid.Grid[byte], moves []grid.Direction) (int, error) {
	pos, ok := grid.Find(g, byte(robot))
	if !ok {
		return 0, fmt.Errorf("no robot on the map")
	}
	for _, d := range moves {
		pos = push(g, pos, d)
	}
	return gps(g), nil
}

// Part1 runs the move sequence and sums the box GPS coordinates.
func Part1(input string) (int, error) {
	g, moves, err := parse(input)
	if err != nil {
		return 0, err
	}
	return run(g, moves)
}

// Part2 does the same in the widened warehouse.
func Part2(input string) (int, error) {
	g, moves, err := parse(input)
	if err != nil {
		return 0, err
	}
	return run(widen(g), moves)
}
