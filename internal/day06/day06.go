// Package day06 traces the guard patrol through the lab.
package day06

import (
	"fmt"

	"github.com/BenDeJonge/advent-of-code-2024/internal/grid"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   6,
		Title: "Guard Gallivant",
		Part1: Part1,
		Part2: Part2,
	})
}

const (
	obstacle = '#'
	guard    = '^'
)

func parse(input string) (grid.Grid[byte], grid.Coord, error) {
	g := grid.Parse(input)
	start, ok := grid.Find(g, byte(guard))
	if !ok {
		return nil, grid.Coord{}, fmt.Errorf("no guard on the map")
	}
	return g, start, nil
}

type state struct {
	pos grid.Coord
	dir grid.Direction
}

// walk follows the patrol from start facing north. It returns every cell
// the guard visits, and whether the patrol loops instead of leaving the
// map.
func walk(g grid.Grid[byte], start grid.Coord) (map[grid.Coord]bool, bool) {
	visited := map[grid.Coord]bool{}
	seen := map[state]bool{}
	cur := state{pos: start, dir: grid.North}
	for {
		if seen[cur] {
			return visited, true
		}
		seen[cur] = true
		visited[cur.pos] = true

		next := cur.pos.Step(cur.dir)
		cell, in := g.At(next)
		if !in {
			return visited, false
		}
		if cell == obstacle {
			cur.dir = cur.dir.Clockwise()
		} else {
			cur.pos = next
		}
	}
}

// Part1 counts the distinct cells the guard visits before leaving.
func Part1(input string) (int, error) {
	g, start, err := parse(input)
	if err != nil {
		return 0, err
	}
	visited, _ := walk(g, start)
	return len(visited), nil
}

// Part2 counts the cells where a new obstacle would trap the guard in a
// loop. Only cells on the unobstructed route can change the patrol, and the
// start cell is off limits.
func Part2(input string) (int, error) {
	g, start, err := parse(input)
	if err != nil {
		return 0, err
	}
	visited, _ := walk(g, start)
	count := 0
	for pos := range visited {
		if pos == start {
			continue
		}
		g[pos.Row][pos.Col] = obstacle
		if _, looped := walk(g, start); looped {
			count++
		}
		g[pos.Row][pos.Col] = '.'
	}
	return count, nil
}
