// Package day08 locates antinodes of resonant antenna pairs.
package day08

import (
	"github.com/BenDeJonge/advent-of-code-2024/internal/grid"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   8,
		Title: "Resonant Collinearity",
		Part1: Part1,
		Part2: Part2,
	})
}

func parse(input string) (map[byte][]grid.Coord, grid.Coord) {
	g := grid.Parse(input)
	antennas := map[byte][]grid.Coord{}
	for r := range g {
		for c, cell := range g[r] {
			if cell != '.' {
				antennas[cell] = append(antennas[cell], grid.C(r, c))
			}
		}
	}
	return antennas, g.Bounds()
}

// Part1 counts cells that are twice as far from one antenna of a pair as
// from the other.
func Part1(input string) (int, error) {
	antennas, bounds := parse(input)
	nodes := map[grid.Coord]bool{}
	for _, coords := range antennas {
		for i, a := range coords {
			for _, b := range coords[i+1:] {
				d := b.Sub(a)
				for _, n := range []grid.Coord{b.Add(d), a.Sub(d)} {
					if n.In(grid.Coord{}, bounds) {
						nodes[n] = true
					}
				}
			}
		}
	}
	return len(nodes), nil
}

// Part2 extends the antinodes along the whole line through each pair, the
// antennas themselves included.
func Part2(input string) (int, error) {
	antennas, bounds := parse(input)
	nodes := map[grid.Coord]bool{}
	for _, coords := range antennas {
		for i, a := range coords {
			for _, b := range coords[i+1:] {
				d := b.Sub(a)
				for n := b; n.In(grid.Coord{}, bounds); n = n.Add(d) {
					nodes[n] = true
				}
				for n := a; n.In(grid.Coord{}, bounds); n = n.Sub(d) {
					nodes[n] = true
				}
			}
		}
	}
	return len(nodes), nil
}
