// Package day10 scores hiking trails on a topographic map.
package day10

import (
	"github.com/BenDeJonge/advent-of-code-2024/internal/grid"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   10,
		Title: "Hoof It",
		Part1: Part1,
		Part2: Part2,
	})
}

// summits collects the peaks reachable from c by climbing exactly one
// level per step, and tallies how many distinct trails reach each one.
func summits(g grid.Grid[byte], c grid.Coord, peaks map[grid.Coord]int) {
	height, _ := g.At(c)
	if height == '9' {
		peaks[c]++
		return
	}
	for _, n := range c.Cardinals() {
		if next, ok := g.At(n); ok && next == height+1 {
			summits(g, n, peaks)
		}
	}
}

func scores(input string) (score, rating int) {
	g := grid.Parse(input)
	for r := range g {
		for col, cell := range g[r] {
			if cell != '0' {
				continue
			}
			peaks := map[grid.Coord]int{}
			summits(g, grid.C(r, col), peaks)
			score += len(peaks)
			for _, trails := range peaks {
				rating += trails
			}
		}
	}
	return score, rating
}

// Part1 sums trailhead scores, the number of distinct peaks reachable from
// each 0.
func Part1(input string) (int, error) {
	score, _ := scores(input)
	return score, nil
}

// Part2 sums trailhead ratings, the number of distinct trails from each 0.
func Part2(input string) (int, error) {
	_, rating := scores(input)
	return rating, nil
}
