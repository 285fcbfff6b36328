// Package day12 fences garden plots into regions.
package day12

import (
	"github.com/BenDeJonge/advent-of-code-2024/internal/grid"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   12,
		Title: "Garden Groups",
		Part1: Part1,
		Part2: Part2,
	})
}

// regions flood-fills the map into connected same-plant regions.
func regions(g grid.Grid[byte]) []map[grid.Coord]bool {
	visited := grid.Like(g, false)
	var out []map[grid.Coord]bool
	for r := range g {
		for c := range g[r] {
			start := grid.C(r, c)
			if visited[r][c] {
				continue
			}
			plant := g[r][c]
			region := map[grid.Coord]bool{start: true}
			visited[r][c] = true
			queue := []grid.Coord{start}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, n := range cur.Cardinals() {
					if cell, ok := g.At(n); !ok || cell != plant {
						continue
					}
					if visited[n.Row][n.Col] {
						continue
					}
					visited[n.Row][n.Col] = true
					region[n] = true
					queue = append(queue, n)
				}
			}
			out = append(out, region)
		}
	}
	return out
}

func perimeter(region map[grid.Coord]bool) int {
	p := 0
	for c := range region {
		for _, n := range c.Cardinals() {
			if !region[n] {
				p++
			}
		}
	}
	return p
}

// sides counts the straight fence sections of a region. Every side starts
// and ends at a corner, so the side count equals the corner count. A cell
// contributes a convex corner where two adjacent cardinal neighbors are
// both outside, and a concave corner where both are inside but the
// diagonal between them is not.
func sides(region map[grid.Coord]bool) int {
	corners := 0
	for c := range region {
		checks := [4][3]grid.Coord{
			{c.North(), c.East(), c.NorthEast()},
			{c.East(), c.South(), c.SouthEast()},
			{c.South(), c.West(), c.SouthWest()},
			{c.West(), c.North(), c.NorthWest()},
		}
		for _, chk := range checks {
			a, b, diag := region[chk[0]], region[chk[1]], region[chk[2]]
			if !a && !b {
				corners++
			}
			if a && b && !diag {
				corners++
			}
		}
	}
	return corners
}

// Part1 prices fences by area times perimeter.
func Part1(input string) (int, error) {
	total := 0
	for _, region := range regions(grid.Parse(input)) {
		total += len(region) * perimeter(region)
	}
	return total, nil
}

// Part2 prices fences by area times number of sides.
func Part2(input string) (int, error) {
	total := 0
	for _, region := range regions(grid.Parse(input)) {
		total += len(region) * sides(region)
	}
	return total, nil
}
