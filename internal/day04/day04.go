// Package day04 solves the XMAS word search.
package day04

import (
	"strings"

	"github.com/BenDeJonge/advent-of-code-2024/internal/grid"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
)

func init() {
	solve.Register(solve.Solution{
		Day:   4,
		Title: "Ceres Search",
		Part1: Part1,
		Part2: Part2,
	})
}

const word = "XMAS"

func countWord(line []byte) int {
	s := string(line)
	reversed := []byte(s)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return strings.Count(s, word) + strings.Count(string(reversed), word)
}

// Part1 counts XMAS in every row, column, diagonal and antidiagonal, read
// both forward and backward.
func Part1(input string) (int, error) {
	g := grid.Parse(input)
	total := 0
	for r := 0; r < g.Rows(); r++ {
		total += countWord(g.Row(r))
	}
	for c := 0; c < g.Cols(); c++ {
		total += countWord(g.Col(c))
	}
	for i := 0; i < g.NumDiagonals(); i++ {
		total += countWord(g.Diagonal(i))
		total += countWord(g.Antidiagonal(i))
	}
	return total, nil
}

// Part2 counts X shapes whose both diagonals spell MAS through a shared A.
func Part2(input string) (int, error) {
	g := grid.Parse(input)
	mas := func(a, b byte) bool {
		return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
	}
	total := 0
	for r := 1; r < g.Rows()-1; r++ {
		for c := 1; c < g.Cols()-1; c++ {
			if g[r][c] != 'A' {
				continue
			}
			if mas(g[r-1][c-1], g[r+1][c+1]) && mas(g[r-1][c+1], g[r+1][c-1]) {
				total++
			}
		}
	}
	return total, nil
}
