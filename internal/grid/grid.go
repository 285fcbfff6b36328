// Package grid implements a rectangular 2-D grid with row, column, diagonal
// and antidiagonal access, plus the Coord type used to index it.
package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular matrix of cells. Rows are directly indexable, so
// g[r][c] works wherever bounds are already known; At and Set are the
// checked alternatives.
type Grid[T any] [][]T

// New validates that all rows have equal length and wraps them as a Grid.
// It panics on ragged input.
func New[T any](rows [][]T) Grid[T] {
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			panic(fmt.Sprintf("grid: row %d has len %d while row 0 has len %d", i, len(row), len(rows[0])))
		}
	}
	return Grid[T](rows)
}

// Fill creates a rows-by-cols grid with every cell set to value.
func Fill[T any](rows, cols int, value T) Grid[T] {
	g := make(Grid[T], rows)
	for r := range g {
		g[r] = make([]T, cols)
		for c := range g[r] {
			g[r][c] = value
		}
	}
	return g
}

// Like creates a grid with the same shape as g, every cell set to value.
func Like[T, U any](g Grid[T], value U) Grid[U] {
	return Fill(g.Rows(), g.Cols(), value)
}

// Parse builds a byte grid from newline-separated input.
func Parse(input string) Grid[byte] {
	var rows [][]byte
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		rows = append(rows, []byte(line))
	}
	return New(rows)
}

// Rows returns the number of rows.
func (g Grid[T]) Rows() int {
	return len(g)
}

// Cols returns the number of columns.
func (g Grid[T]) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Bounds returns the exclusive upper corner, for use with Coord.In.
func (g Grid[T]) Bounds() Coord {
	return Coord{g.Rows(), g.Cols()}
}

// Contains reports whether c indexes a cell of g.
func (g Grid[T]) Contains(c Coord) bool {
	return c.In(Coord{}, g.Bounds())
}

// At returns the cell at c, or the zero value and false when c is out of
// bounds.
func (g Grid[T]) At(c Coord) (T, bool) {
	if !g.Contains(c) {
		var zero T
		return zero, false
	}
	return g[c.Row][c.Col], true
}

// Set writes value at c and reports whether c was in bounds.
func (g Grid[T]) Set(c Coord, value T) bool {
	if !g.Contains(c) {
		return false
	}
	g[c.Row][c.Col] = value
	return true
}

// Row returns row r as a slice. The slice aliases the grid.
func (g Grid[T]) Row(r int) []T {
	return g[r]
}

// Col returns a copy of column c.
func (g Grid[T]) Col(c int) []T {
	col := make([]T, g.Rows())
	for r := range g {
		col[r] = g[r][c]
	}
	return col
}

// NumDiagonals returns the number of (anti)diagonals, rows + cols - 1.
func (g Grid[T]) NumDiagonals() int {
	if g.Rows() == 0 {
		return 0
	}
	return g.Rows() + g.Cols() - 1
}

// Diagonal returns diagonal i running from top-left to bottom-right.
// Diagonals are numbered clockwise around the edge starting at the
// bottom-left corner, so diagonal 0 is the single bottom-left cell and the
// last diagonal is the single top-right cell.
func (g Grid[T]) Diagonal(i int) []T {
	var start Coord
	if i < g.Rows() {
		start = Coord{g.Rows() - 1 - i, 0}
	} else {
		start = Coord{0, i - g.Rows() + 1}
	}
	var out []T
	for c := start; g.Contains(c); c = c.SouthEast() {
		out = append(out, g[c.Row][c.Col])
	}
	return out
}

// Antidiagonal returns antidiagonal i running from bottom-left to
// top-right. Antidiagonals are numbered clockwise around the edge starting
// at the top-left corner, so antidiagonal 0 is the single top-left cell and
// the last antidiagonal is the single bottom-right cell.
func (g Grid[T]) Antidiagonal(i int) []T {
	var start Coord
	if i < g.Rows() {
		start = Coord{i, 0}
	} else {
		start = Coord{g.Rows() - 1, i - g.Rows() + 1}
	}
	var out []T
	for c := start; g.Contains(c); c = c.NorthEast() {
		out = append(out, g[c.Row][c.Col])
	}
	return out
}

// Slice returns a copy of the half-open sub-grid [r0, r1) x [c0, c1).
func (g Grid[T]) Slice(r0, r1, c0, c1 int) Grid[T] {
	out := make(Grid[T], 0, r1-r0)
	for r := r0; r < r1; r++ {
		out = append(out, append([]T(nil), g[r][c0:c1]...))
	}
	return out
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for r := range g {
		out[r] = append([]T(nil), g[r]...)
	}
	return out
}

// Find returns the coordinate of the first cell equal to value, scanning
// rows top to bottom.
func Find[T comparable](g Grid[T], value T) (Coord, bool) {
	for r := range g {
		for c := range g[r] {
			if g[r][c] == value {
				return Coord{r, c}, true
			}
		}
	}
	return Coord{}, false
}
