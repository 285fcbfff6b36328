package day12

import (
	"os"
	"path/filepath"
	"testing"
)

const small = `AAAA
BBCD
BBCC
EEEC`

const holes = `OOOOO
OXOXO
OOOOO
OXOXO
OOOOO`

const large = `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE`

const eShape = `EEEEE
EXXXX
EEEEE
EXXXX
EEEEE`

const diagonalTouch = `AAAAAA
AAABBA
AAABBA
ABBAAA
ABBAAA
AAAAAA`

func TestPart1Samples(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"small", small, 140},
		{"holes", holes, 772},
		{"large", large, 1930},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Part1(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Part1 = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPart2Samples(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"small", small, 80},
		{"holes", holes, 436},
		{"e shape", eShape, 236},
		{"diagonal touch", diagonalTouch, 368},
		{"large", large, 1206},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Part2(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Part2 = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFullInput(t *testing.T) {
	t.Parallel()
	b, err := os.ReadFile(filepath.Join("..", "..", "data", "day12.txt"))
	if err != nil {
		t.Skipf("puzzle input not available: %v", err)
	}
	input := string(b)

	if got, err := Part1(input); err != nil || got != 1434856 {
		t.Errorf("Part1 = %d, %v, want 1434856", got, err)
	}
	if got, err := Part2(input); err != nil || got != 891106 {
		t.Errorf("Part2 = %d, %v, want 891106", got, err)
	}
}
