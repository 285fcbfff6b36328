package day13

import (
	"os"
	"path/filepath"
	"testing"
)

const sample = `Button A: X+94, Y+34
Button B: X+22, Y+67
Prize: X=8400, Y=5400

Button A: X+26, Y+66
Button B: X+67, Y+21
Prize: X=12748, Y=12176

Button A: X+17, Y+86
Button B: X+84, Y+37
Prize: X=7870, Y=6450

Button A: X+69, Y+23
Button B: X+27, Y+71
Prize: X=18641, Y=10279`

func TestParse(t *testing.T) {
	t.Parallel()
	machines, err := parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	if len(machines) != 4 {
		t.Fatalf("parsed %d machines, want 4", len(machines))
	}
	want := machine{ax: 94, ay: 34, bx: 22, by: 67, px: 8400, py: 5400}
	if machines[0] != want {
		t.Errorf("machines[0] = %+v, want %+v", machines[0], want)
	}
}

func TestPresses(t *testing.T) {
	t.Parallel()
	a, b, ok := presses(machine{ax: 94, ay: 34, bx: 22, by: 67, px: 8400, py: 5400})
	if !ok || a != 80 || b != 40 {
		t.Errorf("presses = %d, %d, %t, want 80, 40, true", a, b, ok)
	}
	if _, _, ok := presses(machine{ax: 26, ay: 66, bx: 67, by: 21, px: 12748, py: 12176}); ok {
		t.Error("unwinnable machine reported winnable")
	}
}

func TestPart1Sample(t *testing.T) {
	t.Parallel()
	got, err := Part1(sample)
	if err != nil {
		t.Fatal(err)
	}
	if want := 480; got != want {
		t.Errorf("Part1 = %d, want %d", got, want)
	}
}

func TestPart2Sample(t *testing.T) {
	t.Parallel()
	got, err := Part2(sample)
	if err != nil {
		t.Fatal(err)
	}
	if want := 875318608908; got != want {
		t.Errorf("Part2 = %d, want %d", got, want)
	}
}

func TestFullInput(t *testing.T) {
	t.Parallel()
	b, err := os.ReadFile(filepath.Join("..", "..", "data", "day13.txt"))
	if err != nil {
		t.Skipf("puzzle input not available: %v", err)
	}
	input := string(b)

	if got, err := Part1(input); err != nil || got != 34393 {
		t.Errorf("Part1 = %d, %v, want 34393", got, err)
	}
	if got, err := Part2(input); err != nil || got != 83551068361379 {
		t.Errorf("Part2 = %d, %v, want 83551068361379", got, err)
	}
}
