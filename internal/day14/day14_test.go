package day14

import (
	"os"
	"path/filepath"
	"testing"
)

const sample = `p=0,4 v=3,-3
p=6,3 v=-1,-3
p=10,3 v=-1,2
p=2,0 v=2,-1
p=0,0 v=1,3
p=3,0 v=-2,-2
p=7,6 v=-1,-3
p=3,0 v=-1,-2
p=9,3 v=2,3
p=7,3 v=-1,2
p=2,4 v=2,-3
p=9,5 v=-3,-3`

func TestAtWraps(t *testing.T) {
	t.Parallel()
	r := robot{px: 2, py: 4, vx: 2, vy: -3}
	x, y := r.at(5, 11, 7)
	if x != 1 || y != 3 {
		t.Errorf("at(5) = (%d, %d), want (1, 3)", x, y)
	}
}

func TestSafetySample(t *testing.T) {
	t.Parallel()
	robots, err := parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := safety(robots, 100, 11, 7), 12; got != want {
		t.Errorf("safety = %d, want %d", got, want)
	}
}

func TestFullInput(t *testing.T) {
	t.Parallel()
	b, err := os.ReadFile(filepath.Join("..", "..", "data", "day14.txt"))
	if err != nil {
		t.Skipf("puzzle input not available: %v", err)
	}
	input := string(b)

	if got, err := Part1(input); err != nil || got != 230436441 {
		t.Errorf("Part1 = %d, %v, want 230436441", got, err)
	}
	if got, err := Part2(input); err != nil || got != 8270 {
		t.Errorf("Part2 = %d, %v, want 8270", got, err)
	}
}
