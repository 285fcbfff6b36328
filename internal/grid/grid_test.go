package grid

import (
	"reflect"
	"testing"
)

func testGrid() Grid[int] {
	return New([][]int{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
	})
}

func TestNewRejectsRaggedRows(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on ragged rows")
		}
	}()
	New([][]int{{1, 2}, {3}})
}

func TestRowsColsAndAt(t *testing.T) {
	t.Parallel()
	g := testGrid()
	if got, want := g.Rows(), 3; got != want {
		t.Errorf("Rows() = %d, want %d", got, want)
	}
	if got, want := g.Cols(), 4; got != want {
		t.Errorf("Cols() = %d, want %d", got, want)
	}
	if v, ok := g.At(C(1, 2)); !ok || v != 6 {
		t.Errorf("At(1,2) = %d, %t, want 6, true", v, ok)
	}
	for _, c := range []Coord{C(-1, 0), C(0, -1), C(3, 0), C(0, 4)} {
		if _, ok := g.At(c); ok {
			t.Errorf("At(%v) in bounds, want out of bounds", c)
		}
	}
}

func TestRowAndCol(t *testing.T) {
	t.Parallel()
	g := testGrid()
	if got := g.Row(1); !reflect.DeepEqual(got, []int{4, 5, 6, 7}) {
		t.Errorf("Row(1) = %v", got)
	}
	if got := g.Col(2); !reflect.DeepEqual(got, []int{2, 6, 10}) {
		t.Errorf("Col(2) = %v", got)
	}
}

func TestDiagonal(t *testing.T) {
	t.Parallel()
	g := testGrid()
	want := [][]int{
		{8},
		{4, 9},
		{0, 5, 10},
		{1, 6, 11},
		{2, 7},
		{3},
	}
	if got := g.NumDiagonals(); got != len(want) {
		t.Fatalf("NumDiagonals() = %d, want %d", got, len(want))
	}
	for i, w := range want {
		if got := g.Diagonal(i); !reflect.DeepEqual(got, w) {
			t.Errorf("Diagonal(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestAntidiagonal(t *testing.T) {
	t.Parallel()
	g := testGrid()
	want := [][]int{
		{0},
		{4, 1},
		{8, 5, 2},
		{9, 6, 3},
		{10, 7},
		{11},
	}
	for i, w := range want {
		if got := g.Antidiagonal(i); !reflect.DeepEqual(got, w) {
			t.Errorf("Antidiagonal(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestSlice(t *testing.T) {
	t.Parallel()
	g := testGrid()
	got := g.Slice(1, 3, 1, 3)
	want := Grid[int]{{5, 6}, {9, 10}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Slice(1,3,1,3) = %v, want %v", got, want)
	}
	// The slice must be a copy.
	got[0][0] = 99
	if g[1][1] != 5 {
		t.Error("Slice aliases the source grid")
	}
}

func TestSetAndClone(t *testing.T) {
	t.Parallel()
	g := testGrid()
	clone := g.Clone()
	if !clone.Set(C(0, 0), 42) {
		t.Fatal("Set(0,0) reported out of bounds")
	}
	if clone.Set(C(5, 0), 42) {
		t.Error("Set(5,0) reported in bounds")
	}
	if g[0][0] != 0 {
		t.Error("Clone aliases the source grid")
	}
	if clone[0][0] != 42 {
		t.Error("Set did not write the cell")
	}
}

func TestParseAndFind(t *testing.T) {
	t.Parallel()
	g := Parse("ab\ncd\n")
	if got, want := g.Rows(), 2; got != want {
		t.Fatalf("Rows() = %d, want %d", got, want)
	}
	c, ok := Find(g, byte('d'))
	if !ok || c != C(1, 1) {
		t.Errorf("Find('d') = %v, %t, want (1,1), true", c, ok)
	}
	if _, ok := Find(g, byte('z')); ok {
		t.Error("Find('z') succeeded, want miss")
	}
}

func TestCoordArithmetic(t *testing.T) {
	t.Parallel()
	c := C(2, 3)
	if got := c.Add(C(1, -1)); got != C(3, 2) {
		t.Errorf("Add = %v", got)
	}
	if got := c.Sub(C(1, 1)); got != C(1, 2) {
		t.Errorf("Sub = %v", got)
	}
	if got := c.Scale(3); got != C(6, 9) {
		t.Errorf("Scale = %v", got)
	}
}

func TestCoordNeighbors(t *testing.T) {
	t.Parallel()
	c := C(1, 1)
	cardinals := [4]Coord{C(0, 1), C(1, 2), C(2, 1), C(1, 0)}
	if got := c.Cardinals(); got != cardinals {
		t.Errorf("Cardinals() = %v, want %v", got, cardinals)
	}
	diagonals := [4]Coord{C(0, 2), C(2, 2), C(2, 0), C(0, 0)}
	if got := c.Diagonals(); got != diagonals {
		t.Errorf("Diagonals() = %v, want %v", got, diagonals)
	}
}

func TestCoordIn(t *testing.T) {
	t.Parallel()
	min, max := C(0, 0), C(3, 4)
	tests := []struct {
		c    Coord
		want bool
	}{
		{C(0, 0), true},
		{C(2, 3), true},
		{C(3, 3), false},
		{C(2, 4), false},
		{C(-1, 0), false},
	}
	for _, tt := range tests {
		if got := tt.c.In(min, max); got != tt.want {
			t.Errorf("%v.In(%v, %v) = %t, want %t", tt.c, min, max, got, tt.want)
		}
	}
}

func TestDirection(t *testing.T) {
	t.Parallel()
	if got := North.Clockwise(); got != East {
		t.Errorf("North.Clockwise() = %v", got)
	}
	if got := North.CounterClockwise(); got != West {
		t.Errorf("North.CounterClockwise() = %v", got)
	}
	if got := C(1, 1).Step(South); got != C(2, 1) {
		t.Errorf("Step(South) = %v", got)
	}
}
