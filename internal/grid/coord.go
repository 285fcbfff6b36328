package grid

// Coord is a row/column position. Row grows downward, column grows to the
// right, so (0, 0) is the top-left cell of a Grid.
type Coord struct {
	Row, Col int
}

// C is shorthand for constructing a Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

func (c Coord) North() Coord { return Coord{c.Row - 1, c.Col} }
func (c Coord) South() Coord { return Coord{c.Row + 1, c.Col} }
func (c Coord) East() Coord  { return Coord{c.Row, c.Col + 1} }
func (c Coord) West() Coord  { return Coord{c.Row, c.Col - 1} }

func (c Coord) NorthEast() Coord { return Coord{c.Row - 1, c.Col + 1} }
func (c Coord) SouthEast() Coord { return Coord{c.Row + 1, c.Col + 1} }
func (c Coord) SouthWest() Coord { return Coord{c.Row + 1, c.Col - 1} }
func (c Coord) NorthWest() Coord { return Coord{c.Row - 1, c.Col - 1} }

// Cardinals returns the four edge-adjacent neighbors in NESW order.
func (c Coord) Cardinals() [4]Coord {
	return [4]Coord{c.North(), c.East(), c.South(), c.West()}
}

// Diagonals returns the four corner-adjacent neighbors in NE, SE, SW, NW
// order.
func (c Coord) Diagonals() [4]Coord {
	return [4]Coord{c.NorthEast(), c.SouthEast(), c.SouthWest(), c.NorthWest()}
}

// Neighbors returns all eight adjacent coordinates, clockwise from north.
func (c Coord) Neighbors() [8]Coord {
	return [8]Coord{
		c.North(), c.NorthEast(), c.East(), c.SouthEast(),
		c.South(), c.SouthWest(), c.West(), c.NorthWest(),
	}
}

func (c Coord) Add(o Coord) Coord {
	return Coord{c.Row + o.Row, c.Col + o.Col}
}

func (c Coord) Sub(o Coord) Coord {
	return Coord{c.Row - o.Row, c.Col - o.Col}
}

// Scale multiplies both components by n.
func (c Coord) Scale(n int) Coord {
	return Coord{c.Row * n, c.Col * n}
}

// In reports whether c lies in the half-open box [min, max).
func (c Coord) In(min, max Coord) bool {
	return c.Row >= min.Row && c.Row < max.Row &&
		c.Col >= min.Col && c.Col < max.Col
}

// Direction is one of the four cardinal headings.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var offsets = [4]Coord{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Offset returns the unit step for the direction.
func (d Direction) Offset() Coord {
	return offsets[d]
}

// Clockwise returns the direction after a 90 degree right turn.
func (d Direction) Clockwise() Direction {
	return (d + 1) % 4
}

// CounterClockwise returns the direction after a 90 degree left turn.
func (d Direction) CounterClockwise() Direction {
	return (d + 3) % 4
}

// Step returns the coordinate one cell away in direction d.
func (c Coord) Step(d Direction) Coord {
	return c.Add(d.Offset())
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}
