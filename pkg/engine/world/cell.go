// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Cell is the state of a single grid tile.
type Cell int

// Cell states
const (
	Wall Cell = iota
	Path
	Exit
)

// String returns the string representation of a cell state
func (c Cell) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Path:
		return "Path"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// IsWalkable returns true for cells the player may stand on
func (c Cell) IsWalkable() bool {
	return c == Path || c == Exit
}

// Point is a grid coordinate. X is the column and Y the row.
type Point struct {
	X int
	Y int
}

// Add returns the point offset by dx, dy
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the adjacent point in the given direction
func (p Point) Step(dir Direction) Point {
	dx, dy := dir.Delta()
	return p.Add(dx, dy)
}
