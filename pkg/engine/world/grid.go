package world

import (
	"strings"
)

// MinDimension is the smallest row or column count a grid accepts.
// Five leaves a carvable 2x2 lattice inside the wall border.
const MinDimension = 5

// Grid represents the maze map with encapsulated cell storage
type Grid struct {
	cells [][]Cell
	rows  int
	cols  int

	start   Point
	exit    Point
	hasExit bool
}

// NewGrid creates a new grid with the given dimensions, every cell a Wall
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build initializes the grid with the given dimensions.
// Both dimensions must be odd and at least MinDimension.
func (g *Grid) Build(rows, cols int) {
	if rows < MinDimension || cols < MinDimension {
		panic("Grid dimensions must be at least 5")
	}
	if rows%2 == 0 || cols%2 == 0 {
		panic("Grid dimensions must be odd")
	}

	g.rows = rows
	g.cols = cols
	g.start = Point{X: 1, Y: 1}
	g.exit = Point{}
	g.hasExit = false

	g.cells = make([][]Cell, rows)
	for y := range g.cells {
		g.cells[y] = make([]Cell, cols)
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Start returns the starting coordinate, always (1,1)
func (g *Grid) Start() Point {
	return g.start
}

// Exit returns the exit coordinate. Only meaningful when HasExit is true.
func (g *Grid) Exit() Point {
	return g.exit
}

// HasExit reports whether an exit has been placed
func (g *Grid) HasExit() bool {
	return g.hasExit
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter)
func (g *Grid) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < g.cols-1 && y >= 1 && y < g.rows-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) && !g.IsPlayablePosition(x, y)
}

// CellAt returns the cell at the given position, or false if out of bounds
func (g *Grid) CellAt(x, y int) (Cell, bool) {
	if !g.IsValidPosition(x, y) {
		return Wall, false
	}
	return g.cells[y][x], true
}

// IsPath reports whether x/y is in bounds and walkable (Path or Exit).
// Out-of-bounds positions are never walkable.
func (g *Grid) IsPath(x, y int) bool {
	c, ok := g.CellAt(x, y)
	return ok && c.IsWalkable()
}

// IsExit reports whether x/y is the stored exit coordinate
func (g *Grid) IsExit(x, y int) bool {
	return g.hasExit && g.exit.X == x && g.exit.Y == y
}

// Carve turns the cell at x/y into a Path. Returns false if out of bounds.
func (g *Grid) Carve(x, y int) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.cells[y][x] = Path
	return true
}

// SetExit marks x/y as the exit, replacing any previous exit.
// Returns false if out of bounds.
func (g *Grid) SetExit(x, y int) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	if g.hasExit {
		g.cells[g.exit.Y][g.exit.X] = Path
	}
	g.cells[y][x] = Exit
	g.exit = Point{X: x, Y: y}
	g.hasExit = true
	return true
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(x, y int, cell Cell)) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			fn(x, y, g.cells[y][x])
		}
	}
}

// Cells returns a copy of the cell matrix indexed [y][x]
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for y := range g.cells {
		out[y] = make([]Cell, g.cols)
		copy(out[y], g.cells[y])
	}
	return out
}

// String renders the grid as ASCII: '#' wall, ' ' path, 'E' exit
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			b.WriteByte(CellSymbol(g.cells[y][x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// CellSymbol returns the single-character symbol for a cell
func CellSymbol(c Cell) byte {
	switch c {
	case Path:
		return ' '
	case Exit:
		return 'E'
	default:
		return '#'
	}
}
