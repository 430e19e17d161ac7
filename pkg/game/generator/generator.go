package generator

import (
	"math/rand"

	"mazerunner/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(level int) *world.Grid
	Name() string
}

// Base dimensions before level scaling
const (
	baseRows = 9
	baseCols = 13
)

// Dimensions returns the grid size for a level. Each level adds two rows and
// two columns; results are rounded up to odd so the wall lattice lines up.
// Level 1: 11x15, level 2: 13x17.
func Dimensions(level int) (rows, cols int) {
	rows = roundUpOdd(baseRows + level*2)
	cols = roundUpOdd(baseCols + level*2)
	if rows < world.MinDimension {
		rows = world.MinDimension
	}
	if cols < world.MinDimension {
		cols = world.MinDimension
	}
	return rows, cols
}

func roundUpOdd(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}

// NewDefault returns the default map generator drawing from rng
func NewDefault(rng *rand.Rand) GridGenerator {
	return NewBacktracker(rng)
}
