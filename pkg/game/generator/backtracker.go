package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/stack"

	"mazerunner/pkg/engine/world"
)

// carveOffsets are the distance-2 steps tried from every lattice cell.
// Odd coordinates stay rooms; the midpoint of each step is the corridor.
var carveOffsets = [4]world.Point{{X: 2, Y: 0}, {X: -2, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: -2}}

// BacktrackerGenerator carves perfect mazes with a randomized depth-first
// walk over the odd-coordinate lattice, rooted at (1,1).
type BacktrackerGenerator struct {
	rng *rand.Rand
}

// NewBacktracker creates a generator that draws every random choice from rng.
func NewBacktracker(rng *rand.Rand) *BacktrackerGenerator {
	return &BacktrackerGenerator{rng: rng}
}

// Name returns the name of this generator
func (b *BacktrackerGenerator) Name() string {
	return "Recursive Backtracker"
}

// Generate creates a new grid sized for the given level
func (b *BacktrackerGenerator) Generate(level int) *world.Grid {
	rows, cols := Dimensions(level)
	return b.Build(rows, cols)
}

// carveFrame is one level of the depth-first walk: a lattice cell, its
// shuffled offsets and the index of the next offset to try.
type carveFrame struct {
	at      world.Point
	offsets [4]world.Point
	next    int
}

// Build carves a maze into a fresh rows x cols grid and places the exit.
// rows and cols must be odd and at least world.MinDimension.
func (b *BacktrackerGenerator) Build(rows, cols int) *world.Grid {
	grid := world.NewGrid(rows, cols)
	b.carve(grid, grid.Start())
	b.placeExit(grid)
	return grid
}

// carve walks the lattice with an explicit stack. Each frame shuffles its
// offsets when it is entered and fully explores one neighbour before trying
// the next, so random draws happen in the same order as a recursive walk.
func (b *BacktrackerGenerator) carve(grid *world.Grid, start world.Point) {
	frames := stack.New[*carveFrame]()
	frames.Push(b.enter(grid, start))

	for frames.Size() > 0 {
		f := frames.Peek()
		if f.next == len(f.offsets) {
			frames.Pop()
			continue
		}

		d := f.offsets[f.next]
		f.next++

		n := f.at.Add(d.X, d.Y)
		if n.X <= 0 || n.X >= grid.Cols() || n.Y <= 0 || n.Y >= grid.Rows() {
			continue
		}
		if c, _ := grid.CellAt(n.X, n.Y); c != world.Wall {
			continue
		}

		grid.Carve(f.at.X+d.X/2, f.at.Y+d.Y/2)
		frames.Push(b.enter(grid, n))
	}
}

// enter marks p as a path and prepares its frame
func (b *BacktrackerGenerator) enter(grid *world.Grid, p world.Point) *carveFrame {
	grid.Carve(p.X, p.Y)
	f := &carveFrame{at: p, offsets: carveOffsets}
	b.rng.Shuffle(len(f.offsets), func(i, j int) {
		f.offsets[i], f.offsets[j] = f.offsets[j], f.offsets[i]
	})
	return f
}

// placeExit picks one of the four lattice corners uniformly. The start
// corner is a legal pick.
func (b *BacktrackerGenerator) placeExit(grid *world.Grid) {
	corners := ExitCorners(grid.Rows(), grid.Cols())
	exit := corners[b.rng.Intn(len(corners))]
	grid.SetExit(exit.X, exit.Y)
}

// ExitCorners returns the candidate exit positions for a grid size
func ExitCorners(rows, cols int) []world.Point {
	return []world.Point{
		{X: 1, Y: 1},
		{X: 1, Y: rows - 2},
		{X: cols - 2, Y: 1},
		{X: cols - 2, Y: rows - 2},
	}
}
