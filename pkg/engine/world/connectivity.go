package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Reachable collects every walkable cell reachable from start via N/E/S/W.
// Returns an empty set when start itself is not walkable.
func (g *Grid) Reachable(start Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !g.IsPath(start.X, start.Y) {
		return visited
	}

	queue := []Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			n := current.Step(dir)
			if g.IsPath(n.X, n.Y) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return visited
}

// CountWalkable returns the number of Path and Exit cells
func (g *Grid) CountWalkable() int {
	n := 0
	g.ForEachCell(func(x, y int, cell Cell) {
		if cell.IsWalkable() {
			n++
		}
	})
	return n
}

// CountEdges returns the number of adjacent walkable pairs.
// Each pair is counted once (east and south neighbours only).
func (g *Grid) CountEdges() int {
	edges := 0
	g.ForEachCell(func(x, y int, cell Cell) {
		if !cell.IsWalkable() {
			return
		}
		if g.IsPath(x+1, y) {
			edges++
		}
		if g.IsPath(x, y+1) {
			edges++
		}
	})
	return edges
}

// Validate checks the perfect-maze invariants and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.rows <= 0 || g.cols <= 0 {
		return "Grid has invalid dimensions"
	}

	if !g.HasExit() {
		return "Grid has no exit cell"
	}

	exits := 0
	var misplaced string
	g.ForEachCell(func(x, y int, cell Cell) {
		if cell == Exit {
			exits++
		}
		if misplaced != "" || !cell.IsWalkable() {
			return
		}
		if g.IsOnPerimeter(x, y) {
			misplaced = fmt.Sprintf("Border cell (%d,%d) is not a wall", x, y)
		} else if x%2 == 0 && y%2 == 0 {
			misplaced = fmt.Sprintf("Lattice wall (%d,%d) is not a wall", x, y)
		}
	})
	if exits != 1 {
		return fmt.Sprintf("Grid has %d exit cells, want 1", exits)
	}
	if misplaced != "" {
		return misplaced
	}

	if !g.IsPath(g.start.X, g.start.Y) {
		return "Start cell is not walkable"
	}

	walkable := g.CountWalkable()
	reachable := g.Reachable(g.start).Size()
	if reachable != walkable {
		return fmt.Sprintf("Only %d of %d walkable cells are reachable from start", reachable, walkable)
	}

	if edges := g.CountEdges(); edges != walkable-1 {
		return fmt.Sprintf("Grid has %d edges for %d cells; maze has loops", edges, walkable)
	}

	return ""
}
