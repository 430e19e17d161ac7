package world

import (
	"strings"
	"testing"
)

// makeCorridorGrid builds a 5x5 grid with an L-shaped corridor from (1,1) to the exit at (3,3).
func makeCorridorGrid(t *testing.T) *Grid {
	t.Helper()
	g := NewGrid(5, 5)
	for _, p := range []Point{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}} {
		if !g.Carve(p.X, p.Y) {
			t.Fatalf("Carve(%d,%d) = false", p.X, p.Y)
		}
	}
	if !g.SetExit(3, 3) {
		t.Fatal("SetExit(3,3) = false")
	}
	return g
}

func TestNewGrid_AllWalls(t *testing.T) {
	g := NewGrid(5, 7)
	if g.Rows() != 5 || g.Cols() != 7 {
		t.Fatalf("NewGrid(5,7) dims = %dx%d, want 5x7", g.Rows(), g.Cols())
	}
	g.ForEachCell(func(x, y int, cell Cell) {
		if cell != Wall {
			t.Errorf("cell (%d,%d) = %v, want Wall", x, y, cell)
		}
	})
	if g.HasExit() {
		t.Error("fresh grid HasExit() = true, want false")
	}
	if g.Start() != (Point{1, 1}) {
		t.Errorf("Start() = %v, want (1,1)", g.Start())
	}
}

func TestNewGrid_PanicsOnBadDimensions(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"too small", 3, 5},
		{"even rows", 6, 5},
		{"even cols", 5, 8},
		{"zero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewGrid(%d,%d) did not panic", tc.rows, tc.cols)
				}
			}()
			NewGrid(tc.rows, tc.cols)
		})
	}
}

func TestIsPath_OutOfBoundsIsFalse(t *testing.T) {
	g := makeCorridorGrid(t)
	for _, p := range []Point{{-1, 1}, {1, -1}, {5, 1}, {1, 5}, {100, 100}, {-5, -5}} {
		if g.IsPath(p.X, p.Y) {
			t.Errorf("IsPath(%d,%d) = true, want false (out of bounds)", p.X, p.Y)
		}
	}
}

func TestIsPath_PathAndExit(t *testing.T) {
	g := makeCorridorGrid(t)
	if !g.IsPath(1, 1) {
		t.Error("IsPath(1,1) = false, want true")
	}
	if !g.IsPath(3, 3) {
		t.Error("IsPath(3,3) on exit = false, want true")
	}
	if g.IsPath(2, 2) {
		t.Error("IsPath(2,2) on wall = true, want false")
	}
}

func TestIsExit(t *testing.T) {
	g := makeCorridorGrid(t)
	if !g.IsExit(3, 3) {
		t.Error("IsExit(3,3) = false, want true")
	}
	if g.IsExit(1, 1) {
		t.Error("IsExit(1,1) = true, want false")
	}
}

func TestSetExit_ReplacesPreviousExit(t *testing.T) {
	g := makeCorridorGrid(t)
	g.SetExit(1, 1)
	if c, _ := g.CellAt(3, 3); c != Path {
		t.Errorf("old exit cell = %v, want Path", c)
	}
	if c, _ := g.CellAt(1, 1); c != Exit {
		t.Errorf("new exit cell = %v, want Exit", c)
	}
	if g.Exit() != (Point{1, 1}) {
		t.Errorf("Exit() = %v, want (1,1)", g.Exit())
	}
}

func TestCarve_OutOfBounds(t *testing.T) {
	g := NewGrid(5, 5)
	if g.Carve(5, 0) {
		t.Error("Carve(5,0) = true, want false")
	}
	if g.SetExit(0, 9) {
		t.Error("SetExit(0,9) = true, want false")
	}
}

func TestCells_ReturnsCopy(t *testing.T) {
	g := makeCorridorGrid(t)
	cells := g.Cells()
	cells[1][1] = Wall
	if !g.IsPath(1, 1) {
		t.Error("mutating Cells() copy changed the grid")
	}
}

func TestString(t *testing.T) {
	g := makeCorridorGrid(t)
	want := strings.Join([]string{
		"#####",
		"#   #",
		"### #",
		"###E#",
		"#####",
	}, "\n") + "\n"
	if got := g.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestValidate_CorridorGrid(t *testing.T) {
	g := makeCorridorGrid(t)
	if msg := g.Validate(); msg != "" {
		t.Errorf("Validate() = %q, want valid", msg)
	}
}

func TestValidate_DetectsProblems(t *testing.T) {
	t.Run("no exit", func(t *testing.T) {
		g := NewGrid(5, 5)
		g.Carve(1, 1)
		if g.Validate() == "" {
			t.Error("Validate() on grid without exit = valid")
		}
	})
	t.Run("unreachable cell", func(t *testing.T) {
		g := makeCorridorGrid(t)
		g.Carve(1, 3)
		if g.Validate() == "" {
			t.Error("Validate() with isolated cell (1,3) = valid")
		}
	})
	t.Run("loop", func(t *testing.T) {
		g := NewGrid(5, 5)
		for y := 1; y <= 3; y++ {
			for x := 1; x <= 3; x++ {
				if x%2 == 0 && y%2 == 0 {
					continue
				}
				g.Carve(x, y)
			}
		}
		g.SetExit(3, 3)
		msg := g.Validate()
		if !strings.Contains(msg, "loops") {
			t.Errorf("Validate() on ring = %q, want loop error", msg)
		}
	})
	t.Run("open border", func(t *testing.T) {
		g := makeCorridorGrid(t)
		g.Carve(4, 1)
		if g.Validate() == "" {
			t.Error("Validate() with carved border = valid")
		}
	})
}

func TestReachable_FromWallIsEmpty(t *testing.T) {
	g := makeCorridorGrid(t)
	if n := g.Reachable(Point{2, 2}).Size(); n != 0 {
		t.Errorf("Reachable(wall).Size() = %d, want 0", n)
	}
	if n := g.Reachable(Point{1, 1}).Size(); n != 5 {
		t.Errorf("Reachable(start).Size() = %d, want 5", n)
	}
}

func TestDirectionFromDelta(t *testing.T) {
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		got, ok := DirectionFromDelta(dx, dy)
		if !ok || got != d {
			t.Errorf("DirectionFromDelta(%d,%d) = %v,%v, want %v", dx, dy, got, ok, d)
		}
	}
	for _, bad := range [][2]int{{1, 1}, {0, 0}, {2, 0}, {-1, -1}} {
		if _, ok := DirectionFromDelta(bad[0], bad[1]); ok {
			t.Errorf("DirectionFromDelta(%d,%d) ok = true, want false", bad[0], bad[1])
		}
	}
}
