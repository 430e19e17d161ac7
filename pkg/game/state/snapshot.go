package state

import (
	"time"

	"github.com/google/uuid"

	"mazerunner/pkg/engine/world"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the Game it was taken from.
type Snapshot struct {
	SessionID      uuid.UUID
	Level          int
	Score          int
	Health         int
	ElapsedSeconds int
	Phase          Phase

	Rows, Cols int
	Cells      [][]world.Cell

	Player world.Point
	Exit   world.Point

	Messages []string
}

// Snapshot copies the current state
func (g *Game) Snapshot(now time.Time) Snapshot {
	s := Snapshot{
		SessionID:      g.SessionID,
		Level:          g.Level,
		Score:          g.Score,
		Health:         g.Health,
		ElapsedSeconds: g.ElapsedSeconds(now),
		Phase:          g.Phase,
		Player:         g.Player,
		Messages:       append([]string(nil), g.Messages...),
	}
	if g.Grid != nil {
		s.Rows = g.Grid.Rows()
		s.Cols = g.Grid.Cols()
		s.Cells = g.Grid.Cells()
		s.Exit = g.Grid.Exit()
	}
	return s
}

// CellAt returns the cell at (x, y), or Wall when out of bounds
func (s Snapshot) CellAt(x, y int) world.Cell {
	if y < 0 || y >= len(s.Cells) || x < 0 || x >= len(s.Cells[y]) {
		return world.Wall
	}
	return s.Cells[y][x]
}

// IsPlayerAt reports whether the player stands on (x, y)
func (s Snapshot) IsPlayerAt(x, y int) bool {
	return s.Player.X == x && s.Player.Y == y
}
