package gameplay

import (
	"mazerunner/pkg/engine/logging"
	"mazerunner/pkg/engine/world"
)

// Listener receives session events. Renderers use them to draw overlays
// and refresh the status line. Calls happen on the session's goroutine.
type Listener interface {
	LevelStarted(level int, grid *world.Grid, player world.Point)
	LevelCompleted(level int)
	GameOver()
	Ticked(elapsedSeconds int)
}

// NopListener ignores every event. Embed it to implement only some methods.
type NopListener struct{}

func (NopListener) LevelStarted(int, *world.Grid, world.Point) {}
func (NopListener) LevelCompleted(int)                         {}
func (NopListener) GameOver()                                  {}
func (NopListener) Ticked(int)                                 {}

// Listeners fans each event out in order.
type Listeners []Listener

func (ls Listeners) LevelStarted(level int, grid *world.Grid, player world.Point) {
	for _, l := range ls {
		l.LevelStarted(level, grid, player)
	}
}

func (ls Listeners) LevelCompleted(level int) {
	for _, l := range ls {
		l.LevelCompleted(level)
	}
}

func (ls Listeners) GameOver() {
	for _, l := range ls {
		l.GameOver()
	}
}

func (ls Listeners) Ticked(elapsedSeconds int) {
	for _, l := range ls {
		l.Ticked(elapsedSeconds)
	}
}

// LogListener writes every event to a logger. Ticks go to Debug.
type LogListener struct {
	Log *logging.Logger
}

func (l LogListener) LevelStarted(level int, grid *world.Grid, player world.Point) {
	l.Log.Info("level %d started: %dx%d grid, player at %d,%d, exit at %d,%d",
		level, grid.Rows(), grid.Cols(), player.X, player.Y, grid.Exit().X, grid.Exit().Y)
}

func (l LogListener) LevelCompleted(level int) {
	l.Log.Info("level %d completed", level)
}

func (l LogListener) GameOver() {
	l.Log.Info("game over")
}

func (l LogListener) Ticked(elapsedSeconds int) {
	l.Log.Debug("tick %ds", elapsedSeconds)
}
