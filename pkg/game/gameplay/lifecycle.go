package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"mazerunner/pkg/engine/schedule"
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/state"
)

// loadLevel generates a grid for the current level and puts the player on it
func (s *Session) loadLevel() {
	g := s.game
	grid := s.cfg.Generator.Generate(g.Level)
	g.LoadLevel(grid, s.cfg.Scheduler.Now())

	if msg := grid.Validate(); msg != "" {
		s.cfg.Logger.Error("level %d grid failed validation: %s", g.Level, msg)
	}

	logMessage(g, gotext.Get("LEVEL_STARTED", g.Level))
	logMessage(g, gotext.Get("WELCOME"))
	s.cfg.Listener.LevelStarted(g.Level, grid, g.Player)
}

// collide applies the wall penalty. The player stays where they are.
func (s *Session) collide(target world.Point) {
	g := s.game
	over := g.TakeHit(s.cfg.Scheduler.Now())
	s.cfg.Logger.Debug("blocked at %d,%d, health %d", target.X, target.Y, g.Health)
	logMessage(g, gotext.Get("BLOCKED", g.Health))
	if over {
		s.endGame()
	}
}

// completeLevel awards the exit bonus and schedules the next level. The
// callback carries the epoch it was scheduled in; a restart in between bumps
// the epoch and the callback does nothing.
func (s *Session) completeLevel() {
	g := s.game
	level := g.Level
	points := g.CompleteLevel(s.cfg.Scheduler.Now())
	logMessage(g, gotext.Get("LEVEL_COMPLETE", level, points))
	s.cfg.Listener.LevelCompleted(level)

	epoch := g.Epoch
	s.advance.Stop()
	s.advance = s.cfg.Scheduler.AfterFunc(s.cfg.LevelCompleteDelay, func() {
		s.advanceLevel(epoch)
	})
}

// advanceLevel is the delayed LevelComplete -> Playing transition
func (s *Session) advanceLevel(epoch uint64) {
	g := s.game
	if s.closed || g.Epoch != epoch || g.Phase != state.LevelComplete {
		s.cfg.Logger.Debug("dropping stale level advance (epoch %d, now %d)", epoch, g.Epoch)
		return
	}
	g.AdvanceLevel()
	s.loadLevel()
}

// endGame enters GameOver and stops the clock and any pending advance
func (s *Session) endGame() {
	schedule.StopAll(s.ticker, s.advance)
	s.cfg.Logger.Info("game over on level %d with score %d", s.game.Level, s.game.Score)
	logMessage(s.game, gotext.Get("GAME_OVER"))
	s.cfg.Listener.GameOver()
}

// Restart begins a new game at level 1 from any phase
func (s *Session) Restart() {
	if s.closed {
		return
	}
	s.advance.Stop()
	s.game.Reset()
	s.cfg.Logger.Info("restarting session %s", s.game.SessionID)
	s.loadLevel()
	logMessage(s.game, gotext.Get("RESTARTED"))
	s.startTicker()
}

// OnRestartRequested handles a restart request from the presentation layer
func (s *Session) OnRestartRequested() {
	s.Restart()
}

// startTicker (re)starts the elapsed-time tick
func (s *Session) startTicker() {
	s.ticker.Stop()
	s.ticker = s.cfg.Scheduler.Every(s.cfg.TickInterval, s.tick)
}

func (s *Session) tick() {
	if s.closed || s.game.Phase == state.GameOver {
		return
	}
	s.cfg.Listener.Ticked(s.game.ElapsedSeconds(s.cfg.Scheduler.Now()))
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	if len(a) > 0 {
		msg = fmt.Sprintf(msg, a...)
	}
	g.AddMessage(msg)
}
