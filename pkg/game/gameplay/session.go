// Package gameplay provides the game state machine: moves, collisions,
// level progression and restarts, driven by input events and timers.
package gameplay

import (
	"time"

	"mazerunner/pkg/engine/logging"
	"mazerunner/pkg/engine/schedule"
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/generator"
	"mazerunner/pkg/game/state"
)

// Timing defaults
const (
	DefaultLevelCompleteDelay = 1500 * time.Millisecond
	DefaultTickInterval       = time.Second
)

// MoveResult describes what a move attempt did
type MoveResult int

const (
	MoveIgnored MoveResult = iota // not a unit step, or not Playing
	MoveOK
	MoveBlocked // hit a wall and lost health
	MoveExit    // reached the exit
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "OK"
	case MoveBlocked:
		return "Blocked"
	case MoveExit:
		return "Exit"
	default:
		return "Ignored"
	}
}

// Config wires a Session to its collaborators
type Config struct {
	Generator generator.GridGenerator
	Scheduler schedule.Scheduler
	Listener  Listener
	Logger    *logging.Logger

	LevelCompleteDelay time.Duration
	TickInterval       time.Duration

	// StartLevel is the first level of a fresh session (developer testing).
	// Restart always returns to level 1.
	StartLevel int

	// Seed and DumpDir are recorded in map dumps.
	Seed    int64
	DumpDir string
}

func (c *Config) applyDefaults() {
	if c.Generator == nil {
		panic("gameplay: Config.Generator is required")
	}
	if c.Scheduler == nil {
		panic("gameplay: Config.Scheduler is required")
	}
	if c.Listener == nil {
		c.Listener = NopListener{}
	}
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	if c.LevelCompleteDelay <= 0 {
		c.LevelCompleteDelay = DefaultLevelCompleteDelay
	}
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
	if c.StartLevel < state.StartingLevel {
		c.StartLevel = state.StartingLevel
	}
}

// Session owns one game and every timer acting on it. All methods must be
// called from the scheduler's goroutine.
type Session struct {
	cfg  Config
	game *state.Game

	ticker  schedule.Handle
	advance schedule.Handle
	closed  bool
}

// NewSession creates a session. Call Start to generate the first level.
func NewSession(cfg Config) *Session {
	cfg.applyDefaults()
	return &Session{
		cfg:     cfg,
		game:    state.NewGame(),
		ticker:  schedule.Stopped,
		advance: schedule.Stopped,
	}
}

// Game exposes the live state for read access
func (s *Session) Game() *state.Game {
	return s.game
}

// Snapshot copies the current state for rendering
func (s *Session) Snapshot() state.Snapshot {
	return s.game.Snapshot(s.cfg.Scheduler.Now())
}

// Start builds the first level and starts the elapsed-time tick
func (s *Session) Start() {
	s.cfg.Logger.Info("session %s starting at level %d (generator: %s, seed: %d)",
		s.game.SessionID, s.cfg.StartLevel, s.cfg.Generator.Name(), s.cfg.Seed)
	s.game.Level = s.cfg.StartLevel
	s.loadLevel()
	s.startTicker()
}

// AttemptMove moves the player by one cell. Walls cost one health point;
// entering the exit completes the level.
func (s *Session) AttemptMove(dx, dy int) MoveResult {
	g := s.game
	if s.closed || g.Phase != state.Playing || g.Grid == nil {
		return MoveIgnored
	}
	if _, ok := world.DirectionFromDelta(dx, dy); !ok {
		return MoveIgnored
	}

	target := g.Player.Add(dx, dy)
	if !g.Grid.IsPath(target.X, target.Y) {
		s.collide(target)
		return MoveBlocked
	}

	g.Player = target
	if g.Grid.IsExit(target.X, target.Y) {
		s.completeLevel()
		return MoveExit
	}
	return MoveOK
}

// OnDirectionalInput is AttemptMove for a compass direction
func (s *Session) OnDirectionalInput(dir world.Direction) MoveResult {
	if !dir.IsValid() {
		return MoveIgnored
	}
	dx, dy := dir.Delta()
	return s.AttemptMove(dx, dy)
}

// Close stops all scheduled work. The session ignores input afterwards.
func (s *Session) Close() {
	s.closed = true
	schedule.StopAll(s.ticker, s.advance)
}
