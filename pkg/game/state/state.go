package state

import (
	"time"

	"github.com/google/uuid"

	"mazerunner/pkg/engine/world"
)

// Session defaults
const (
	StartingLevel     = 1
	StartingHealth    = 3
	ExitScorePerLevel = 100
	maxMessages       = 5
)

// Phase is the top-level state of a session
type Phase int

// Session phases
const (
	Playing Phase = iota
	LevelComplete
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "Playing"
	case LevelComplete:
		return "LevelComplete"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game represents the game state for one session
type Game struct {
	SessionID uuid.UUID

	Level  int
	Score  int
	Health int
	Phase  Phase

	Grid   *world.Grid
	Player world.Point

	LevelStartedAt time.Time
	EndedAt        time.Time // zero while the level clock is running

	// Epoch changes whenever a level is loaded or the session is reset.
	// Scheduled callbacks compare it to detect that they have gone stale.
	Epoch uint64

	Messages []string
}

// NewGame creates a new game instance
func NewGame() *Game {
	return &Game{
		SessionID: uuid.New(),
		Level:     StartingLevel,
		Health:    StartingHealth,
		Phase:     Playing,
		Messages:  make([]string, 0),
	}
}

// LoadLevel installs a freshly generated grid for the current level: the
// player goes back to the start, health is refilled and the level clock restarts.
func (g *Game) LoadLevel(grid *world.Grid, now time.Time) {
	g.Grid = grid
	g.Player = grid.Start()
	g.Health = StartingHealth
	g.Phase = Playing
	g.LevelStartedAt = now
	g.EndedAt = time.Time{}
	g.Epoch++
	g.ClearMessages()
}

// AdvanceLevel increments the level counter
func (g *Game) AdvanceLevel() {
	g.Level++
}

// Reset returns level, score and health to their starting values and
// invalidates anything scheduled against the previous epoch. A new grid must
// be loaded afterwards.
func (g *Game) Reset() {
	g.Level = StartingLevel
	g.Score = 0
	g.Health = StartingHealth
	g.Phase = Playing
	g.EndedAt = time.Time{}
	g.Epoch++
	g.ClearMessages()
}

// TakeHit removes one point of health. It returns true when that hit ends the
// game, in which case the phase is GameOver and the clock is frozen at now.
func (g *Game) TakeHit(now time.Time) bool {
	g.Health--
	if g.Health > 0 {
		return false
	}
	g.Health = 0
	g.Phase = GameOver
	g.EndedAt = now
	return true
}

// CompleteLevel awards the exit bonus and enters LevelComplete. The level
// clock stops at now. Returns the points awarded.
func (g *Game) CompleteLevel(now time.Time) int {
	points := ExitScorePerLevel * g.Level
	g.Score += points
	g.Phase = LevelComplete
	g.EndedAt = now
	return points
}

// Elapsed returns the time spent on the current level
func (g *Game) Elapsed(now time.Time) time.Duration {
	if g.LevelStartedAt.IsZero() {
		return 0
	}
	end := now
	if !g.EndedAt.IsZero() {
		end = g.EndedAt
	}
	if end.Before(g.LevelStartedAt) {
		return 0
	}
	return end.Sub(g.LevelStartedAt)
}

// ElapsedSeconds returns Elapsed truncated to whole seconds
func (g *Game) ElapsedSeconds(now time.Time) int {
	return int(g.Elapsed(now) / time.Second)
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
