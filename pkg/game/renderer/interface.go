package renderer

import (
	"mazerunner/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StylePath
	StyleExit
	StylePlayer
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StyleTitle
)

// Renderer defines the interface for game rendering backends.
// Implementations are the terminal (tui) and windowed (ebiten) frontends.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame draws the maze, status line, messages and any overlay
	RenderFrame(s state.Snapshot)

	// ShowMessage displays a message to the user outside the frame
	ShowMessage(msg string)
}

// SizeChecker is implemented by renderers whose display can be too small
// for a level.
type SizeChecker interface {
	CheckSize(s state.Snapshot) bool
}

// Cell sizing in pixels
const (
	BaseCellSize = 40
	MinCellSize  = 30
)

// CellSize returns the pixel size of one maze cell for a level. Cells shrink
// by two pixels per level so larger mazes still fit a window.
func CellSize(level int) int {
	size := BaseCellSize - 2*level
	if size < MinCellSize {
		return MinCellSize
	}
	return size
}

// HUDHeight is the pixel height reserved under the maze for status and messages.
const HUDHeight = 104

// WindowSize returns the window dimensions for a snapshot's grid.
func WindowSize(s state.Snapshot) (width, height int) {
	cell := CellSize(s.Level)
	return s.Cols * cell, s.Rows*cell + HUDHeight
}
