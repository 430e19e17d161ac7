package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/gofont/gomono"

	"mazerunner/pkg/engine/input"
	"mazerunner/pkg/engine/logging"
	"mazerunner/pkg/engine/schedule"
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/gameplay"
	"mazerunner/pkg/game/renderer"
	"mazerunner/pkg/game/state"
)

// Session is the part of gameplay.Session the window drives.
type Session interface {
	Start()
	ProcessIntent(intent input.Intent) (quit bool)
	Snapshot() state.Snapshot
	Close()
}

// EbitenRenderer draws the maze in a window. It implements ebiten.Game,
// renderer.Renderer and gameplay.Listener. Update and Draw run on Ebiten's
// game goroutine, which is also where every session event is processed.
type EbitenRenderer struct {
	loop    *schedule.Loop
	log     *logging.Logger
	session Session

	snapshot state.Snapshot
	banner   string

	fontSource *text.GoTextFaceSource
	cachedFace *text.GoTextFace

	windowOpenedLogged bool
	quit               bool
}

var (
	_ ebiten.Game       = (*EbitenRenderer)(nil)
	_ renderer.Renderer = (*EbitenRenderer)(nil)
	_ gameplay.Listener = (*EbitenRenderer)(nil)
)

// New creates a new Ebiten renderer. Timer callbacks queued on loop are
// drained at the start of every Update.
func New(loop *schedule.Loop, log *logging.Logger) *EbitenRenderer {
	if log == nil {
		log = logging.Discard()
	}
	return &EbitenRenderer{loop: loop, log: log}
}

// Init loads the font and sets up the window
func (e *EbitenRenderer) Init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		e.log.Error("load font: %v", err)
	} else {
		e.fontSource = src
	}
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

// Clear drops the HUD banner. Draw repaints the rest every frame.
func (e *EbitenRenderer) Clear() {
	e.banner = ""
}

// RenderFrame stores the snapshot for the next Draw call
func (e *EbitenRenderer) RenderFrame(s state.Snapshot) {
	if s.Rows != e.snapshot.Rows || s.Cols != e.snapshot.Cols || s.Level != e.snapshot.Level {
		w, h := renderer.WindowSize(s)
		ebiten.SetWindowSize(w, h)
	}
	e.snapshot = s
}

// ShowMessage shows msg in the HUD until it is replaced or cleared
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.banner = renderer.StripMarkup(msg)
}

// Run opens the window and blocks until it is closed or the player quits
func (e *EbitenRenderer) Run(session Session) error {
	e.session = session
	e.Init()
	session.Start()
	e.RenderFrame(session.Snapshot())

	err := ebiten.RunGame(e)
	session.Close()
	e.loop.Close()
	if err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// LevelStarted implements gameplay.Listener. The banner shows the key help
// while playing.
func (e *EbitenRenderer) LevelStarted(level int, grid *world.Grid, player world.Point) {
	e.ShowMessage(renderer.ControlsLine())
	e.refresh()
}

// LevelCompleted implements gameplay.Listener.
func (e *EbitenRenderer) LevelCompleted(int) { e.refresh() }

// GameOver implements gameplay.Listener. The overlay carries the restart hint.
func (e *EbitenRenderer) GameOver() {
	e.Clear()
	e.refresh()
}

// Ticked implements gameplay.Listener.
func (e *EbitenRenderer) Ticked(int) { e.refresh() }

func (e *EbitenRenderer) refresh() {
	if e.session != nil {
		e.RenderFrame(e.session.Snapshot())
	}
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.Info("window opened (%dx%d)", w, h)
	}

	e.loop.Drain()

	for _, intent := range e.checkInput() {
		if e.session.ProcessIntent(intent) {
			e.quit = true
			break
		}
	}
	if e.quit {
		return ebiten.Termination
	}

	e.refresh()
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if e.snapshot.Rows == 0 {
		return outsideWidth, outsideHeight
	}
	return renderer.WindowSize(e.snapshot)
}
