package tui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/leonelquinteros/gotext"

	"mazerunner/pkg/engine/input"
	"mazerunner/pkg/engine/logging"
	"mazerunner/pkg/engine/schedule"
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/gameplay"
	"mazerunner/pkg/game/renderer"
	"mazerunner/pkg/game/state"
)

// KeySource yields binding codes, one per keypress.
type KeySource interface {
	ReadKey() (string, error)
}

// Session is the part of gameplay.Session the frontend drives.
type Session interface {
	Start()
	ProcessIntent(intent input.Intent) (quit bool)
	Snapshot() state.Snapshot
	Close()
}

// Frontend redraws the terminal whenever the session changes. Register it
// as the session's Listener, then call Run.
type Frontend struct {
	r       renderer.Renderer
	loop    *schedule.Loop
	log     *logging.Logger
	session Session
}

var _ gameplay.Listener = (*Frontend)(nil)

// NewFrontend creates a frontend drawing with r. Events are serialised on loop.
func NewFrontend(r renderer.Renderer, loop *schedule.Loop, log *logging.Logger) *Frontend {
	if log == nil {
		log = logging.Discard()
	}
	return &Frontend{r: r, loop: loop, log: log}
}

func (f *Frontend) redraw() {
	if f.session == nil {
		return
	}
	f.r.RenderFrame(f.session.Snapshot())
}

// LevelStarted implements gameplay.Listener.
func (f *Frontend) LevelStarted(int, *world.Grid, world.Point) {
	if f.session == nil {
		return
	}
	if sc, ok := f.r.(renderer.SizeChecker); ok {
		sc.CheckSize(f.session.Snapshot())
	}
	f.redraw()
}

// LevelCompleted implements gameplay.Listener.
func (f *Frontend) LevelCompleted(int) { f.redraw() }

// GameOver implements gameplay.Listener.
func (f *Frontend) GameOver() { f.redraw() }

// Ticked implements gameplay.Listener.
func (f *Frontend) Ticked(int) { f.redraw() }

// Run starts the session and processes keys until quit, ctx ends or the key
// source fails. Every state change happens on the calling goroutine.
func (f *Frontend) Run(ctx context.Context, session Session, keys KeySource) error {
	f.session = session
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	f.r.Init()
	f.loop.Post(func() {
		session.Start()
		f.redraw()
	})

	keyErr := make(chan error, 1)
	go f.readKeys(keys, cancel, keyErr)

	err := f.loop.Run(ctx)
	session.Close()
	f.loop.Close()

	f.r.Clear()
	f.r.ShowMessage(gotext.Get("FINAL_SCORE", session.Snapshot().Score))

	select {
	case kerr := <-keyErr:
		if !errors.Is(kerr, io.EOF) {
			return kerr
		}
	default:
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// readKeys runs on its own goroutine and posts one event per key.
func (f *Frontend) readKeys(keys KeySource, quit context.CancelFunc, errs chan<- error) {
	for {
		code, err := keys.ReadKey()
		if err != nil {
			errs <- err
			quit()
			return
		}
		intent := input.Resolve(input.RawInput{
			Device:    input.DeviceTerminal,
			Code:      code,
			Timestamp: time.Now(),
		})
		if intent.Action == input.ActionNone {
			continue
		}
		f.log.Debug("key %q -> %s", code, input.ActionName(intent.Action))
		ok := f.loop.Post(func() {
			if f.session.ProcessIntent(intent) {
				quit()
				return
			}
			f.redraw()
		})
		if !ok {
			return
		}
	}
}
