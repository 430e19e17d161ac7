package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"

	"mazerunner/pkg/engine/schedule"
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/gameplay"
	"mazerunner/pkg/game/locale"
	"mazerunner/pkg/game/state"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.Enable
	color.Enable = false
	t.Cleanup(func() { color.Enable = prev })
}

func corridorGrid() *world.Grid {
	g := world.NewGrid(5, 5)
	for _, p := range []world.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}} {
		g.Carve(p.X, p.Y)
	}
	g.SetExit(3, 3)
	return g
}

type corridorGenerator struct{}

func (corridorGenerator) Name() string              { return "corridor" }
func (corridorGenerator) Generate(int) *world.Grid { return corridorGrid() }

func snapshot(phase state.Phase) state.Snapshot {
	g := state.NewGame()
	now := time.Now()
	g.LoadLevel(corridorGrid(), now)
	g.Phase = phase
	g.AddMessage("ACTION{Ouch!} You hit a wall.")
	return g.Snapshot(now)
}

func TestRenderFrame(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	r := New(&buf)
	r.Init()

	r.RenderFrame(snapshot(state.Playing))
	out := buf.String()

	wantRows := []string{
		"██████████",
		"██@     ██",
		"██████  ██",
		"██████▣ ██",
		"██████████",
	}
	for _, row := range wantRows {
		if !strings.Contains(out, row+"\r\n") {
			t.Errorf("frame missing row %q", row)
		}
	}
	if !strings.Contains(out, "Ouch! You hit a wall.") {
		t.Error("frame missing message")
	}
	if strings.Contains(out, "ACTION{") {
		t.Error("frame contains raw markup")
	}
	if strings.Contains(strings.ReplaceAll(out, "\r\n", ""), "\n") {
		t.Error("frame has bare LF line endings")
	}
}

func TestRenderFrame_GameOverOverlay(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	r := New(&buf)
	r.Init()

	r.RenderFrame(snapshot(state.GameOver))
	if !strings.Contains(buf.String(), "GAME_OVER") && !strings.Contains(buf.String(), "GAME OVER") {
		t.Errorf("game over overlay missing:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Ouch!") {
		t.Error("messages pane drawn under overlay")
	}
}

func TestFormatText(t *testing.T) {
	withoutColor(t)
	r := New(io.Discard)
	r.Init()
	if got := r.FormatText("Press ACTION{R} to restart, level %d", 2); got != "Press R to restart, level 2" {
		t.Errorf("FormatText() = %q", got)
	}
}

// scriptedKeys returns codes in order, then io.EOF.
type scriptedKeys struct {
	codes []string
	delay time.Duration
}

func (k *scriptedKeys) ReadKey() (string, error) {
	if len(k.codes) == 0 {
		return "", io.EOF
	}
	time.Sleep(k.delay)
	code := k.codes[0]
	k.codes = k.codes[1:]
	return code, nil
}

func TestFrontend_Run(t *testing.T) {
	withoutColor(t)
	if err := locale.Init("en"); err != nil {
		t.Fatal(err)
	}
	loop := schedule.NewLoop(0)
	var buf bytes.Buffer
	r := New(&buf)
	f := NewFrontend(r, loop, nil)
	session := gameplay.NewSession(gameplay.Config{
		Generator:          corridorGenerator{},
		Scheduler:          loop,
		Listener:           f,
		LevelCompleteDelay: time.Hour,
	})

	keys := &scriptedKeys{codes: []string{"x", "l", "l", "j", "j", "q", "k"}}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := f.Run(ctx, session, keys); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	g := session.Game()
	if g.Phase != state.LevelComplete || g.Score != 100 {
		t.Errorf("after run: phase %v score %d, want LevelComplete 100", g.Phase, g.Score)
	}
	if want := clearScreen + "Final score: 100\r\n"; !strings.HasSuffix(buf.String(), want) {
		t.Errorf("output does not end with the cleared screen and final score %q", want)
	}
}

func TestFrontend_RunStopsOnEOF(t *testing.T) {
	loop := schedule.NewLoop(0)
	f := NewFrontend(New(io.Discard), loop, nil)
	session := gameplay.NewSession(gameplay.Config{
		Generator: corridorGenerator{},
		Scheduler: loop,
		Listener:  f,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := f.Run(ctx, session, &scriptedKeys{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if ctx.Err() != nil {
		t.Error("Run only returned after the timeout")
	}
}
