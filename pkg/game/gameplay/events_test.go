package gameplay

import (
	"bytes"
	"strings"
	"testing"

	"mazerunner/pkg/engine/logging"
	"mazerunner/pkg/engine/world"
)

func TestListeners_FanOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	ls := Listeners{a, NopListener{}, b}

	grid := (&corridorGenerator{}).Generate(1)
	ls.LevelStarted(1, grid, world.Point{X: 1, Y: 1})
	ls.LevelCompleted(1)
	ls.Ticked(4)
	ls.GameOver()

	for _, r := range []*recorder{a, b} {
		if len(r.events) != 3 || len(r.ticks) != 1 || r.ticks[0] != 4 {
			t.Errorf("recorder got events %v ticks %v", r.events, r.ticks)
		}
	}
}

func TestLogListener(t *testing.T) {
	var buf bytes.Buffer
	l := LogListener{Log: logging.New(&buf, "GAME")}

	grid := (&corridorGenerator{}).Generate(1)
	l.LevelStarted(1, grid, grid.Start())
	l.Ticked(1)
	l.GameOver()

	out := buf.String()
	if !strings.Contains(out, "level 1 started: 5x5 grid") {
		t.Errorf("missing level start line in %q", out)
	}
	if strings.Contains(out, "tick") {
		t.Errorf("tick logged without debug enabled: %q", out)
	}
	if !strings.Contains(out, "game over") {
		t.Errorf("missing game over line in %q", out)
	}
}
