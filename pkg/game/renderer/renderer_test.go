package renderer

import (
	"strings"
	"testing"

	"mazerunner/pkg/engine/input"
	"mazerunner/pkg/game/locale"
	"mazerunner/pkg/game/state"
)

func TestCellSize(t *testing.T) {
	cases := map[int]int{1: 38, 2: 36, 5: 30, 6: 30, 20: 30}
	for level, want := range cases {
		if got := CellSize(level); got != want {
			t.Errorf("CellSize(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestWindowSize(t *testing.T) {
	w, h := WindowSize(state.Snapshot{Level: 1, Rows: 11, Cols: 15})
	if w != 15*38 || h != 11*38+HUDHeight {
		t.Errorf("WindowSize() = %dx%d, want %dx%d", w, h, 15*38, 11*38+HUDHeight)
	}
}

func TestApplyMarkup(t *testing.T) {
	style := func(fn, operand string) (string, bool) {
		if fn == "ACTION" {
			return "<" + operand + ">", true
		}
		return "", false
	}
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"Press ACTION{R} now", "Press <R> now"},
		{"Map dumped to ACTION{/tmp/out/map.txt}", "Map dumped to </tmp/out/map.txt>"},
		{"Find the EXIT{exit}", "Find the exit"},
		{"ACTION{a} and ACTION{b}", "<a> and <b>"},
	}
	for _, tc := range cases {
		if got := ApplyMarkup(tc.in, style); got != tc.want {
			t.Errorf("ApplyMarkup(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripMarkup(t *testing.T) {
	if got := StripMarkup("ACTION{Ouch!} You hit a wall."); got != "Ouch! You hit a wall." {
		t.Errorf("StripMarkup() = %q", got)
	}
}

func TestOverlay(t *testing.T) {
	if lines := Overlay(state.Snapshot{Phase: state.Playing}); lines != nil {
		t.Errorf("Overlay(Playing) = %v, want nil", lines)
	}
	if lines := Overlay(state.Snapshot{Phase: state.LevelComplete, Level: 2}); len(lines) != 2 {
		t.Errorf("Overlay(LevelComplete) = %v, want 2 lines", lines)
	}
	if lines := Overlay(state.Snapshot{Phase: state.GameOver}); len(lines) != 3 {
		t.Errorf("Overlay(GameOver) = %v, want 3 lines", lines)
	}
}

func TestCenterText(t *testing.T) {
	got := CenterText("ACTION{ab}", 6)
	if got != "  ACTION{ab}" {
		t.Errorf("CenterText() = %q", got)
	}
	if got := CenterText(strings.Repeat("x", 10), 4); got != strings.Repeat("x", 10) {
		t.Errorf("CenterText(too long) = %q", got)
	}
}

func TestControlsLine(t *testing.T) {
	if err := locale.Init("en"); err != nil {
		t.Fatal(err)
	}
	defer input.ResetBindings()

	if got := StripMarkup(ControlsLine()); got != "Move: arrows   Restart: R   Dump map: M   Quit: Q" {
		t.Errorf("ControlsLine() = %q", got)
	}

	if err := input.ApplyBindings(map[string]string{"quit": "x"}); err != nil {
		t.Fatal(err)
	}
	if got := StripMarkup(ControlsLine()); !strings.HasSuffix(got, "Quit: X") {
		t.Errorf("ControlsLine() after rebinding = %q, want Quit: X", got)
	}
}
