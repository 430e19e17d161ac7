package devtools

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/state"
)

func corridorSnapshot(t *testing.T) state.Snapshot {
	t.Helper()
	grid := world.NewGrid(5, 5)
	for _, p := range []world.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}} {
		grid.Carve(p.X, p.Y)
	}
	grid.SetExit(3, 3)

	g := state.NewGame()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g.LoadLevel(grid, now)
	g.Player = world.Point{X: 2, Y: 1}
	return g.Snapshot(now)
}

func TestWriteMapDump(t *testing.T) {
	var buf bytes.Buffer
	WriteMapDump(&buf, corridorSnapshot(t), 1234)
	out := buf.String()

	wantMap := "#####\n# @ #\n### #\n###E#\n#####\n"
	if !strings.Contains(out, wantMap) {
		t.Errorf("dump missing map overlay %q in:\n%s", wantMap, out)
	}
	for _, line := range []string{"seed: 1234", "level: 1", "phase: Playing", "player: 2,1", "exit: 3,3", "health: 3"} {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("dump missing %q", line)
		}
	}
}

func TestDumpMapToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumps")
	path, err := DumpMapToFile(corridorSnapshot(t), 7, dir)
	if err != nil {
		t.Fatalf("DumpMapToFile() error = %v", err)
	}
	if filepath.Base(path) != MapDumpFilename || !filepath.IsAbs(path) {
		t.Errorf("path = %q, want absolute .../%s", path, MapDumpFilename)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "=== END MAP DUMP ===\n") {
		t.Error("dump file is truncated")
	}
}

func TestDumpMapToFile_NoGrid(t *testing.T) {
	_, err := DumpMapToFile(state.Snapshot{}, 0, t.TempDir())
	if !errors.Is(err, ErrNoGrid) {
		t.Errorf("DumpMapToFile(empty) error = %v, want ErrNoGrid", err)
	}
}
