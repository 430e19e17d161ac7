// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/state"
)

// MapDumpFilename is the file written inside the dump directory.
const MapDumpFilename = "map.txt"

// ErrNoGrid is returned when there is no maze to dump.
var ErrNoGrid = errors.New("no grid")

// writeMapGrid writes the maze with the player and exit overlaid.
func writeMapGrid(w io.Writer, s state.Snapshot) {
	for y := 0; y < s.Rows; y++ {
		for x := 0; x < s.Cols; x++ {
			switch {
			case s.IsPlayerAt(x, y):
				fmt.Fprint(w, "@")
			case s.Exit.X == x && s.Exit.Y == y:
				fmt.Fprint(w, "E")
			default:
				fmt.Fprintf(w, "%c", world.CellSymbol(s.CellAt(x, y)))
			}
		}
		fmt.Fprintln(w)
	}
}

// WriteMapDump writes metadata, a legend and the maze to w.
func WriteMapDump(w io.Writer, s state.Snapshot, seed int64) {
	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session: %s\n", s.SessionID)
	fmt.Fprintf(w, "seed: %d\n", seed)
	fmt.Fprintf(w, "level: %d\n", s.Level)
	fmt.Fprintf(w, "phase: %s\n", s.Phase)
	fmt.Fprintf(w, "score: %d\n", s.Score)
	fmt.Fprintf(w, "health: %d\n", s.Health)
	fmt.Fprintf(w, "elapsed_seconds: %d\n", s.ElapsedSeconds)
	fmt.Fprintf(w, "grid_rows: %d\n", s.Rows)
	fmt.Fprintf(w, "grid_cols: %d\n", s.Cols)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(w, "player: %d,%d\n", s.Player.X, s.Player.Y)
	fmt.Fprintf(w, "exit: %d,%d\n", s.Exit.X, s.Exit.Y)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "# = wall  (space) = path  @ = player  E = exit")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, s)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END MAP DUMP ===")
}

// DumpMapToFile writes the map dump to map.txt inside dir (the working
// directory when empty) and returns the absolute path.
func DumpMapToFile(s state.Snapshot, seed int64, dir string) (string, error) {
	if s.Rows == 0 || s.Cols == 0 {
		return "", ErrNoGrid
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create dump directory: %w", err)
	}
	absPath, err := filepath.Abs(filepath.Join(dir, MapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer f.Close()

	WriteMapDump(f, s, seed)

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
