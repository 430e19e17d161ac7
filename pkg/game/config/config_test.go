package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazerunner/pkg/engine/input"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("mazerunner", flag.ContinueOnError)
}

func TestParseConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, RendererTUI, cfg.Renderer)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 1, cfg.StartLevel)
	assert.Equal(t, 1500*time.Millisecond, cfg.LevelCompleteDelay)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, "en", cfg.Language)
	assert.False(t, cfg.Debug)
}

func TestParseConfig_EnvThenFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MAZERUNNER_RENDERER", "ebiten")
	t.Setenv("MAZERUNNER_SEED", "99")
	t.Setenv("MAZERUNNER_START_LEVEL", "4")

	cfg, err := ParseConfig(newFlagSet(), []string{"-level", "2", "-tick", "250ms"})
	require.NoError(t, err)

	assert.Equal(t, RendererEbiten, cfg.Renderer)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 2, cfg.StartLevel, "flag overrides env")
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
}

func TestParseConfig_Dotenv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MAZERUNNER_DUMP_DIR=dumps\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("MAZERUNNER_DUMP_DIR") })

	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, "dumps", cfg.DumpDir)
}

func TestParseConfig_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := ParseConfig(newFlagSet(), []string{"-renderer", "gtk"})
	assert.ErrorIs(t, err, ErrUnknownRenderer)

	_, err = ParseConfig(newFlagSet(), []string{"-level", "0"})
	assert.ErrorIs(t, err, ErrInvalidLevel)

	_, err = ParseConfig(newFlagSet(), []string{"-level-delay", "0s"})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	t.Setenv("MAZERUNNER_START_LEVEL", "many")
	_, err = ParseConfig(newFlagSet(), nil)
	assert.Error(t, err)
}

func TestParseConfig_Bindings(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MAZERUNNER_BINDINGS", "quit:x,restart:f")

	cfg, err := ParseConfig(newFlagSet(), []string{"-bind", "dump_map:p"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"quit": "x", "restart": "f", "dump_map": "p"}, cfg.Bindings)
}

func TestParseConfig_InvalidBindings(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := ParseConfig(newFlagSet(), []string{"-bind", "quit"})
	assert.Error(t, err, "missing key")

	t.Setenv("MAZERUNNER_BINDINGS", "jump:x")
	_, err = ParseConfig(newFlagSet(), nil)
	assert.ErrorIs(t, err, input.ErrUnknownAction)
}

func TestResolveSeed(t *testing.T) {
	seed, err := Config{Seed: 42}.ResolveSeed()
	require.NoError(t, err)
	assert.Equal(t, int64(42), seed)

	a, err := Config{}.ResolveSeed()
	require.NoError(t, err)
	b, err := Config{}.ResolveSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
