// Package config loads game settings from the environment, an optional
// .env file and command-line flags, in increasing order of precedence.
package config

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"mazerunner/pkg/engine/input"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MAZERUNNER_"

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

var (
	ErrUnknownRenderer = errors.New("unknown renderer")
	ErrInvalidLevel    = errors.New("start level must be at least 1")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidBinding  = errors.New("binding must be action:key")
)

// Config holds game launch configuration.
type Config struct {
	Renderer           string        `env:"RENDERER" envDefault:"tui"`
	Seed               int64         `env:"SEED"`
	StartLevel         int           `env:"START_LEVEL" envDefault:"1"`
	LevelCompleteDelay time.Duration `env:"LEVEL_COMPLETE_DELAY" envDefault:"1500ms"`
	TickInterval       time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
	LogFile            string        `env:"LOG_FILE" envDefault:"mazerunner.log"`
	DumpDir            string        `env:"DUMP_DIR" envDefault:"."`
	Language           string        `env:"LANGUAGE" envDefault:"en"`
	Debug              bool          `env:"DEBUG"`

	// Bindings rebinds actions to a single key, e.g. "quit:x,restart:f".
	Bindings map[string]string `env:"BINDINGS" envSeparator:"," envKeyValSeparator:":"`
}

// ParseConfig parses .env, environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if err := LoadDotenv(".env"); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "Presentation backend: tui or ebiten")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Maze RNG seed (0 picks a random seed)")
	fs.IntVar(&cfg.StartLevel, "level", cfg.StartLevel, "Starting level (for developer testing)")
	fs.DurationVar(&cfg.LevelCompleteDelay, "level-delay", cfg.LevelCompleteDelay, "Pause between reaching the exit and the next level")
	fs.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Elapsed time refresh interval")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Log file (empty logs to stderr)")
	fs.StringVar(&cfg.DumpDir, "dump-dir", cfg.DumpDir, "Directory for map dumps")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "UI language")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")
	fs.Func("bind", "Rebind an action to one key as action:key (repeatable)", func(v string) error {
		name, code, ok := strings.Cut(v, ":")
		if !ok || name == "" || code == "" {
			return fmt.Errorf("%w: %q", ErrInvalidBinding, v)
		}
		if cfg.Bindings == nil {
			cfg.Bindings = make(map[string]string)
		}
		cfg.Bindings[name] = code
		return nil
	})
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotenv loads variables from path without overriding ones already set.
// A missing file is not an error.
func LoadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, c.Renderer)
	}
	if c.StartLevel < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLevel, c.StartLevel)
	}
	if c.LevelCompleteDelay <= 0 {
		return fmt.Errorf("level complete delay: %w", ErrInvalidDuration)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval: %w", ErrInvalidDuration)
	}
	for name, code := range c.Bindings {
		if _, err := input.ParseAction(name); err != nil {
			return err
		}
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("%w: %q has no key", ErrInvalidBinding, name)
		}
	}
	return nil
}

// ResolveSeed returns the configured seed, or a fresh random one when it is 0.
func (c Config) ResolveSeed() (int64, error) {
	if c.Seed != 0 {
		return c.Seed, nil
	}
	return NewSeed()
}

// NewSeed returns a random seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
