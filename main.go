package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazerunner/pkg/engine/input"
	"mazerunner/pkg/engine/logging"
	"mazerunner/pkg/engine/schedule"
	"mazerunner/pkg/engine/terminal"
	"mazerunner/pkg/game/config"
	"mazerunner/pkg/game/gameplay"
	"mazerunner/pkg/game/generator"
	"mazerunner/pkg/game/locale"
	ebitenrenderer "mazerunner/pkg/game/renderer/ebiten"
	"mazerunner/pkg/game/renderer/tui"
)

// eventQueueSize bounds the pending events between key reader, timers and
// the game loop.
const eventQueueSize = 64

var errStdoutNotTerminal = errors.New("stdout is not a terminal: use -renderer=ebiten or run in a terminal")

func main() {
	if err := run(); err != nil {
		color.Error.Println(err)
		os.Exit(1)
	}
	fmt.Println(gotext.Get("GOODBYE"))
}

func run() error {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	if err := locale.Init(cfg.Language); err != nil {
		return err
	}
	if err := input.ApplyBindings(cfg.Bindings); err != nil {
		return err
	}

	logOut, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	log := logging.New(logOut, "GAME")
	log.SetDebug(cfg.Debug)

	seed, err := cfg.ResolveSeed()
	if err != nil {
		return err
	}
	log.Info("renderer=%s seed=%d start_level=%d", cfg.Renderer, seed, cfg.StartLevel)

	gen := generator.NewDefault(rand.New(rand.NewSource(seed)))
	loop := schedule.NewLoop(eventQueueSize)

	sessionCfg := gameplay.Config{
		Generator:          gen,
		Scheduler:          loop,
		Logger:             log.With("SESSION"),
		LevelCompleteDelay: cfg.LevelCompleteDelay,
		TickInterval:       cfg.TickInterval,
		StartLevel:         cfg.StartLevel,
		Seed:               seed,
		DumpDir:            cfg.DumpDir,
	}
	logListener := gameplay.LogListener{Log: log.With("EVENT")}

	switch cfg.Renderer {
	case config.RendererEbiten:
		return runEbiten(loop, log, sessionCfg, logListener)
	default:
		return runTUI(loop, log, sessionCfg, logListener)
	}
}

// openLog returns the log destination. The terminal renderer owns stdout,
// so it always logs to a file; an empty path logs to stderr otherwise.
func openLog(cfg config.Config) (io.Writer, func(), error) {
	path := cfg.LogFile
	if path == "" && cfg.Renderer == config.RendererTUI {
		path = "mazerunner.log"
	}
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := logging.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func runTUI(loop *schedule.Loop, log *logging.Logger, cfg gameplay.Config, logListener gameplay.Listener) error {
	if !terminal.IsTerminal() {
		return errStdoutNotTerminal
	}
	keys, err := input.NewKeyReader(os.Stdin)
	if err != nil {
		if errors.Is(err, input.ErrNotTerminal) {
			return fmt.Errorf("%w: use -renderer=ebiten outside a terminal", err)
		}
		return err
	}
	defer keys.Close()

	r := tui.New(os.Stdout)
	frontend := tui.NewFrontend(r, loop, log.With("TUI"))
	cfg.Listener = gameplay.Listeners{frontend, logListener}
	session := gameplay.NewSession(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return frontend.Run(ctx, session, keys)
}

func runEbiten(loop *schedule.Loop, log *logging.Logger, cfg gameplay.Config, logListener gameplay.Listener) error {
	r := ebitenrenderer.New(loop, log.With("EBITEN"))
	cfg.Listener = gameplay.Listeners{r, logListener}
	session := gameplay.NewSession(cfg)
	return r.Run(session)
}
