package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "mazerunner/pkg/engine/input"
	"mazerunner/pkg/game/devtools"
)

// ProcessIntent handles a high-level input intent from the tiered input
// system. It returns true when the player asked to quit.
func (s *Session) ProcessIntent(intent engineinput.Intent) (quit bool) {
	if dir, ok := intent.Direction(); ok {
		s.OnDirectionalInput(dir)
		return false
	}

	switch intent.Action {
	case engineinput.ActionRestart:
		s.OnRestartRequested()

	case engineinput.ActionDumpMap:
		s.DumpMap()

	case engineinput.ActionQuit:
		s.cfg.Logger.Info("quit requested")
		return true
	}
	return false
}

// DumpMap writes the current maze to the configured dump directory and
// reports the outcome in the message log.
func (s *Session) DumpMap() (string, error) {
	path, err := devtools.DumpMapToFile(s.Snapshot(), s.cfg.Seed, s.cfg.DumpDir)
	if err != nil {
		s.cfg.Logger.Error("map dump failed: %v", err)
		logMessage(s.game, gotext.Get("MAP_DUMP_FAILED", err))
		return "", err
	}
	s.cfg.Logger.Info("map dumped to %s", path)
	logMessage(s.game, gotext.Get("MAP_DUMPED", path))
	return path, nil
}
