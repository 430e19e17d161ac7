package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"mazerunner/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Session
	ActionRestart
	ActionDumpMap // Write the current maze to a text file (F8)
	ActionQuit
)

// ErrUnknownAction is returned for an action name with no Action.
var ErrUnknownAction = errors.New("unknown action")

// actionNames are the names accepted in binding overrides.
var actionNames = map[string]Action{
	"north":    ActionMoveNorth,
	"south":    ActionMoveSouth,
	"west":     ActionMoveWest,
	"east":     ActionMoveEast,
	"restart":  ActionRestart,
	"dump_map": ActionDumpMap,
	"quit":     ActionQuit,
}

// ParseAction looks up an action by its binding name ("north", "quit", ...).
func ParseAction(name string) (Action, error) {
	if act, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return act, nil
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// Direction returns the movement direction of a move intent.
func (i Intent) Direction() (world.Direction, bool) {
	switch i.Action {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveWest:
		return world.West, true
	case ActionMoveEast:
		return world.East, true
	}
	return world.North, false
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_up", "q", "f8").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after deduplication.
// Ebiten key edges and terminal raw reads already arrive one per press, so
// this is a distinct type without extra filtering.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// defaultBindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var defaultBindings = map[string]Action{
	// Movement (arrows, NSEW, Vim)
	"arrow_up":    ActionMoveNorth,
	"north":       ActionMoveNorth,
	"n":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"south":       ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"west":        ActionMoveWest,
	"w":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"east":        ActionMoveEast,
	"e":           ActionMoveEast,
	"l":           ActionMoveEast,

	// Restart
	"r":       ActionRestart,
	"restart": ActionRestart,
	"enter":   ActionRestart,

	// Map dump
	"f8": ActionDumpMap,
	"m":  ActionDumpMap,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

var bindings = copyBindings(defaultBindings)

func copyBindings(src map[string]Action) map[string]Action {
	dst := make(map[string]Action, len(src))
	for code, act := range src {
		dst[code] = act
	}
	return dst
}

// reservedCodes can never be rebound or unbound.
var reservedCodes = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"ctrl_c":      true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Resolve runs a raw event through every layer.
func Resolve(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionRestart:
		return "Restart"
	case ActionDumpMap:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between runs.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. Reserved codes (arrows, ctrl_c) are kept and cannot be reassigned.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reservedCodes[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reservedCodes[code] {
		bindings[code] = action
	}
}

// ResetBindings restores the default bindings.
func ResetBindings() {
	bindings = copyBindings(defaultBindings)
}

// ApplyBindings restores the defaults, then rebinds each named action to a
// single code with SetSingleBinding. Names are applied in sorted order so the
// result does not depend on map iteration.
func ApplyBindings(overrides map[string]string) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	ResetBindings()
	for _, name := range names {
		act, err := ParseAction(name)
		if err != nil {
			return err
		}
		SetSingleBinding(act, strings.ToLower(strings.TrimSpace(overrides[name])))
	}
	return nil
}

// KeyLabel returns the shortest code bound to action, upper-cased for help
// text ("R", "F8"). Empty when the action has no binding.
func KeyLabel(action Action) string {
	codes := GetBindingsByAction()[action]
	if len(codes) == 0 {
		return ""
	}
	best := codes[0]
	for _, c := range codes[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return strings.ToUpper(best)
}
