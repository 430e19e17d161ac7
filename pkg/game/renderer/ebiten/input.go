package ebiten

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazerunner/pkg/engine/input"
)

// keyCodes maps Ebiten keys to binding codes (raw layer).
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyN:          "n",
	ebiten.KeyS:          "s",
	ebiten.KeyW:          "w",
	ebiten.KeyE:          "e",
	ebiten.KeyH:          "h",
	ebiten.KeyJ:          "j",
	ebiten.KeyK:          "k",
	ebiten.KeyL:          "l",
	ebiten.KeyR:          "r",
	ebiten.KeyM:          "m",
	ebiten.KeyQ:          "q",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyEscape:     "escape",
	ebiten.KeyF8:         "f8",
}

// keyCode names a key for the bindings. Letters outside keyCodes use their
// lower-case name so rebound letter keys work.
func keyCode(key ebiten.Key) (string, bool) {
	if key == ebiten.KeyC && ebiten.IsKeyPressed(ebiten.KeyControl) {
		return "ctrl_c", true
	}
	if code, ok := keyCodes[key]; ok {
		return code, true
	}
	if name := key.String(); len(name) == 1 && name >= "A" && name <= "Z" {
		return strings.ToLower(name), true
	}
	return "", false
}

// checkInput turns this frame's key presses into intents, in press order.
func (e *EbitenRenderer) checkInput() []engineinput.Intent {
	var intents []engineinput.Intent
	now := time.Now()
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		code, ok := keyCode(key)
		if !ok {
			continue
		}
		intent := engineinput.Resolve(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: now,
		})
		if intent.Action != engineinput.ActionNone {
			intents = append(intents, intent)
		}
	}
	return intents
}
