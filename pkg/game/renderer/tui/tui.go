// Package tui renders the maze to an ANSI terminal and drives a session from
// raw-mode keypresses.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazerunner/pkg/engine/terminal"
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/renderer"
	"mazerunner/pkg/game/state"
)

// Icons, two columns per maze cell so the maze keeps its aspect ratio
const (
	IconWall   = "██"
	IconPath   = "  "
	IconExit   = "▣ "
	IconPlayer = "@ "
)

// Lines drawn around the maze: title, status, blank, blank, messages pane
// (header + 5 messages), controls.
const frameChromeLines = 11

// newline is CRLF because the terminal is in raw mode while playing.
const newline = "\r\n"

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorWall        color.Style
	colorPath        color.Style
	colorExit        color.Style
	colorPlayer      color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
	colorTitle       color.Style

	// warning is set by CheckSize when the terminal is too small.
	warning string
}

// New creates a new TUI renderer writing to out
func New(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorPath = color.Style{color.FgDefault}
	t.colorExit = color.Style{color.FgGreen, color.OpBold}
	t.colorPlayer = color.Style{color.FgYellow, color.BgBlack, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
}

// clearScreen homes the cursor and erases the display
const clearScreen = "\x1b[H\x1b[2J"

var (
	_ renderer.Renderer    = (*TUIRenderer)(nil)
	_ renderer.SizeChecker = (*TUIRenderer)(nil)
)

// Clear clears the terminal screen and homes the cursor
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, clearScreen)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StylePath:
		return t.colorPath.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message and applies the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return renderer.ApplyMarkup(msg, t.markup)
}

func (t *TUIRenderer) markup(function, operand string) (string, bool) {
	switch function {
	case "ACTION":
		first, rest := splitFirst(operand)
		return t.StyleText(first, renderer.StyleActionShort) + t.StyleText(rest, renderer.StyleAction), true
	case "EXIT":
		return t.StyleText(operand, renderer.StyleExit), true
	case "DENIED":
		return t.StyleText(operand, renderer.StyleDenied), true
	}
	return "", false
}

func splitFirst(s string) (string, string) {
	r := []rune(s)
	if len(r) == 0 {
		return "", ""
	}
	return string(r[:1]), string(r[1:])
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprint(t.out, t.FormatText(msg)+newline)
}

// RenderFrame renders a complete game frame in one write
func (t *TUIRenderer) RenderFrame(s state.Snapshot) {
	var b strings.Builder

	b.WriteString(clearScreen)
	b.WriteString(t.StyleText(gotext.Get("WINDOW_TITLE"), renderer.StyleTitle) + newline)
	if t.warning != "" {
		b.WriteString(t.StyleText(t.warning, renderer.StyleDenied) + newline)
	}
	b.WriteString(t.StyleText(renderer.StatusLine(s), renderer.StyleSubtle) + newline)
	b.WriteString(newline)

	t.writeMaze(&b, s)
	b.WriteString(newline)

	if lines := renderer.Overlay(s); lines != nil {
		t.writeOverlay(&b, s, lines)
	} else {
		t.writeMessagesPane(&b, s)
	}
	b.WriteString(t.FormatText(renderer.ControlsLine()) + newline)

	fmt.Fprint(t.out, b.String())
}

// renderCell returns the icon for one maze position
func (t *TUIRenderer) renderCell(s state.Snapshot, x, y int) string {
	if s.IsPlayerAt(x, y) {
		return t.StyleText(IconPlayer, renderer.StylePlayer)
	}
	switch s.CellAt(x, y) {
	case world.Exit:
		return t.StyleText(IconExit, renderer.StyleExit)
	case world.Path:
		return t.StyleText(IconPath, renderer.StylePath)
	default:
		return t.StyleText(IconWall, renderer.StyleWall)
	}
}

func (t *TUIRenderer) writeMaze(b *strings.Builder, s state.Snapshot) {
	for y := 0; y < s.Rows; y++ {
		for x := 0; x < s.Cols; x++ {
			b.WriteString(t.renderCell(s, x, y))
		}
		b.WriteString(newline)
	}
}

func (t *TUIRenderer) mazeWidth(s state.Snapshot) int {
	return s.Cols * len([]rune(IconWall))
}

func (t *TUIRenderer) writeOverlay(b *strings.Builder, s state.Snapshot, lines []string) {
	width := t.mazeWidth(s)
	style := renderer.StyleExit
	if s.Phase == state.GameOver {
		style = renderer.StyleDenied
	}
	b.WriteString(renderer.CenterText(t.StyleText(lines[0], style), width) + newline)
	for _, line := range lines[1:] {
		b.WriteString(renderer.CenterText(t.FormatText(line), width) + newline)
	}
	b.WriteString(newline)
}

// writeMessagesPane writes the most recent messages under a divider
func (t *TUIRenderer) writeMessagesPane(b *strings.Builder, s state.Snapshot) {
	width := t.mazeWidth(s)
	label := " Messages "
	dashes := width - len(label)
	if dashes < 4 {
		dashes = 4
	}
	left := strings.Repeat("-", dashes/2)
	right := strings.Repeat("-", dashes-dashes/2)
	b.WriteString(t.StyleText(left+label+right, renderer.StyleSubtle) + newline)
	for _, msg := range s.Messages {
		b.WriteString(t.FormatText(msg) + newline)
	}
}

// CheckSize records a warning, shown above the status line, when the frame
// for this level cannot fit the terminal. Returns false when it does not fit.
func (t *TUIRenderer) CheckSize(s state.Snapshot) bool {
	needW, needH := t.mazeWidth(s), s.Rows+frameChromeLines
	ok, w, h := terminal.Fits(needW, needH)
	t.warning = ""
	if !ok {
		t.warning = gotext.Get("TERMINAL_TOO_SMALL", w, h, needW, needH)
	}
	return ok
}
