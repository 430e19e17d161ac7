package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/renderer"
	"mazerunner/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s := e.snapshot
	if s.Rows == 0 {
		return
	}

	cell := renderer.CellSize(s.Level)
	e.drawMaze(screen, s, cell)
	e.drawHUD(screen, s, s.Rows*cell)

	if lines := renderer.Overlay(s); lines != nil {
		e.drawOverlay(screen, s, lines)
	}
}

// drawMaze fills one square per cell, then draws the player on top
func (e *EbitenRenderer) drawMaze(screen *ebiten.Image, s state.Snapshot, cell int) {
	size := float32(cell)
	for y := 0; y < s.Rows; y++ {
		for x := 0; x < s.Cols; x++ {
			px, py := float32(x*cell), float32(y*cell)
			switch s.CellAt(x, y) {
			case world.Wall:
				vector.DrawFilledRect(screen, px, py, size, size, colorWall, false)
				vector.DrawFilledRect(screen, px, py, size, 2, colorWallEdge, false)
			case world.Exit:
				vector.DrawFilledRect(screen, px, py, size, size, colorExitBg, false)
				inset := size / 4
				vector.DrawFilledRect(screen, px+inset, py+inset, size-2*inset, size-2*inset, colorExit, false)
			default:
				vector.DrawFilledRect(screen, px, py, size, size, colorMapBackground, false)
			}
		}
	}

	cx := float32(s.Player.X*cell) + size/2
	cy := float32(s.Player.Y*cell) + size/2
	vector.DrawFilledCircle(screen, cx, cy, size/3, colorPlayer, true)
}

// drawHUD draws the status line and the latest messages under the maze
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, s state.Snapshot, top int) {
	y := float64(top + hudPadding)
	e.drawText(screen, renderer.StatusLine(s), hudPadding, y, colorText)
	y += e.lineHeight()

	if e.banner != "" {
		e.drawText(screen, e.banner, hudPadding, y, colorAction)
		y += e.lineHeight()
	}

	msgs := s.Messages
	if len(msgs) > maxHUDMessages {
		msgs = msgs[len(msgs)-maxHUDMessages:]
	}
	for _, msg := range msgs {
		e.drawText(screen, renderer.StripMarkup(msg), hudPadding, y, colorSubtle)
		y += e.lineHeight()
	}
}

// drawOverlay dims the maze and centers the phase banner on it
func (e *EbitenRenderer) drawOverlay(screen *ebiten.Image, s state.Snapshot, lines []string) {
	cell := renderer.CellSize(s.Level)
	w, h := float32(s.Cols*cell), float32(s.Rows*cell)
	vector.DrawFilledRect(screen, 0, 0, w, h, colorPanelBackground, false)

	title := colorSuccess
	if s.Phase == state.GameOver {
		title = colorDenied
	}

	lh := e.lineHeight()
	y := float64(h)/2 - lh*float64(len(lines))/2
	for i, line := range lines {
		col := color.Color(colorText)
		if i == 0 {
			col = title
		}
		line = renderer.StripMarkup(line)
		x := (float64(w) - e.textWidth(line)) / 2
		e.drawText(screen, line, x, y, col)
		y += lh
	}
}

// face returns a cached monospace font face
func (e *EbitenRenderer) face() *text.GoTextFace {
	if e.fontSource == nil {
		return nil
	}
	if e.cachedFace == nil {
		e.cachedFace = &text.GoTextFace{Source: e.fontSource, Size: baseFontSize}
	}
	return e.cachedFace
}

func (e *EbitenRenderer) lineHeight() float64 {
	return baseFontSize + hudLineSpacing
}

func (e *EbitenRenderer) textWidth(s string) float64 {
	face := e.face()
	if face == nil {
		// ebitenutil's debug font is 6px wide
		return float64(len(s) * 6)
	}
	w, _ := text.Measure(s, face, 0)
	return w
}

// drawText draws s with its top-left corner at (x, y). Without a font it
// falls back to the debug printer.
func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, x, y float64, col color.Color) {
	face := e.face()
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}
