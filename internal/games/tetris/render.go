package tetris

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

const (
	cellWidth  = 2  // Terminal columns per board cell
	hudHeight  = 2  // HUD line plus separator
	panelWidth = 14 // Side panel with next piece and stats
	panelGap   = 2
)

// Glyphs for board cells
const (
	blockRune = '█'
	ghostRune = '░'
	emptyRune = '·'
)

// kindColors maps tetromino kinds to palette colors.
var kindColors = map[core.Kind]platformcore.Color{
	core.KindI: platformcore.ColorCyan,
	core.KindJ: platformcore.ColorBlue,
	core.KindL: platformcore.ColorOrange,
	core.KindO: platformcore.ColorYellow,
	core.KindS: platformcore.ColorGreen,
	core.KindT: platformcore.ColorMagenta,
	core.KindZ: platformcore.ColorRed,
}

// requiredSize returns the minimum screen size for the configured board.
func (g *Game) requiredSize() (int, int) {
	w := g.cfg.Board.Width*cellWidth + 2 + panelGap + panelWidth
	h := g.cfg.Board.Height + 2 + hudHeight
	return w, h
}

// boardOrigin returns the top-left corner of the board frame.
func (g *Game) boardOrigin() (int, int) {
	w, _ := g.requiredSize()
	x := (g.screenW - w) / 2
	if x < 0 {
		x = 0
	}
	return x, hudHeight
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	bx, by := g.boardOrigin()
	frame := platformcore.NewRect(bx, by, g.engine.Width()*cellWidth+2, g.engine.Height()+2)
	dst.DrawBox(frame)

	g.renderBoard(dst, bx+1, by+1)
	g.renderPanel(dst, frame.Right()+panelGap, by)

	switch g.engine.Status() {
	case core.StatusGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d", g.engine.Score()), "Press R to restart")
	case core.StatusPaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" Tetris — Score: %d  Level: %d  Rows: %d",
		g.engine.Score(), g.engine.Level(), g.engine.RowsCleared())
	if g.flashTicks > 0 {
		hud += fmt.Sprintf("  +%d", g.flashRows)
	}
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws locked cells, the ghost and the active piece.
// Board row 0 is at the bottom of the frame.
func (g *Game) renderBoard(dst *platformcore.Screen, ox, oy int) {
	h := g.engine.Height()

	for y := range h {
		for x := range g.engine.Width() {
			kind := g.engine.Cell(x, y)
			if kind == core.KindNone {
				drawCell(dst, ox, oy, h, x, y, emptyRune, platformcore.ColorGray)
				continue
			}
			drawCell(dst, ox, oy, h, x, y, blockRune, kindColors[kind])
		}
	}

	shape, ax, _ := g.engine.Active()
	if shape.IsNone() {
		return
	}
	color := kindColors[shape.Kind()]

	gy := g.engine.GhostY()
	for _, c := range shape.Cells() {
		drawCell(dst, ox, oy, h, ax+c.X, gy+c.Y, ghostRune, color)
	}
	for _, c := range g.engine.ActiveCells() {
		drawCell(dst, ox, oy, h, c.X, c.Y, blockRune, color)
	}
}

// drawCell paints one board cell, skipping rows above the visible board.
func drawCell(dst *platformcore.Screen, ox, oy, h, x, y int, r rune, c platformcore.Color) {
	if y < 0 || y >= h {
		return
	}
	sx := ox + x*cellWidth
	sy := oy + (h - 1 - y)
	for i := range cellWidth {
		dst.SetColor(sx+i, sy, r, c)
	}
}

// renderPanel draws the next-piece preview and controls.
func (g *Game) renderPanel(dst *platformcore.Screen, px, py int) {
	dst.DrawText(px, py, "Next")
	preview := platformcore.NewRect(px, py+1, panelWidth-2, 6)
	dst.DrawBox(preview)

	next := g.engine.Next()
	if !next.IsNone() {
		// Center the piece inside the preview box
		w := (next.MaxX() - next.MinX() + 1) * cellWidth
		cx := preview.X + (preview.W-w)/2
		top := preview.Y + 1 + (preview.H-2-(next.MaxY()-next.MinY()+1))/2
		color := kindColors[next.Kind()]
		for _, c := range next.Cells() {
			sx := cx + (c.X-next.MinX())*cellWidth
			sy := top + (next.MaxY() - c.Y)
			for i := range cellWidth {
				dst.SetColor(sx+i, sy, blockRune, color)
			}
		}
	}

	lines := []string{
		fmt.Sprintf("Level %d", g.engine.Level()),
		fmt.Sprintf("Rows  %d", g.engine.RowsCleared()),
		"",
		"←/→  move",
		"↑/↓  rotate",
		"d    drop",
		"spc  slam",
		"p    pause",
	}
	for i, line := range lines {
		dst.DrawText(px, preview.Bottom()+1+i, line)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		x := box.X + (boxW-len([]rune(line)))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
