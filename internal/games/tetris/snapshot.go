package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Status   string
	Score    int
	Level    int
	Rows     int
	Active   core.Kind
	ActiveX  int
	ActiveY  int
	Next     core.Kind
	Filled   int
	Board    string // One line per row, top row first
	TooSmall bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	shape, x, y := g.engine.Active()
	return Snapshot{
		Tick:     g.tick,
		Status:   g.engine.Status().String(),
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		Rows:     g.engine.RowsCleared(),
		Active:   shape.Kind(),
		ActiveX:  x,
		ActiveY:  y,
		Next:     g.engine.Next().Kind(),
		Filled:   g.engine.Board().Filled(),
		Board:    boardString(g.engine.Board()),
		TooSmall: g.tooSmall,
	}
}

// boardString renders locked cells as kind letters and '.' for empty.
func boardString(b *core.Board) string {
	var sb strings.Builder
	for y := b.Height() - 1; y >= 0; y-- {
		for x := range b.Width() {
			if k := b.Get(x, y); k != core.KindNone {
				sb.WriteString(k.String())
			} else {
				sb.WriteByte('.')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
