package core_test

import (
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// seqSource replays a fixed sequence of draws, wrapping around at the end.
type seqSource struct {
	draws []int
	pos   int
	calls int
}

func newSeqSource(draws ...int) *seqSource {
	return &seqSource{draws: draws}
}

func (s *seqSource) Intn(n int) int {
	s.calls++
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.pos%len(s.draws)] % n
	s.pos++
	return v
}

// kindDraw returns the Intn(7) draw that yields kind.
func kindDraw(kind core.Kind) int {
	return int(kind) - 1
}

// fillRow occupies every column of row y except the listed ones.
func fillRow(b *core.Board, y int, skip ...int) {
	skipped := make(map[int]bool, len(skip))
	for _, x := range skip {
		skipped[x] = true
	}
	for x := range b.Width() {
		if !skipped[x] {
			b.Set(x, y, core.KindI)
		}
	}
}
