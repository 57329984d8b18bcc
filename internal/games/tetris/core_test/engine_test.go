package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

func newEngine(t *testing.T, kinds ...core.Kind) (*core.Engine, *seqSource) {
	t.Helper()
	draws := make([]int, len(kinds))
	for i, k := range kinds {
		draws[i] = kindDraw(k)
	}
	src := newSeqSource(draws...)
	return core.NewEngine(src, core.DefaultOptions()), src
}

func TestNewEngineContract(t *testing.T) {
	assert.Panics(t, func() { core.NewEngine(nil, core.DefaultOptions()) })
	assert.Panics(t, func() {
		core.NewEngine(newSeqSource(), core.Options{Width: 0, Height: 18})
	})

	e, _ := newEngine(t, core.KindT)
	assert.Equal(t, core.StatusNotStarted, e.Status())
	assert.Equal(t, 10, e.Width())
	assert.Equal(t, 18, e.Height())
	active, _, _ := e.Active()
	assert.True(t, active.IsNone())
}

func TestStartSpawnsPieces(t *testing.T) {
	e, src := newEngine(t, core.KindT, core.KindO)

	require.True(t, e.Start())

	active, x, y := e.Active()
	assert.Equal(t, core.KindT, active.Kind())
	assert.Equal(t, 5, x)
	assert.Equal(t, 17, y)
	assert.Equal(t, core.KindO, e.Next().Kind())
	assert.Equal(t, 2, src.calls, "next drawn, then replaced after promotion")
	assert.Equal(t, core.StatusRunning, e.Status())
	assert.Equal(t, 1, e.Level())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 0, e.RowsCleared())
	assert.False(t, e.NeedsNewPiece())
}

func TestStartWhilePausedIsRejected(t *testing.T) {
	e, src := newEngine(t, core.KindO, core.KindI, core.KindT)
	require.True(t, e.Start())
	e.HardDrop()
	e.Tick() // spawn I

	require.True(t, e.TogglePause())
	require.Equal(t, core.StatusPaused, e.Status())

	filled := e.Board().Filled()
	active, x, y := e.Active()
	next := e.Next()
	calls := src.calls

	assert.False(t, e.Start())

	assert.Equal(t, filled, e.Board().Filled())
	a2, x2, y2 := e.Active()
	assert.Equal(t, active, a2)
	assert.Equal(t, x, x2)
	assert.Equal(t, y, y2)
	assert.Equal(t, next, e.Next())
	assert.Equal(t, calls, src.calls)
	assert.Equal(t, core.StatusPaused, e.Status())

	assert.False(t, e.TogglePause())
	assert.True(t, e.Start())
	assert.Equal(t, 0, e.Board().Filled())
}

func TestTogglePauseNotRunning(t *testing.T) {
	e, _ := newEngine(t, core.KindT)

	assert.True(t, e.TogglePause())
	assert.True(t, e.TogglePause())
	assert.False(t, e.Paused())
	assert.Equal(t, core.StatusNotStarted, e.Status())
}

func TestCommandsWithoutActivePiece(t *testing.T) {
	e, _ := newEngine(t, core.KindT)

	assert.False(t, e.MoveHorizontal(1))
	assert.False(t, e.Rotate(true))
	assert.False(t, e.SoftDropOneRow())
	assert.Equal(t, 0, e.HardDrop())
	assert.False(t, e.TryMove(core.NewShape(core.KindNone), 3, 3))
	e.Tick()

	assert.False(t, e.NeedsNewPiece())
	assert.Equal(t, 0, e.Board().Filled())
	assert.Equal(t, core.StatusNotStarted, e.Status())
}

func TestSpawnFailsOnBlockedSpawnRow(t *testing.T) {
	e, _ := newEngine(t, core.KindT, core.KindS)
	require.True(t, e.Start())
	e.TogglePause()
	fillRow(e.Board(), e.Height()-1)

	assert.False(t, e.SpawnPiece())

	assert.Equal(t, core.StatusGameOver, e.Status())
	assert.False(t, e.Running())
	assert.False(t, e.Paused(), "a finished game is not paused")
	active, _, _ := e.Active()
	assert.True(t, active.IsNone())

	// Ticks after game over do nothing.
	e.Tick()
	assert.Equal(t, core.StatusGameOver, e.Status())

	require.True(t, e.Start())
	assert.Equal(t, core.StatusRunning, e.Status())
	assert.Equal(t, 0, e.Board().Filled())
}

func TestMoveHorizontalStopsAtWalls(t *testing.T) {
	e, _ := newEngine(t, core.KindT, core.KindO)
	require.True(t, e.Start())

	for range 10 {
		e.MoveHorizontal(-1)
	}
	_, x, _ := e.Active()
	assert.Equal(t, 1, x, "T reaches one column left of its pivot")
	assert.False(t, e.MoveHorizontal(-1))

	for range 10 {
		e.MoveHorizontal(1)
	}
	_, x, _ = e.Active()
	assert.Equal(t, 8, x)
}

func TestMoveHorizontalBlockedByStack(t *testing.T) {
	e, _ := newEngine(t, core.KindO, core.KindO)
	require.True(t, e.Start())
	e.Board().Set(4, 17, core.KindZ)

	assert.False(t, e.MoveHorizontal(-1))
	_, x, _ := e.Active()
	assert.Equal(t, 5, x)
}

func TestRotateRejectedAtWall(t *testing.T) {
	e, _ := newEngine(t, core.KindI, core.KindO)
	require.True(t, e.Start())
	for range 10 {
		e.MoveHorizontal(-1)
	}
	before, x, _ := e.Active()
	require.Equal(t, 0, x)

	assert.False(t, e.Rotate(false), "counter-clockwise I would stick out of the left wall")
	after, _, _ := e.Active()
	assert.Equal(t, before, after)

	assert.True(t, e.Rotate(true))
	after, _, _ = e.Active()
	assert.Equal(t, before.RotateClockwise(), after)
}

func TestTickTwoPhaseLockAndSpawn(t *testing.T) {
	e, _ := newEngine(t, core.KindO, core.KindT, core.KindS)
	require.True(t, e.Start())

	for range 17 {
		e.Tick()
	}
	_, _, y := e.Active()
	require.Equal(t, 0, y)
	require.Equal(t, 0, e.Board().Filled())

	e.Tick() // cannot move: lock
	assert.True(t, e.NeedsNewPiece())
	active, _, _ := e.Active()
	assert.True(t, active.IsNone())
	assert.Nil(t, e.ActiveCells())
	assert.Equal(t, 4, e.Board().Filled())
	assert.Equal(t, core.KindO, e.Cell(5, 0))
	assert.Equal(t, core.KindO, e.Cell(6, 1))

	e.Tick() // spawn instead of moving
	assert.False(t, e.NeedsNewPiece())
	active, x, y := e.Active()
	assert.Equal(t, core.KindT, active.Kind())
	assert.Equal(t, 5, x)
	assert.Equal(t, 17, y)
	assert.Equal(t, core.KindS, e.Next().Kind())
}

func TestHardDrop(t *testing.T) {
	e, _ := newEngine(t, core.KindO, core.KindT)
	require.True(t, e.Start())

	assert.Equal(t, 17, e.HardDrop())
	assert.True(t, e.NeedsNewPiece())
	assert.Equal(t, core.KindO, e.Cell(5, 0))
	assert.Equal(t, core.KindO, e.Cell(6, 0))
	assert.Equal(t, core.KindO, e.Cell(5, 1))
	assert.Equal(t, core.KindO, e.Cell(6, 1))

	ev := e.LastLock()
	assert.Equal(t, core.LockEvent{Kind: core.KindO, X: 5, Y: 0}, ev)
}

func TestHardDropLandsOnStack(t *testing.T) {
	e, _ := newEngine(t, core.KindI, core.KindT)
	require.True(t, e.Start())
	e.Board().Set(5, 6, core.KindZ)

	e.HardDrop()

	for y := 7; y < 11; y++ {
		assert.Equal(t, core.KindI, e.Cell(5, y))
	}
	assert.Equal(t, 7, e.LastLock().Y)
}

func TestSingleRowClearScoresOne(t *testing.T) {
	e, _ := newEngine(t, core.KindT, core.KindS)
	require.True(t, e.Start())
	b := e.Board()
	fillRow(b, 0, 8, 9)
	b.Set(2, 3, core.KindL)

	require.True(t, e.TryMove(core.NewShape(core.KindO), 8, 0))
	assert.False(t, e.SoftDropOneRow())

	assert.Equal(t, 1, e.RowsCleared())
	assert.Equal(t, 1, e.Score())
	assert.Equal(t, core.LockEvent{Kind: core.KindO, X: 8, Y: 0, Rows: 1, Points: 1}, e.LastLock())

	// upper half of the O drops into row 0
	for x := range 8 {
		assert.True(t, b.IsEmpty(x, 0), "x=%d", x)
	}
	assert.Equal(t, core.KindO, b.Get(8, 0))
	assert.Equal(t, core.KindO, b.Get(9, 0))
	assert.Equal(t, core.KindL, b.Get(2, 2))
	assert.Equal(t, 3, b.Filled())
}

func TestDoubleRowClearScoresFour(t *testing.T) {
	e, _ := newEngine(t, core.KindT, core.KindS)
	require.True(t, e.Start())
	b := e.Board()
	fillRow(b, 0, 8, 9)
	fillRow(b, 1, 8, 9)

	require.True(t, e.TryMove(core.NewShape(core.KindO), 8, 0))
	e.HardDrop()

	assert.Equal(t, 2, e.RowsCleared())
	assert.Equal(t, 4, e.Score())
	assert.Equal(t, 0, b.Filled())
}

func TestLevelProgression(t *testing.T) {
	tests := []struct {
		name         string
		rowsPerLevel int
		clears       int
		wantLevel    int
	}{
		{"one row per level", 1, 3, 4},
		{"two rows per level", 2, 3, 2},
		{"disabled", 0, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := core.DefaultOptions()
			opts.RowsPerLevel = tt.rowsPerLevel
			e := core.NewEngine(newSeqSource(kindDraw(core.KindT)), opts)
			require.True(t, e.Start())

			for range tt.clears {
				e.Board().Clear()
				fillRow(e.Board(), 0, 8, 9)
				require.True(t, e.TryMove(core.NewShape(core.KindO), 8, 0))
				e.HardDrop()
				e.Tick()
			}

			assert.Equal(t, tt.clears, e.RowsCleared())
			assert.Equal(t, tt.wantLevel, e.Level())
		})
	}
}

func TestCountersResetOnRestart(t *testing.T) {
	e, _ := newEngine(t, core.KindT)
	require.True(t, e.Start())
	fillRow(e.Board(), 0, 8, 9)
	require.True(t, e.TryMove(core.NewShape(core.KindO), 8, 0))
	e.HardDrop()
	require.Equal(t, 1, e.Score())

	require.True(t, e.Start())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 0, e.RowsCleared())
	assert.Equal(t, 1, e.Level())
	assert.Equal(t, core.LockEvent{}, e.LastLock())
	assert.Equal(t, 0, e.Board().Filled())
}

func TestGhostY(t *testing.T) {
	e, _ := newEngine(t, core.KindO, core.KindT)
	require.True(t, e.Start())
	assert.Equal(t, 0, e.GhostY())

	e.Board().Set(6, 3, core.KindJ)
	assert.Equal(t, 4, e.GhostY())

	_, _, y := e.Active()
	assert.Equal(t, 17, y, "ghost lookup must not move the piece")
}

func TestActiveCells(t *testing.T) {
	e, _ := newEngine(t, core.KindI, core.KindT)
	require.True(t, e.Start())

	want := []core.Point{{X: 5, Y: 20}, {X: 5, Y: 19}, {X: 5, Y: 18}, {X: 5, Y: 17}}
	assert.Equal(t, want, e.ActiveCells())
}

func TestDeterministicWithSameSeed(t *testing.T) {
	play := func() *core.Engine {
		e := core.NewEngine(rand.New(rand.NewSource(99)), core.DefaultOptions())
		e.Start()
		for i := 0; i < 400 && e.Running(); i++ {
			switch i % 7 {
			case 0:
				e.MoveHorizontal(-1)
			case 2:
				e.Rotate(true)
			case 3:
				e.MoveHorizontal(1)
			case 5:
				if i%3 == 0 {
					e.HardDrop()
				}
			}
			e.Tick()
		}
		return e
	}

	a, b := play(), play()

	assert.Equal(t, a.Status(), b.Status())
	assert.Equal(t, a.Score(), b.Score())
	assert.Equal(t, a.RowsCleared(), b.RowsCleared())
	assert.Equal(t, a.Next(), b.Next())
	for y := range a.Height() {
		for x := range a.Width() {
			require.Equal(t, a.Cell(x, y), b.Cell(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "running", core.StatusRunning.String())
	assert.Equal(t, "game over", core.StatusGameOver.String())
	assert.Equal(t, "unknown", core.Status(9).String())
}
