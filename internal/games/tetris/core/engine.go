package core

import (
	"io"

	"github.com/charmbracelet/log"
)

// Status is the coarse state of an Engine.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Options configures a new Engine.
type Options struct {
	Width  int // Board columns
	Height int // Board rows

	// RowsPerLevel is the number of cleared rows per level step.
	// Zero or negative keeps the level at 1 for the whole game.
	RowsPerLevel int

	// Logger receives debug events. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns a 10x18 board with a level step every 10 rows.
func DefaultOptions() Options {
	return Options{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		RowsPerLevel: 10,
	}
}

// LockEvent records the outcome of the most recent lock.
type LockEvent struct {
	Kind   Kind
	X, Y   int // Pivot position when the piece locked
	Rows   int // Rows cleared by this lock
	Points int // Score awarded by this lock
}

// Engine owns the board, the falling and queued pieces, the counters and
// the state machine. Every change to the active piece goes through TryMove.
//
// An Engine has no goroutines or timers of its own and is not safe for
// concurrent use; the driver serializes calls and invokes Tick at its own
// cadence.
type Engine struct {
	board  *Board
	rng    Source
	logger *log.Logger

	active  Shape
	activeX int
	activeY int
	next    Shape

	needsNewPiece bool
	paused        bool
	running       bool
	started       bool // Start has succeeded at least once

	rowsCleared  int
	score        int
	level        int
	rowsPerLevel int

	lastLock LockEvent
}

// NewEngine creates an engine in the NotStarted state.
// It panics on a nil source or non-positive board dimensions.
func NewEngine(src Source, opts Options) *Engine {
	if src == nil {
		panic("tetris: nil random source")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		board:        NewBoard(opts.Width, opts.Height),
		rng:          src,
		logger:       logger,
		active:       NewShape(KindNone),
		next:         NewShape(KindNone),
		rowsPerLevel: opts.RowsPerLevel,
	}
}

// Start clears the board, resets the counters and spawns the first piece.
// It fails without touching any state while the game is paused.
func (e *Engine) Start() bool {
	if e.paused {
		return false
	}
	e.board.Clear()
	e.needsNewPiece = false
	e.rowsCleared = 0
	e.score = 0
	e.level = 1
	e.lastLock = LockEvent{}
	e.running = true
	e.started = true
	e.next = RandomShape(e.rng)
	e.SpawnPiece()
	e.logger.Debug("game started", "active", e.active.Kind(), "next", e.next.Kind())
	return true
}

// SpawnPiece promotes the queued piece to the top middle of the board and
// queues a new one. If the piece does not fit there the game is over and
// SpawnPiece returns false. This is the only way a game ends.
func (e *Engine) SpawnPiece() bool {
	e.needsNewPiece = false
	if e.TryMove(e.next, e.board.Width()/2, e.board.Height()-1) {
		e.next = RandomShape(e.rng)
		return true
	}
	e.active = NewShape(KindNone)
	e.running = false
	e.paused = false
	e.logger.Debug("game over", "score", e.score, "rows", e.rowsCleared, "level", e.level)
	return false
}

// TryMove makes shape the active piece with its pivot at (x, y) if it fits.
// On failure nothing changes. The empty sentinel is never placed.
func (e *Engine) TryMove(shape Shape, x, y int) bool {
	if shape.IsNone() || !e.board.CanPlace(shape, x, y) {
		return false
	}
	e.active = shape
	e.activeX = x
	e.activeY = y
	return true
}

// MoveHorizontal shifts the active piece by delta columns.
func (e *Engine) MoveHorizontal(delta int) bool {
	return e.TryMove(e.active, e.activeX+delta, e.activeY)
}

// Rotate turns the active piece in place. A rotation that collides is
// rejected and the piece keeps its orientation; there are no wall kicks.
func (e *Engine) Rotate(clockwise bool) bool {
	if e.active.IsNone() {
		return false
	}
	return e.TryMove(e.active.Rotate(clockwise), e.activeX, e.activeY)
}

// SoftDropOneRow moves the active piece down one row. When the piece
// cannot move down it locks and SoftDropOneRow returns false.
func (e *Engine) SoftDropOneRow() bool {
	if e.active.IsNone() {
		return false
	}
	if e.TryMove(e.active, e.activeX, e.activeY-1) {
		return true
	}
	e.onPieceLocked()
	return false
}

// HardDrop drops the active piece to the lowest reachable row and locks it.
// Returns the number of rows the piece fell.
func (e *Engine) HardDrop() int {
	if e.active.IsNone() {
		return 0
	}
	rows := 0
	for e.SoftDropOneRow() {
		rows++
	}
	return rows
}

// onPieceLocked merges the active piece into the board, clears full rows
// and flags that a new piece is due on the next tick.
func (e *Engine) onPieceLocked() {
	kind := e.active.Kind()
	e.board.Lock(e.active, e.activeX, e.activeY)
	e.needsNewPiece = true
	e.active = NewShape(KindNone)

	rows := e.board.ClearFullRows()
	points := rows * rows
	e.rowsCleared += rows
	e.score += points
	if e.rowsPerLevel > 0 {
		e.level = 1 + e.rowsCleared/e.rowsPerLevel
	}
	e.lastLock = LockEvent{Kind: kind, X: e.activeX, Y: e.activeY, Rows: rows, Points: points}

	e.logger.Debug("piece locked", "kind", kind, "x", e.activeX, "y", e.activeY, "rows", rows)
}

// Tick advances the game by one gravity step. Right after a lock it spawns
// the next piece instead of moving, so a lock and the following spawn always
// happen on separate ticks.
func (e *Engine) Tick() {
	if !e.running {
		return
	}
	if e.needsNewPiece {
		e.SpawnPiece()
		return
	}
	e.SoftDropOneRow()
}

// TogglePause flips the pause flag and returns the new value.
// When the game is not running it does nothing and returns true.
func (e *Engine) TogglePause() bool {
	if !e.running {
		return true
	}
	e.paused = !e.paused
	e.logger.Debug("pause toggled", "paused", e.paused)
	return e.paused
}

// Status returns the coarse game status.
func (e *Engine) Status() Status {
	switch {
	case e.running && e.paused:
		return StatusPaused
	case e.running:
		return StatusRunning
	case e.started:
		return StatusGameOver
	default:
		return StatusNotStarted
	}
}

// Board returns the underlying board. Callers must not mutate it.
func (e *Engine) Board() *Board {
	return e.board
}

// Width returns the board width.
func (e *Engine) Width() int {
	return e.board.Width()
}

// Height returns the board height.
func (e *Engine) Height() int {
	return e.board.Height()
}

// Cell returns the locked kind at (x, y).
func (e *Engine) Cell(x, y int) Kind {
	return e.board.Get(x, y)
}

// Active returns the falling piece and its pivot position.
// The shape is KindNone when nothing is falling.
func (e *Engine) Active() (Shape, int, int) {
	return e.active, e.activeX, e.activeY
}

// ActiveCells returns the absolute board coordinates of the falling piece,
// including cells above the top edge. Nil when nothing is falling.
func (e *Engine) ActiveCells() []Point {
	if e.active.IsNone() {
		return nil
	}
	cells := make([]Point, 0, 4)
	for _, c := range e.active.cells {
		cells = append(cells, Point{X: e.activeX + c.X, Y: e.activeY + c.Y})
	}
	return cells
}

// GhostY returns the pivot row where the active piece would land if hard
// dropped now. Returns the current row when nothing is falling.
func (e *Engine) GhostY() int {
	y := e.activeY
	if e.active.IsNone() {
		return y
	}
	for e.board.CanPlace(e.active, e.activeX, y-1) {
		y--
	}
	return y
}

// Next returns the queued piece.
func (e *Engine) Next() Shape {
	return e.next
}

// NeedsNewPiece reports whether a piece has locked and the next one has not
// spawned yet.
func (e *Engine) NeedsNewPiece() bool {
	return e.needsNewPiece
}

// Paused reports the pause flag.
func (e *Engine) Paused() bool {
	return e.paused
}

// Running reports whether a game is in progress (paused or not).
func (e *Engine) Running() bool {
	return e.running
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Level returns the current level. Zero before the first Start.
func (e *Engine) Level() int {
	return e.level
}

// RowsCleared returns the number of rows cleared this game.
func (e *Engine) RowsCleared() int {
	return e.rowsCleared
}

// LastLock returns the most recent lock event of this game.
func (e *Engine) LastLock() LockEvent {
	return e.lastLock
}
