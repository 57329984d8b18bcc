package core

import "fmt"

// Default board dimensions (Game Boy playfield).
const (
	DefaultWidth  = 10
	DefaultHeight = 18
)

// Board is a fixed-size grid of placed cells.
// Cells are stored row-major: index = y*W + x, with row 0 at the bottom.
type Board struct {
	w     int
	h     int
	cells []Kind
}

// NewBoard creates an empty board. It panics on non-positive dimensions.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}
	return &Board{
		w:     width,
		h:     height,
		cells: make([]Kind, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

// index converts a coordinate to a flat array index.
func (b *Board) index(x, y int) int {
	return y*b.w + x
}

// InBounds reports whether (x, y) addresses a board cell.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

// Get returns the kind stored at (x, y).
// Returns KindNone for out-of-bounds coordinates.
func (b *Board) Get(x, y int) Kind {
	if !b.InBounds(x, y) {
		return KindNone
	}
	return b.cells[b.index(x, y)]
}

// Set stores kind at (x, y). Out-of-bounds coordinates are ignored.
func (b *Board) Set(x, y int, kind Kind) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = kind
}

// IsEmpty reports whether (x, y) is on the board and holds no block.
func (b *Board) IsEmpty(x, y int) bool {
	return b.InBounds(x, y) && b.cells[b.index(x, y)] == KindNone
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = KindNone
	}
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, k := range b.cells {
		if k != KindNone {
			n++
		}
	}
	return n
}

// RowFull reports whether every column of row y is occupied.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.h {
		return false
	}
	row := b.cells[b.index(0, y) : b.index(0, y)+b.w]
	for _, k := range row {
		if k == KindNone {
			return false
		}
	}
	return true
}

// CanPlace reports whether shape fits with its pivot at (ox, oy).
//
// Every cell must satisfy 0 <= x < W and y >= 0. Cells at y >= H stick out
// above the board: they skip the occupancy check but still obey the
// horizontal bound. A shape with no cell below the top edge is rejected.
func (b *Board) CanPlace(shape Shape, ox, oy int) bool {
	onBoard := 0
	for _, c := range shape.cells {
		x, y := ox+c.X, oy+c.Y
		if x < 0 || x >= b.w || y < 0 {
			return false
		}
		if y >= b.h {
			continue
		}
		if b.cells[b.index(x, y)] != KindNone {
			return false
		}
		onBoard++
	}
	return onBoard > 0
}

// Lock writes shape's kind into the board with its pivot at (ox, oy).
// Cells above the top edge are dropped. Placement is not re-validated;
// callers check CanPlace first.
func (b *Board) Lock(shape Shape, ox, oy int) {
	for _, c := range shape.cells {
		// Set ignores anything off the board.
		b.Set(ox+c.X, oy+c.Y, shape.kind)
	}
}

// ClearFullRows removes every full row, compacts the remaining rows downward
// in their original order and refills the top with empty rows.
// Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	dst := 0
	for src := 0; src < b.h; src++ {
		if b.RowFull(src) {
			continue
		}
		if dst != src {
			copy(b.cells[b.index(0, dst):b.index(0, dst)+b.w], b.cells[b.index(0, src):b.index(0, src)+b.w])
		}
		dst++
	}
	removed := b.h - dst
	for i := b.index(0, dst); i < len(b.cells); i++ {
		b.cells[i] = KindNone
	}
	return removed
}
