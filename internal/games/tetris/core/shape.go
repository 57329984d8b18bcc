package core

import "fmt"

// Point is an integer cell offset or board coordinate. Y grows upward.
type Point struct {
	X, Y int
}

// Source is the random draw the engine consumes when it needs a new piece.
// *math/rand.Rand satisfies it; the engine never seeds it.
type Source interface {
	Intn(n int) int
}

// templates holds the canonical offsets for every kind. The x axis is the
// bottom edge of each piece, so the lowest offset row is y=0.
var templates = [...][4]Point{
	KindNone: {{0, 0}, {0, 0}, {0, 0}, {0, 0}},
	KindI:    {{0, 3}, {0, 2}, {0, 1}, {0, 0}},
	KindJ:    {{-1, 0}, {0, 0}, {0, 1}, {0, 2}},
	KindL:    {{1, 0}, {0, 0}, {0, 1}, {0, 2}},
	KindO:    {{0, 1}, {1, 1}, {0, 0}, {1, 0}},
	KindS:    {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	KindT:    {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	KindZ:    {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
}

// Shape is a tetromino kind plus the four cell offsets around its pivot.
// The offsets live in a value array, so copies of a Shape never share
// storage with each other or with the canonical templates.
type Shape struct {
	kind  Kind
	cells [4]Point
}

// NewShape returns the canonical shape for kind.
// It panics if kind is outside the enumeration.
func NewShape(kind Kind) Shape {
	if !kind.Valid() {
		panic(fmt.Sprintf("tetris: invalid tetromino kind %d", uint8(kind)))
	}
	return Shape{kind: kind, cells: templates[kind]}
}

// RandomShape returns the canonical shape of a uniformly chosen playable
// kind. It consumes exactly one draw from src.
func RandomShape(src Source) Shape {
	return NewShape(Kind(src.Intn(kindCount) + 1))
}

// Kind returns the tetromino kind.
func (s Shape) Kind() Kind {
	return s.kind
}

// IsNone reports whether s is the empty sentinel.
func (s Shape) IsNone() bool {
	return s.kind == KindNone
}

// Cells returns a copy of the four offsets.
func (s Shape) Cells() [4]Point {
	return s.cells
}

// RotateClockwise maps every offset (x, y) to (y, -x).
// The O piece is returned unchanged.
func (s Shape) RotateClockwise() Shape {
	if s.kind == KindO {
		return s
	}
	r := Shape{kind: s.kind}
	for i, c := range s.cells {
		r.cells[i] = Point{X: c.Y, Y: -c.X}
	}
	return r
}

// RotateCounterClockwise maps every offset (x, y) to (-y, x).
// The O piece is returned unchanged.
func (s Shape) RotateCounterClockwise() Shape {
	if s.kind == KindO {
		return s
	}
	r := Shape{kind: s.kind}
	for i, c := range s.cells {
		r.cells[i] = Point{X: -c.Y, Y: c.X}
	}
	return r
}

// Rotate rotates clockwise or counter-clockwise.
func (s Shape) Rotate(clockwise bool) Shape {
	if clockwise {
		return s.RotateClockwise()
	}
	return s.RotateCounterClockwise()
}

// MinX returns the smallest x offset.
func (s Shape) MinX() int {
	m := s.cells[0].X
	for _, c := range s.cells[1:] {
		m = min(m, c.X)
	}
	return m
}

// MaxX returns the largest x offset.
func (s Shape) MaxX() int {
	m := s.cells[0].X
	for _, c := range s.cells[1:] {
		m = max(m, c.X)
	}
	return m
}

// MinY returns the smallest y offset.
func (s Shape) MinY() int {
	m := s.cells[0].Y
	for _, c := range s.cells[1:] {
		m = min(m, c.Y)
	}
	return m
}

// MaxY returns the largest y offset.
func (s Shape) MaxY() int {
	m := s.cells[0].Y
	for _, c := range s.cells[1:] {
		m = max(m, c.Y)
	}
	return m
}
