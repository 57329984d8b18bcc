// Package core implements the falling-block engine: tetromino shapes and
// rotation, the board grid, placement checks, locking, row clearing and the
// game state machine. It knows nothing about terminals, timers or keys; a
// driver calls into Engine and renders what the accessors report.
package core

import "fmt"

// Kind identifies one of the seven one-sided tetrominoes.
// KindNone marks an empty board cell or the absence of an active piece.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// kindCount is the number of playable kinds (excluding KindNone).
const kindCount = 7

// Kinds returns the playable kinds in enumeration order.
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}

// Valid reports whether k is part of the enumeration, KindNone included.
func (k Kind) Valid() bool {
	return k <= KindZ
}

// String returns the tetromino letter, or "" for KindNone.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return ""
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
