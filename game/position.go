// Package game defines the board, entity stores and occupancy rules for a
// single-player snake game.
//
// Everything here is synchronous and allocation-free after construction:
// the snake body lives in a preallocated ring and every spawn uses bounded
// rejection sampling, so a tick always completes in bounded time even when
// the board is nearly full.
package game

import "fmt"

// MaxDimension is the largest board width or height. Columns and rows are
// packed into one byte each, so 0xFF is never a valid index.
const MaxDimension = 255

// Position is a board cell encoded as column<<8 | row.
// Coordinates follow the LED matrix convention: (0,0) is bottom-left.
type Position uint16

// InvalidPosition represents "no such position". It can never equal a
// valid encoding because column 255 is outside every board.
const InvalidPosition Position = 0xFFFF

// pack builds a Position without bounds checks.
func pack(col, row int) Position {
	return Position(uint16(col)<<8 | uint16(row))
}

func (p Position) Column() int {
	return int(p >> 8)
}

func (p Position) Row() int {
	return int(p & 0xFF)
}

// Valid reports whether p is not the invalid sentinel. It says nothing about
// a particular board; use Board.InBounds for that.
func (p Position) Valid() bool {
	return p != InvalidPosition
}

func (p Position) String() string {
	if !p.Valid() {
		return "(invalid)"
	}
	return fmt.Sprintf("(%d,%d)", p.Column(), p.Row())
}

// Direction is one of the four compass moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in value order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the column and row offsets of a single step.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}
