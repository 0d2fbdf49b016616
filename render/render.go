// Package render defines the cell colour sink the engine paints through,
// plus a frame buffer implementation shared by the front-ends.
package render

import (
	"fmt"

	"github.com/brensch/snekmatrix/game"
)

// Colour is one of the display's pixel colours.
type Colour uint8

const (
	Black Colour = iota
	Red
	Green
	LightYellow
	Orange
	LightGreen
)

// Game palette.
const (
	Background      = Black
	SnakeHead       = Red
	SnakeBody       = Green
	FoodColour      = LightYellow
	SuperFoodColour = Orange
	RatColour       = LightGreen
)

// RGB returns the 8-bit channels used by true colour terminals.
func (c Colour) RGB() (r, g, b uint8) {
	switch c {
	case Red:
		return 0xE0, 0x20, 0x20
	case Green:
		return 0x20, 0xC0, 0x20
	case LightYellow:
		return 0xF0, 0xE6, 0x60
	case Orange:
		return 0xFF, 0x8C, 0x00
	case LightGreen:
		return 0x90, 0xEE, 0x90
	}
	return 0, 0, 0
}

// Hex returns the colour as #rrggbb.
func (c Colour) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Rune is the single character used in ASCII dumps.
func (c Colour) Rune() rune {
	switch c {
	case SnakeHead:
		return 'H'
	case SnakeBody:
		return 's'
	case FoodColour:
		return '*'
	case SuperFoodColour:
		return '$'
	case RatColour:
		return 'r'
	}
	return '.'
}

func (c Colour) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	case LightYellow:
		return "light_yellow"
	case Orange:
		return "orange"
	case LightGreen:
		return "light_green"
	}
	return fmt.Sprintf("colour(%d)", uint8(c))
}

// Sink receives one call per changed cell.
type Sink interface {
	SetCellColour(p game.Position, c Colour)
}

// Clearer is implemented by sinks that can blank the whole display at once.
type Clearer interface {
	Clear()
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(p game.Position, c Colour)

func (f SinkFunc) SetCellColour(p game.Position, c Colour) {
	f(p, c)
}

// Discard ignores every paint.
var Discard Sink = SinkFunc(func(game.Position, Colour) {})
