package render

import (
	"strings"

	"github.com/brensch/snekmatrix/game"
)

// Frame is an in-memory display: a colour per board cell.
type Frame struct {
	board  game.Board
	cells  []Colour
	writes int
}

func NewFrame(board game.Board) *Frame {
	return &Frame{
		board: board,
		cells: make([]Colour, board.Capacity()),
	}
}

func (f *Frame) Board() game.Board {
	return f.board
}

func (f *Frame) index(p game.Position) (int, bool) {
	if !f.board.InBounds(p) {
		return 0, false
	}
	return p.Row()*f.board.Width + p.Column(), true
}

// SetCellColour implements Sink. Cells outside the board are ignored.
func (f *Frame) SetCellColour(p game.Position, c Colour) {
	i, ok := f.index(p)
	if !ok {
		return
	}
	f.cells[i] = c
	f.writes++
}

// Clear implements Clearer.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = Background
	}
}

// At returns the colour of p, Background when out of bounds.
func (f *Frame) At(p game.Position) Colour {
	i, ok := f.index(p)
	if !ok {
		return Background
	}
	return f.cells[i]
}

// Writes is the number of in-bounds paints received.
func (f *Frame) Writes() int {
	return f.writes
}

// Count returns how many cells currently show c.
func (f *Frame) Count(c Colour) int {
	n := 0
	for _, cc := range f.cells {
		if cc == c {
			n++
		}
	}
	return n
}

// String renders the frame top row first, one rune per cell.
func (f *Frame) String() string {
	var sb strings.Builder
	for row := f.board.Height - 1; row >= 0; row-- {
		for col := 0; col < f.board.Width; col++ {
			sb.WriteRune(f.cells[row*f.board.Width+col].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Paint is one recorded sink call.
type Paint struct {
	Pos    game.Position
	Colour Colour
}

// Recorder remembers every paint and forwards it to Next when set.
type Recorder struct {
	Next   Sink
	Paints []Paint
}

func (r *Recorder) SetCellColour(p game.Position, c Colour) {
	r.Paints = append(r.Paints, Paint{Pos: p, Colour: c})
	if r.Next != nil {
		r.Next.SetCellColour(p, c)
	}
}

// Clear forwards to Next when it is a Clearer.
func (r *Recorder) Clear() {
	if c, ok := r.Next.(Clearer); ok {
		c.Clear()
	}
}

// Take returns the recorded paints and forgets them.
func (r *Recorder) Take() []Paint {
	out := r.Paints
	r.Paints = nil
	return out
}
