// Package ledmatrix drives the game on a full-screen tcell display laid out
// like the LED matrix: each board cell is a solid block of colour, the
// bottom row at the bottom of the screen.
package ledmatrix

import (
	"github.com/gdamore/tcell/v2"

	"github.com/brensch/snekmatrix/game"
	"github.com/brensch/snekmatrix/render"
)

// cellWidth is the number of terminal columns per board cell.
const cellWidth = 2

// Screen is a render.Sink that paints straight onto a tcell screen. Paints
// are buffered by tcell until Show.
type Screen struct {
	screen tcell.Screen
	board  game.Board
	styles map[render.Colour]tcell.Style

	originX, originY int
}

func NewScreen(screen tcell.Screen, board game.Board) *Screen {
	s := &Screen{
		screen: screen,
		board:  board,
		styles: make(map[render.Colour]tcell.Style),
	}
	for _, c := range []render.Colour{render.Background, render.SnakeHead, render.SnakeBody,
		render.FoodColour, render.SuperFoodColour, render.RatColour} {
		r, g, b := c.RGB()
		s.styles[c] = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	s.Layout()
	return s
}

// Layout centres the board on the current screen size. Call it after a
// resize, then repaint.
func (s *Screen) Layout() {
	w, h := s.screen.Size()
	s.originX = max(0, (w-s.board.Width*cellWidth)/2)
	// One line is kept for the status bar.
	s.originY = max(0, (h-1-s.board.Height)/2)
}

// cell maps a board position to the terminal column and line of its left
// half.
func (s *Screen) cell(p game.Position) (x, y int) {
	return s.originX + p.Column()*cellWidth, s.originY + (s.board.Height - 1 - p.Row())
}

func (s *Screen) SetCellColour(p game.Position, c render.Colour) {
	if !s.board.InBounds(p) {
		return
	}
	style, ok := s.styles[c]
	if !ok {
		style = s.styles[render.Background]
	}
	x, y := s.cell(p)
	for i := 0; i < cellWidth; i++ {
		s.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// Clear blanks the whole screen, including the status bar.
func (s *Screen) Clear() {
	s.screen.Clear()
	s.board.Cells(func(p game.Position) {
		s.SetCellColour(p, render.Background)
	})
}

// Status writes text on the line below the board.
func (s *Screen) Status(text string, style tcell.Style) {
	w, _ := s.screen.Size()
	y := s.originY + s.board.Height
	x := s.originX
	for _, r := range text {
		if x >= w {
			break
		}
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

func (s *Screen) Show() {
	s.screen.Show()
}
