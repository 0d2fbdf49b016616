package game

// Board is the playing field size.
type Board struct {
	Width  int
	Height int
}

// Capacity is the number of cells on the board.
func (b Board) Capacity() int {
	return b.Width * b.Height
}

// Position returns the cell at (col,row), or InvalidPosition when the
// coordinates fall outside the board.
func (b Board) Position(col, row int) Position {
	if col < 0 || col >= b.Width || row < 0 || row >= b.Height {
		return InvalidPosition
	}
	return pack(col, row)
}

// InBounds reports whether p is a cell of this board.
func (b Board) InBounds(p Position) bool {
	if !p.Valid() {
		return false
	}
	return p.Column() < b.Width && p.Row() < b.Height
}

// Step returns the neighbour of p in direction d. With wrap disabled a step
// off the edge yields InvalidPosition; with wrap enabled it re-enters on the
// opposite side.
func (b Board) Step(p Position, d Direction, wrap bool) Position {
	if !b.InBounds(p) {
		return InvalidPosition
	}
	dc, dr := d.Delta()
	col, row := p.Column()+dc, p.Row()+dr
	if wrap {
		col = (col + b.Width) % b.Width
		row = (row + b.Height) % b.Height
	}
	return b.Position(col, row)
}

// Random draws a uniformly distributed in-bounds cell.
func (b Board) Random(rng Rand) Position {
	return pack(rng.Intn(b.Width), rng.Intn(b.Height))
}

// RatCornerExcluded is the legacy rat "out of bounds corner" rule, kept
// literally: column within [Width-1, 2] and row within
// [Height-1, 2]. On any board wider and taller than 3 both ranges are empty,
// so the predicate never holds. It is only consulted when the legacy rule is
// switched on.
func (b Board) RatCornerExcluded(p Position) bool {
	if !p.Valid() {
		return false
	}
	col, row := p.Column(), p.Row()
	return col >= b.Width-1 && col <= 2 &&
		row >= b.Height-1 && row <= 2
}

// Cells calls fn for every cell, bottom row first.
func (b Board) Cells(fn func(Position)) {
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			fn(pack(col, row))
		}
	}
}
