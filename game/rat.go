package game

// Rat is the wandering edible. It has no existence flag: once placed it is
// always on the board, except after a failed re-placement on a crowded
// board, when Position is InvalidPosition until the next placement.
type Rat struct {
	pos Position
}

func (r *Rat) Position() Position {
	return r.pos
}

// Set moves the rat without any checks.
func (r *Rat) Set(p Position) {
	r.pos = p
}

// PlaceRat puts the rat on a random cell free of snake, food and
// super-food. On failure the rat is removed from the board.
func (st *State) PlaceRat(rng Rand) Position {
	st.Rat.pos = st.Board.PlaceRandom(rng, PlacementAttempts, st.ratBlocked)
	return st.Rat.pos
}

// StepRat moves the rat one cell in a random direction. A step off the edge
// bounces to the opposite neighbour. Candidates on the snake, food or
// super-food are redrawn up to PlacementAttempts times; if none is free the
// rat stays put. legacyCorner additionally applies Board.RatCornerExcluded.
func (st *State) StepRat(rng Rand, legacyCorner bool) Position {
	from := st.Rat.pos
	if !st.Board.InBounds(from) {
		return from
	}
	draw := func() Position {
		d := Directions[rng.Intn(len(Directions))]
		p := st.Board.Step(from, d, false)
		if !p.Valid() {
			p = st.Board.Step(from, d.Opposite(), false)
		}
		return p
	}
	excluded := func(p Position) bool {
		if !st.Board.InBounds(p) || st.ratBlocked(p) {
			return true
		}
		return legacyCorner && st.Board.RatCornerExcluded(p)
	}
	if p := Place(PlacementAttempts, draw, excluded); p.Valid() {
		st.Rat.pos = p
	}
	return st.Rat.pos
}

func (st *State) ratBlocked(p Position) bool {
	if st.IsSnakeAt(p) || st.IsSuperFoodAt(p) {
		return true
	}
	_, ok := st.Food.At(p)
	return ok
}
