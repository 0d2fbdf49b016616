package game

// MoveResult is the outcome of advancing the snake head.
type MoveResult int

const (
	// Blocked means the move left the board or hit the body. The game is over.
	Blocked MoveResult = iota
	MoveOK
	AteFood
	AteSuperFood
	// AteFoodCantGrow is reported when something edible was eaten while the
	// body is already at its maximum length. The tail still has to advance.
	AteFoodCantGrow
	AteRat
)

// Ate reports whether the move consumed an entity.
func (r MoveResult) Ate() bool {
	switch r {
	case AteFood, AteSuperFood, AteFoodCantGrow, AteRat:
		return true
	}
	return false
}

// AdvancesTail reports whether the caller must follow up with AdvanceTail.
func (r MoveResult) AdvancesTail() bool {
	return r == MoveOK || r == AteFoodCantGrow
}

func (r MoveResult) String() string {
	switch r {
	case Blocked:
		return "blocked"
	case MoveOK:
		return "move"
	case AteFood:
		return "ate_food"
	case AteSuperFood:
		return "ate_super_food"
	case AteFoodCantGrow:
		return "ate_food_cant_grow"
	case AteRat:
		return "ate_rat"
	}
	return "unknown"
}

// AdvanceHead moves the head one cell in the pending direction.
//
// Out-of-bounds (with wrap off) and body collisions are checked first and
// return Blocked without touching the body. The current tail cell does not
// count as a collision because it vacates on a plain move. Only a legal
// candidate is classified against food, super-food and the rat.
func (st *State) AdvanceHead(wrap bool) MoveResult {
	s := st.Snake
	candidate := st.Board.Step(s.Head(), s.pending, wrap)
	if !candidate.Valid() {
		return Blocked
	}
	if s.collides(candidate) {
		return Blocked
	}

	result := MoveOK
	switch {
	case st.Super.At(candidate):
		result = AteSuperFood
	case st.IsRatAt(candidate):
		result = AteRat
	default:
		if _, ok := st.Food.At(candidate); ok {
			result = AteFood
		}
	}
	if result != MoveOK && s.Full() {
		result = AteFoodCantGrow
	}

	s.dir = s.pending
	s.pushHead(candidate)
	return result
}
