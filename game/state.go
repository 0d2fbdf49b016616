package game

// State is the complete entity state of one game. The engine owns exactly
// one State; nothing here is safe for concurrent use.
type State struct {
	Board Board
	Snake *Snake
	Food  *FoodTable
	Super *SuperFood
	Rat   *Rat
}

// NewState allocates every store for a board. maxLength caps the snake body
// and foodSlots sizes the food table.
func NewState(board Board, maxLength, foodSlots int) *State {
	st := &State{
		Board: board,
		Snake: NewSnake(maxLength),
		Food:  NewFoodTable(foodSlots),
		Super: &SuperFood{},
		Rat:   &Rat{},
	}
	st.Super.reset()
	st.Rat.pos = InvalidPosition
	return st
}

// Reset clears every store and seeds a two cell snake.
func (st *State) Reset(tail, head Position, dir Direction) {
	st.Snake.Reset(tail, head, dir)
	st.Food.Reset()
	st.Super.reset()
	st.Rat.pos = InvalidPosition
}

func (st *State) IsSnakeAt(p Position) bool {
	return st.Snake.Contains(p)
}

// FoodAt returns the food slot at p.
func (st *State) FoodAt(p Position) (int, bool) {
	return st.Food.At(p)
}

func (st *State) IsSuperFoodAt(p Position) bool {
	return st.Super.At(p)
}

func (st *State) IsRatAt(p Position) bool {
	return p.Valid() && st.Rat.pos == p
}

// Occupant is the entity category claiming a cell.
type Occupant int

const (
	Empty Occupant = iota
	SnakeCell
	FoodCell
	SuperFoodCell
	RatCell
)

func (o Occupant) String() string {
	switch o {
	case SnakeCell:
		return "snake"
	case FoodCell:
		return "food"
	case SuperFoodCell:
		return "super_food"
	case RatCell:
		return "rat"
	}
	return "empty"
}

// OccupantAt returns the first category found at p, snake first.
func (st *State) OccupantAt(p Position) Occupant {
	switch {
	case st.IsSnakeAt(p):
		return SnakeCell
	case st.IsSuperFoodAt(p):
		return SuperFoodCell
	case st.IsRatAt(p):
		return RatCell
	}
	if _, ok := st.Food.At(p); ok {
		return FoodCell
	}
	return Empty
}

// Occupied reports whether any entity claims p.
func (st *State) Occupied(p Position) bool {
	return st.OccupantAt(p) != Empty
}

// Occupants counts how many categories claim p. A consistent state never
// reports more than one.
func (st *State) Occupants(p Position) int {
	n := 0
	if st.IsSnakeAt(p) {
		n++
	}
	if _, ok := st.Food.At(p); ok {
		n++
	}
	if st.IsSuperFoodAt(p) {
		n++
	}
	if st.IsRatAt(p) {
		n++
	}
	return n
}
