package game

// DefaultFoodSlots is the number of food items kept on the board.
const DefaultFoodSlots = 3

// FoodTable holds a fixed number of food slots. An empty slot holds
// InvalidPosition.
type FoodTable struct {
	slots []Position
}

func NewFoodTable(slots int) *FoodTable {
	f := &FoodTable{slots: make([]Position, slots)}
	f.Reset()
	return f
}

// Reset empties every slot.
func (f *FoodTable) Reset() {
	for i := range f.slots {
		f.slots[i] = InvalidPosition
	}
}

// Slots is the table capacity.
func (f *FoodTable) Slots() int {
	return len(f.slots)
}

// At returns the slot holding food at p.
func (f *FoodTable) At(p Position) (int, bool) {
	if !p.Valid() {
		return -1, false
	}
	for i, fp := range f.slots {
		if fp == p {
			return i, true
		}
	}
	return -1, false
}

// Get returns the food position in slot, or InvalidPosition.
func (f *FoodTable) Get(slot int) Position {
	if slot < 0 || slot >= len(f.slots) {
		return InvalidPosition
	}
	return f.slots[slot]
}

// Set stores p in slot. Out of range slots are ignored.
func (f *FoodTable) Set(slot int, p Position) {
	if slot < 0 || slot >= len(f.slots) {
		return
	}
	f.slots[slot] = p
}

// Remove clears slot and returns what it held.
func (f *FoodTable) Remove(slot int) Position {
	p := f.Get(slot)
	f.Set(slot, InvalidPosition)
	return p
}

// FreeSlot returns the first empty slot, or -1.
func (f *FoodTable) FreeSlot() int {
	for i, fp := range f.slots {
		if !fp.Valid() {
			return i
		}
	}
	return -1
}

// Count is the number of placed food items.
func (f *FoodTable) Count() int {
	n := 0
	for _, fp := range f.slots {
		if fp.Valid() {
			n++
		}
	}
	return n
}

// Positions returns the placed food items in slot order.
func (f *FoodTable) Positions() []Position {
	out := make([]Position, 0, len(f.slots))
	for _, fp := range f.slots {
		if fp.Valid() {
			out = append(out, fp)
		}
	}
	return out
}

// PlaceFood fills the first empty slot with a random free cell. It returns
// the slot and the new position; the position is InvalidPosition when
// sampling gave up, and the slot is -1 when the table is already full.
func (st *State) PlaceFood(rng Rand) (int, Position) {
	slot := st.Food.FreeSlot()
	if slot < 0 {
		return -1, InvalidPosition
	}
	p := st.Board.PlaceRandom(rng, PlacementAttempts, func(p Position) bool {
		if st.IsSnakeAt(p) || st.IsSuperFoodAt(p) || st.IsRatAt(p) {
			return true
		}
		_, ok := st.Food.At(p)
		return ok
	})
	if p.Valid() {
		st.Food.Set(slot, p)
	}
	return slot, p
}
