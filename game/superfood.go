package game

// SuperFood is the single timed bonus item.
type SuperFood struct {
	pos    Position
	exists bool
}

func (sf *SuperFood) Exists() bool {
	return sf.exists
}

// Position is the last placed cell. It is only meaningful while Exists.
func (sf *SuperFood) Position() Position {
	return sf.pos
}

// At reports whether an existing super-food sits at p.
func (sf *SuperFood) At(p Position) bool {
	return sf.exists && sf.pos == p
}

// Remove clears the existence flag and returns the cell it occupied.
func (sf *SuperFood) Remove() Position {
	if !sf.exists {
		return InvalidPosition
	}
	sf.exists = false
	return sf.pos
}

func (sf *SuperFood) reset() {
	sf.pos = InvalidPosition
	sf.exists = false
}

// PlaceSuperFood puts the super-food on a random free cell. An existing
// super-food stays where it is. InvalidPosition means sampling gave up and
// nothing exists.
func (st *State) PlaceSuperFood(rng Rand) Position {
	if st.Super.exists {
		return st.Super.pos
	}
	p := st.Board.PlaceRandom(rng, PlacementAttempts, func(p Position) bool {
		if st.IsSnakeAt(p) || st.IsRatAt(p) {
			return true
		}
		_, ok := st.Food.At(p)
		return ok
	})
	if p.Valid() {
		st.Super.pos = p
		st.Super.exists = true
	}
	return p
}
