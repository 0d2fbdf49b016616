package game

// PlacementAttempts is the number of candidates drawn before a spawn gives
// up. The board may legitimately be too full to find a free cell.
const PlacementAttempts = 100

// Rand is the random source used for spawning and rat movement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Place draws up to attempts candidates from draw and returns the first one
// that excluded rejects as free. It returns InvalidPosition when every
// candidate was rejected, so callers must treat "nothing placed" as a
// normal outcome.
func Place(attempts int, draw func() Position, excluded func(Position) bool) Position {
	for i := 0; i < attempts; i++ {
		p := draw()
		if !excluded(p) {
			return p
		}
	}
	return InvalidPosition
}

// PlaceRandom is Place with candidates drawn uniformly from the board.
func (b Board) PlaceRandom(rng Rand, attempts int, excluded func(Position) bool) Position {
	return Place(attempts, func() Position { return b.Random(rng) }, excluded)
}
