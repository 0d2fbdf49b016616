package selfplay

import (
	"github.com/brensch/snekmatrix/game"
)

// Policy picks the direction for the snake's next move.
type Policy interface {
	Choose(st *game.State, wrap bool, rng game.Rand) game.Direction
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(st *game.State, wrap bool, rng game.Rand) game.Direction

func (f PolicyFunc) Choose(st *game.State, wrap bool, rng game.Rand) game.Direction {
	return f(st, wrap, rng)
}

// Greedy heads for the nearest edible cell but refuses moves into pockets
// too small to hold the body. Ties are broken at random.
type Greedy struct{}

const trapped = -1 << 20

func (Greedy) Choose(st *game.State, wrap bool, rng game.Rand) game.Direction {
	head := st.Snake.Head()
	best := st.Snake.Direction()
	bestScore := trapped * 2

	offset := rng.Intn(len(game.Directions))
	for i := range game.Directions {
		d := game.Directions[(offset+i)%len(game.Directions)]
		if st.Snake.Len() > 1 && d == st.Snake.Direction().Opposite() {
			continue
		}
		next := st.Board.Step(head, d, wrap)
		if !safe(st, next) {
			continue
		}

		need := st.Snake.Len() + 1
		score := -nearestEdible(st, next, wrap)
		if space := reachable(st, next, wrap, need); space < need {
			score = trapped + space
		}
		if score > bestScore {
			best, bestScore = d, score
		}
	}
	return best
}

// Random wanders without hitting walls or its own body when it can avoid it.
var Random = PolicyFunc(func(st *game.State, wrap bool, rng game.Rand) game.Direction {
	var options []game.Direction
	for _, d := range game.Directions {
		if st.Snake.Len() > 1 && d == st.Snake.Direction().Opposite() {
			continue
		}
		if safe(st, st.Board.Step(st.Snake.Head(), d, wrap)) {
			options = append(options, d)
		}
	}
	if len(options) == 0 {
		return st.Snake.Direction()
	}
	return options[rng.Intn(len(options))]
})

// safe reports whether the head may move onto p this turn. The tail cell is
// free because it moves away unless the snake is eating, and it never sits
// under anything edible.
func safe(st *game.State, p game.Position) bool {
	if !p.Valid() {
		return false
	}
	return !st.IsSnakeAt(p) || p == st.Snake.Tail()
}

func index(b game.Board, p game.Position) int {
	return p.Row()*b.Width + p.Column()
}

// reachable counts the free cells connected to start, stopping at limit.
func reachable(st *game.State, start game.Position, wrap bool, limit int) int {
	b := st.Board
	seen := make([]bool, b.Capacity())
	seen[index(b, start)] = true
	queue := []game.Position{start}
	count := 0
	for len(queue) > 0 && count < limit {
		p := queue[0]
		queue = queue[1:]
		count++
		for _, d := range game.Directions {
			n := b.Step(p, d, wrap)
			if !safe(st, n) || seen[index(b, n)] {
				continue
			}
			seen[index(b, n)] = true
			queue = append(queue, n)
		}
	}
	return count
}

func nearestEdible(st *game.State, from game.Position, wrap bool) int {
	best := st.Board.Width + st.Board.Height
	consider := func(p game.Position) {
		if d := distance(st.Board, from, p, wrap); p.Valid() && d < best {
			best = d
		}
	}
	for _, p := range st.Food.Positions() {
		consider(p)
	}
	if st.Super.Exists() {
		consider(st.Super.Position())
	}
	consider(st.Rat.Position())
	return best
}

func distance(b game.Board, a, c game.Position, wrap bool) int {
	dc := abs(a.Column() - c.Column())
	dr := abs(a.Row() - c.Row())
	if wrap {
		dc = min(dc, b.Width-dc)
		dr = min(dr, b.Height-dr)
	}
	return dc + dr
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
