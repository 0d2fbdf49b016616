package game

import (
	"strings"
	"testing"
)

// scriptedRand replays vals in order, wrapping around, reduced modulo n.
type scriptedRand struct {
	vals  []int
	calls int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[r.calls%len(r.vals)]
	r.calls++
	return v % n
}

// dumpState is a test helper to visualize board state, top row first.
func dumpState(st *State) string {
	head := st.Snake.Head()
	var sb strings.Builder
	for row := st.Board.Height - 1; row >= 0; row-- {
		for col := 0; col < st.Board.Width; col++ {
			p := st.Board.Position(col, row)
			switch {
			case p == head:
				sb.WriteByte('H')
			case st.IsSnakeAt(p):
				sb.WriteByte('s')
			case st.IsSuperFoodAt(p):
				sb.WriteByte('$')
			case st.IsRatAt(p):
				sb.WriteByte('r')
			default:
				if _, ok := st.FoodAt(p); ok {
					sb.WriteByte('*')
				} else {
					sb.WriteByte('.')
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func directionTo(from, to Position) Direction {
	switch {
	case to.Column() > from.Column():
		return Right
	case to.Column() < from.Column():
		return Left
	case to.Row() > from.Row():
		return Up
	}
	return Down
}

// buildSnake seeds a snake along cells (tail first) by feeding it one food
// item per extra cell.
func buildSnake(t *testing.T, st *State, cells ...Position) {
	t.Helper()
	if len(cells) < 2 {
		t.Fatalf("need at least 2 cells, got %d", len(cells))
	}
	st.Reset(cells[0], cells[1], directionTo(cells[0], cells[1]))
	for i := 2; i < len(cells); i++ {
		st.Snake.SetDirection(directionTo(cells[i-1], cells[i]))
		st.Food.Set(0, cells[i])
		if got := st.AdvanceHead(false); got != AteFood {
			t.Fatalf("growing to %v: result=%v want=%v\n%s", cells[i], got, AteFood, dumpState(st))
		}
		st.Food.Remove(0)
	}
	if st.Snake.Len() != len(cells) {
		t.Fatalf("len=%d want=%d", st.Snake.Len(), len(cells))
	}
}
