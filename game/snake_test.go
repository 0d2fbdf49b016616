package game

import (
	"testing"
)

func newTestState(w, h int) *State {
	b := Board{Width: w, Height: h}
	return NewState(b, b.Capacity(), DefaultFoodSlots)
}

func TestAdvanceHead_PlainMoveKeepsLength(t *testing.T) {
	st := newTestState(8, 8)
	b := st.Board
	st.Reset(b.Position(1, 4), b.Position(2, 4), Right)

	got := st.AdvanceHead(false)
	if got != MoveOK {
		t.Fatalf("result=%v want=%v", got, MoveOK)
	}
	if vacated := st.Snake.AdvanceTail(); vacated != b.Position(1, 4) {
		t.Fatalf("vacated=%v want=(1,4)", vacated)
	}
	t.Logf("after move:\n%s", dumpState(st))

	if st.Snake.Len() != 2 {
		t.Fatalf("len=%d want=2", st.Snake.Len())
	}
	if st.Snake.Head() != b.Position(3, 4) || st.Snake.Tail() != b.Position(2, 4) {
		t.Fatalf("head=%v tail=%v", st.Snake.Head(), st.Snake.Tail())
	}
}

func TestAdvanceHead_EatFoodGrows(t *testing.T) {
	st := newTestState(8, 8)
	b := st.Board
	st.Reset(b.Position(1, 4), b.Position(2, 4), Right)
	st.Food.Set(1, b.Position(3, 4))

	got := st.AdvanceHead(false)
	if got != AteFood {
		t.Fatalf("result=%v want=%v", got, AteFood)
	}
	if got.AdvancesTail() {
		t.Fatalf("ate food should not advance tail")
	}
	if st.Snake.Len() != 3 {
		t.Fatalf("len=%d want=3", st.Snake.Len())
	}
	if st.Snake.Tail() != b.Position(1, 4) {
		t.Fatalf("tail=%v want=(1,4)", st.Snake.Tail())
	}
	if slot, ok := st.FoodAt(st.Snake.Head()); !ok || slot != 1 {
		t.Fatalf("food slot at head=%d,%v want 1,true", slot, ok)
	}
}

func TestAdvanceHead_SelfCollisionBlocks(t *testing.T) {
	st := newTestState(8, 8)
	b := st.Board
	buildSnake(t, st,
		b.Position(1, 1), b.Position(2, 1), b.Position(3, 1),
		b.Position(3, 2), b.Position(2, 2))
	st.Snake.SetDirection(Down)
	t.Logf("before:\n%s", dumpState(st))

	got := st.AdvanceHead(false)
	if got != Blocked {
		t.Fatalf("result=%v want=%v", got, Blocked)
	}
	if st.Snake.Len() != 5 || st.Snake.Head() != b.Position(2, 2) {
		t.Fatalf("body changed on blocked move: len=%d head=%v", st.Snake.Len(), st.Snake.Head())
	}
}

func TestAdvanceHead_MayEnterVacatingTail(t *testing.T) {
	st := newTestState(8, 8)
	b := st.Board
	buildSnake(t, st, b.Position(1, 1), b.Position(2, 1), b.Position(2, 2), b.Position(1, 2))
	st.Snake.SetDirection(Down)

	if got := st.AdvanceHead(false); got != MoveOK {
		t.Fatalf("result=%v want=%v\n%s", got, MoveOK, dumpState(st))
	}
	st.Snake.AdvanceTail()
	if st.Snake.Len() != 4 || st.Snake.Head() != b.Position(1, 1) {
		t.Fatalf("len=%d head=%v", st.Snake.Len(), st.Snake.Head())
	}
}

func TestAdvanceHead_OutOfBounds(t *testing.T) {
	st := newTestState(8, 8)
	b := st.Board
	st.Reset(b.Position(6, 0), b.Position(7, 0), Right)

	if got := st.AdvanceHead(false); got != Blocked {
		t.Fatalf("result=%v want=%v", got, Blocked)
	}
	if got := st.AdvanceHead(true); got != MoveOK {
		t.Fatalf("wrap result=%v want=%v", got, MoveOK)
	}
	if st.Snake.Head() != b.Position(0, 0) {
		t.Fatalf("head=%v want=(0,0)", st.Snake.Head())
	}
}

func TestAdvanceHead_CantGrowAtMaxLength(t *testing.T) {
	b := Board{Width: 8, Height: 8}
	st := NewState(b, 3, DefaultFoodSlots)
	buildSnake(t, st, b.Position(1, 1), b.Position(2, 1), b.Position(3, 1))
	st.Food.Set(2, b.Position(4, 1))

	got := st.AdvanceHead(false)
	if got != AteFoodCantGrow {
		t.Fatalf("result=%v want=%v", got, AteFoodCantGrow)
	}
	if !got.AdvancesTail() {
		t.Fatalf("cant-grow must advance tail")
	}
	st.Snake.AdvanceTail()
	if st.Snake.Len() != 3 {
		t.Fatalf("len=%d want=3", st.Snake.Len())
	}
}

func TestAdvanceHead_ClassifiesSuperFoodAndRat(t *testing.T) {
	st := newTestState(8, 8)
	b := st.Board
	st.Reset(b.Position(1, 4), b.Position(2, 4), Right)
	st.Super.pos = b.Position(3, 4)
	st.Super.exists = true
	st.Rat.Set(b.Position(4, 4))

	if got := st.AdvanceHead(false); got != AteSuperFood {
		t.Fatalf("result=%v want=%v", got, AteSuperFood)
	}
	if got := st.AdvanceHead(false); got != AteRat {
		t.Fatalf("result=%v want=%v", got, AteRat)
	}
	if st.Snake.Len() != 4 {
		t.Fatalf("len=%d want=4", st.Snake.Len())
	}
}

func TestSetDirection_IgnoresReversal(t *testing.T) {
	st := newTestState(8, 8)
	b := st.Board
	st.Reset(b.Position(1, 4), b.Position(2, 4), Right)

	st.Snake.SetDirection(Left)
	if st.Snake.Pending() != Right {
		t.Fatalf("pending=%v want=%v", st.Snake.Pending(), Right)
	}
	st.Snake.SetDirection(Up)
	st.Snake.SetDirection(Down)
	if st.Snake.Pending() != Down {
		t.Fatalf("pending=%v want=%v (last write wins)", st.Snake.Pending(), Down)
	}
}

func TestSnakeRing_WrapsCursors(t *testing.T) {
	// A 3 cell snake circling a 2x2 block forces both cursors around the
	// 4 slot ring many times.
	b := Board{Width: 4, Height: 4}
	st := NewState(b, 3, 1)
	buildSnake(t, st, b.Position(0, 0), b.Position(1, 0), b.Position(1, 1))
	route := []Direction{Left, Down, Right, Up}
	for i := 0; i < 40; i++ {
		st.Snake.SetDirection(route[i%len(route)])
		if got := st.AdvanceHead(false); got != MoveOK {
			t.Fatalf("step %d result=%v\n%s", i, got, dumpState(st))
		}
		st.Snake.AdvanceTail()
		cells := st.Snake.Cells()
		if len(cells) != 3 {
			t.Fatalf("step %d cells=%v", i, cells)
		}
		seen := map[Position]bool{}
		for _, c := range cells {
			if seen[c] {
				t.Fatalf("step %d duplicate cell %v in %v", i, c, cells)
			}
			seen[c] = true
		}
		if cells[len(cells)-1] != st.Snake.Head() || cells[0] != st.Snake.Tail() {
			t.Fatalf("step %d cells=%v head=%v tail=%v", i, cells, st.Snake.Head(), st.Snake.Tail())
		}
	}
}
