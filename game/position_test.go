package game

import "testing"

func TestBoardPosition_RoundTrip(t *testing.T) {
	b := Board{Width: 16, Height: 8}
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			p := b.Position(col, row)
			if !b.InBounds(p) {
				t.Fatalf("(%d,%d) not in bounds", col, row)
			}
			if p.Column() != col || p.Row() != row {
				t.Fatalf("decoded %v want (%d,%d)", p, col, row)
			}
		}
	}
}

func TestBoardPosition_OutOfBounds(t *testing.T) {
	b := Board{Width: 8, Height: 8}
	cases := [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {255, 255}}
	for _, c := range cases {
		if p := b.Position(c[0], c[1]); p != InvalidPosition {
			t.Fatalf("Position(%d,%d)=%v want invalid", c[0], c[1], p)
		}
	}
	if b.InBounds(InvalidPosition) {
		t.Fatalf("invalid sentinel reported in bounds")
	}
	if b.InBounds(pack(3, 9)) {
		t.Fatalf("row 9 reported in bounds on 8 high board")
	}
}

func TestInvalidPosition_NeverValidEncoding(t *testing.T) {
	b := Board{Width: MaxDimension, Height: MaxDimension}
	b.Cells(func(p Position) {
		if p == InvalidPosition {
			t.Fatalf("cell %d,%d encodes to the invalid sentinel", p.Column(), p.Row())
		}
	})
}

func TestBoardStep(t *testing.T) {
	b := Board{Width: 8, Height: 8}
	tests := []struct {
		name string
		from Position
		dir  Direction
		wrap bool
		want Position
	}{
		{"up", b.Position(3, 3), Up, false, b.Position(3, 4)},
		{"down", b.Position(3, 3), Down, false, b.Position(3, 2)},
		{"left", b.Position(3, 3), Left, false, b.Position(2, 3)},
		{"right", b.Position(3, 3), Right, false, b.Position(4, 3)},
		{"off right edge", b.Position(7, 3), Right, false, InvalidPosition},
		{"off bottom edge", b.Position(3, 0), Down, false, InvalidPosition},
		{"wrap right", b.Position(7, 3), Right, true, b.Position(0, 3)},
		{"wrap down", b.Position(3, 0), Down, true, b.Position(3, 7)},
		{"from invalid", InvalidPosition, Up, true, InvalidPosition},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Step(tc.from, tc.dir, tc.wrap); got != tc.want {
				t.Fatalf("Step=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Fatalf("%v opposite twice = %v", d, d.Opposite().Opposite())
		}
		dc, dr := d.Delta()
		oc, or := d.Opposite().Delta()
		if dc+oc != 0 || dr+or != 0 {
			t.Fatalf("%v and %v do not cancel", d, d.Opposite())
		}
	}
}

func TestRatCornerExcluded_NeverOnNormalBoard(t *testing.T) {
	b := Board{Width: 8, Height: 8}
	b.Cells(func(p Position) {
		if b.RatCornerExcluded(p) {
			t.Fatalf("%v excluded on 8x8 board", p)
		}
	})
}

func TestRatCornerExcluded_TinyBoard(t *testing.T) {
	// On a 3x3 board both ranges collapse to {2}.
	b := Board{Width: 3, Height: 3}
	var hits []Position
	b.Cells(func(p Position) {
		if b.RatCornerExcluded(p) {
			hits = append(hits, p)
		}
	})
	if len(hits) != 1 || hits[0] != b.Position(2, 2) {
		t.Fatalf("excluded=%v want [(2,2)]", hits)
	}
}

func TestPlace_TerminatesWhenEverythingExcluded(t *testing.T) {
	draws := 0
	p := Place(PlacementAttempts, func() Position {
		draws++
		return pack(0, 0)
	}, func(Position) bool { return true })
	if p != InvalidPosition {
		t.Fatalf("got %v want invalid", p)
	}
	if draws != PlacementAttempts {
		t.Fatalf("draws=%d want=%d", draws, PlacementAttempts)
	}
}

func TestPlace_ReturnsFirstFreeCandidate(t *testing.T) {
	b := Board{Width: 4, Height: 4}
	rng := &scriptedRand{vals: []int{0, 0, 1, 1, 2, 2}}
	blocked := b.Position(0, 0)
	p := b.PlaceRandom(rng, PlacementAttempts, func(p Position) bool { return p == blocked })
	if p != b.Position(1, 1) {
		t.Fatalf("got %v want (1,1)", p)
	}
}
