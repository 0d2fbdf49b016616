package game

// Snake is the body of the snake stored in a fixed ring of cells.
//
// The ring has MaxLength+1 slots: a move writes the new head before the
// caller decides whether the tail vacates, so the body briefly holds one
// extra cell between AdvanceHead and AdvanceTail.
type Snake struct {
	body      []Position
	head      int
	tail      int
	length    int
	maxLength int

	dir     Direction
	pending Direction
}

// NewSnake allocates the ring once. maxLength must be at least 2.
func NewSnake(maxLength int) *Snake {
	if maxLength < 2 {
		panic("game: snake max length must be at least 2")
	}
	s := &Snake{
		body:      make([]Position, maxLength+1),
		maxLength: maxLength,
	}
	for i := range s.body {
		s.body[i] = InvalidPosition
	}
	return s
}

// Reset seeds the body with a tail and a head cell moving in dir.
func (s *Snake) Reset(tail, head Position, dir Direction) {
	for i := range s.body {
		s.body[i] = InvalidPosition
	}
	s.tail = 0
	s.head = 1
	s.body[s.tail] = tail
	s.body[s.head] = head
	s.length = 2
	s.dir = dir
	s.pending = dir
}

func (s *Snake) next(i int) int {
	i++
	if i == len(s.body) {
		return 0
	}
	return i
}

func (s *Snake) Len() int {
	return s.length
}

func (s *Snake) MaxLength() int {
	return s.maxLength
}

// Full reports whether eating would take the body past MaxLength.
func (s *Snake) Full() bool {
	return s.length >= s.maxLength
}

func (s *Snake) Head() Position {
	if s.length == 0 {
		return InvalidPosition
	}
	return s.body[s.head]
}

func (s *Snake) Tail() Position {
	if s.length == 0 {
		return InvalidPosition
	}
	return s.body[s.tail]
}

// Direction is the direction of the last completed move.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Pending is the direction the next move will take.
func (s *Snake) Pending() Direction {
	return s.pending
}

// SetDirection records the next move direction. The last call before a move
// wins. Reversing straight back into the neck is ignored.
func (s *Snake) SetDirection(d Direction) {
	if s.length > 1 && d == s.dir.Opposite() {
		return
	}
	s.pending = d
}

// Contains reports whether p is any live body cell, tail included.
func (s *Snake) Contains(p Position) bool {
	i := s.tail
	for n := 0; n < s.length; n++ {
		if s.body[i] == p {
			return true
		}
		i = s.next(i)
	}
	return false
}

// collides reports whether p hits a body cell that stays put on a plain
// move, i.e. anything except the current tail.
func (s *Snake) collides(p Position) bool {
	if s.length == 0 {
		return false
	}
	i := s.next(s.tail)
	for n := 1; n < s.length; n++ {
		if s.body[i] == p {
			return true
		}
		i = s.next(i)
	}
	return false
}

func (s *Snake) pushHead(p Position) {
	s.head = s.next(s.head)
	s.body[s.head] = p
	s.length++
}

// AdvanceTail drops the tail cell and returns it so the caller can clear it.
// A single-cell body is never shortened.
func (s *Snake) AdvanceTail() Position {
	if s.length <= 1 {
		return InvalidPosition
	}
	p := s.body[s.tail]
	s.body[s.tail] = InvalidPosition
	s.tail = s.next(s.tail)
	s.length--
	return p
}

// Cells returns the body from tail to head.
func (s *Snake) Cells() []Position {
	out := make([]Position, 0, s.length)
	i := s.tail
	for n := 0; n < s.length; n++ {
		out = append(out, s.body[i])
		i = s.next(i)
	}
	return out
}
