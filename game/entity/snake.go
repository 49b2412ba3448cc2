package entity

import (
	"torus-snake/game/types"

	"github.com/zyedidia/generic/mapset"
)

// SnakeColor is the default body color
var SnakeColor = types.Color{R: 0, G: 255, B: 0}

// Snake is the positional state machine of the player. Body is ordered head
// first; the tail is the last element.
type Snake struct {
	grid      types.Grid
	body      []types.Point
	direction types.Direction
	pending   types.Direction
	target    int
	Color     types.Color
}

// NewSnake creates a single-cell snake at the grid center heading dir.
func NewSnake(grid types.Grid, dir types.Direction) *Snake {
	s := &Snake{grid: grid, Color: SnakeColor}
	s.Reset(dir)
	return s
}

// NewSnakeFromBody creates a snake with an explicit body (head first). The
// target length equals the body length, so it neither grows nor shrinks until
// Grow is called.
func NewSnakeFromBody(grid types.Grid, body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		grid:      grid,
		body:      b,
		direction: dir,
		target:    len(b),
		Color:     SnakeColor,
	}
}

// RequestTurn buffers d for the next Advance. Invalid directions and
// reversals into the neck are dropped; only the latest accepted request
// survives until the next tick.
func (s *Snake) RequestTurn(d types.Direction) bool {
	if !d.Valid() {
		return false
	}
	if len(s.body) > 1 && d == s.direction.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Advance moves the snake one cell. The tail is dropped when the body would
// exceed the target length, which is how growth is realized. It reports
// whether the tail was dropped.
func (s *Snake) Advance() bool {
	if s.pending != types.None {
		s.direction = s.pending
		s.pending = types.None
	}

	newHead := s.grid.Wrap(s.Head().Add(s.direction.Vector()))

	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	if len(s.body) > s.target {
		s.body = s.body[:len(s.body)-1]
		return true
	}
	return false
}

// Grow raises the target length by one; the body catches up on the next
// Advance.
func (s *Snake) Grow() {
	s.target++
}

// Reset restores the snake to a single cell at the grid center.
func (s *Snake) Reset(dir types.Direction) {
	s.body = []types.Point{s.grid.Center()}
	s.direction = dir
	s.pending = types.None
	s.target = 1
}

// Head returns the first body cell.
func (s *Snake) Head() types.Point {
	return s.body[0]
}

// Tail returns the last body cell.
func (s *Snake) Tail() types.Point {
	return s.body[len(s.body)-1]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []types.Point {
	b := make([]types.Point, len(s.body))
	copy(b, s.body)
	return b
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) TargetLength() int {
	return s.target
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// Pending returns the buffered turn, or None.
func (s *Snake) Pending() types.Direction {
	return s.pending
}

func (s *Snake) Grid() types.Grid {
	return s.grid
}

// HitsSelf reports whether the head shares a cell with any other body cell.
func (s *Snake) HitsSelf() bool {
	head := s.body[0]
	for _, p := range s.body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Occupies reports whether p is part of the body.
func (s *Snake) Occupies(p types.Point) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}

// Occupied returns the set of cells covered by the body.
func (s *Snake) Occupied() mapset.Set[types.Point] {
	set := mapset.New[types.Point]()
	for _, p := range s.body {
		set.Put(p)
	}
	return set
}
