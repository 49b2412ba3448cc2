package types

// Point is a cell coordinate on the grid: X is the column, Y the row
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid represents the game grid dimensions in cells
type Grid struct {
	Width  int
	Height int
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the cell a fresh snake starts on.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether p lies inside the declared bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps any point onto the torus, so leaving one edge re-enters from the
// opposite one.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Index returns the row-major index of p; p must be inside the grid.
func (g Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// At is the inverse of Index.
func (g Grid) At(i int) Point {
	return Point{X: i % g.Width, Y: i / g.Width}
}

// Delta returns the shortest signed offset from a to b on the torus.
func (g Grid) Delta(a, b Point) Point {
	return Point{X: shortest(b.X-a.X, g.Width), Y: shortest(b.Y-a.Y, g.Height)}
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func shortest(d, n int) int {
	d = mod(d, n)
	if d > n/2 {
		d -= n
	}
	return d
}

// Color is an RGB triple; renderers convert it to their own color type
type Color struct {
	R, G, B uint8
}

// Direction is a cardinal heading
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Directions lists the four cardinal directions in clockwise order.
var Directions = [4]Direction{Up, Right, Down, Left}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Vector converts a Direction into a unit displacement
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the 180° reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// TurnLeft returns the heading after a counter-clockwise quarter turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the heading after a clockwise quarter turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}
