package ai

import (
	"fmt"

	"torus-snake/game/entity"
	"torus-snake/game/types"
)

// Relative actions, in the order the Q-table stores them
const (
	TurnLeft = iota
	Straight
	TurnRight
	numActions
)

// State is what the autopilot perceives, relative to the current heading.
type State struct {
	FoodAhead int // -1 behind, 0 level, 1 ahead
	FoodSide  int // -1 left, 0 level, 1 right
	Danger    [numActions]bool
}

// Key encodes the state as a Q-table key.
func (s State) Key() string {
	return fmt.Sprintf("%d,%d,%d%d%d", s.FoodAhead, s.FoodSide,
		boolToInt(s.Danger[TurnLeft]), boolToInt(s.Danger[Straight]), boolToInt(s.Danger[TurnRight]))
}

// Observe reads the snake and apple and builds the autopilot state.
func Observe(snake *entity.Snake, apple types.Point) State {
	grid := snake.Grid()
	head := snake.Head()
	heading := snake.Direction()

	delta := grid.Delta(head, apple)
	forward := heading.Vector()
	right := heading.TurnRight().Vector()

	var s State
	s.FoodAhead = sign(delta.X*forward.X + delta.Y*forward.Y)
	s.FoodSide = sign(delta.X*right.X + delta.Y*right.Y)
	for action := TurnLeft; action < numActions; action++ {
		next := grid.Wrap(head.Add(ActionToDirection(heading, action).Vector()))
		s.Danger[action] = isDanger(snake, next)
	}
	return s
}

// isDanger reports whether moving the head onto p ends the run. The tail
// cell is safe unless the snake is still growing into it.
func isDanger(snake *entity.Snake, p types.Point) bool {
	body := snake.Body()
	if snake.TargetLength() <= snake.Len() {
		body = body[:len(body)-1]
	}
	for _, b := range body {
		if b == p {
			return true
		}
	}
	return false
}

// ActionToDirection converts a relative action into an absolute heading.
func ActionToDirection(heading types.Direction, action int) types.Direction {
	switch action {
	case TurnLeft:
		return heading.TurnLeft()
	case TurnRight:
		return heading.TurnRight()
	default:
		return heading
	}
}

// manhattanDistance on the torus
func manhattanDistance(grid types.Grid, a, b types.Point) int {
	d := grid.Delta(a, b)
	return abs(d.X) + abs(d.Y)
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
