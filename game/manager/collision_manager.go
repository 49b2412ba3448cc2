package manager

import (
	"torus-snake/game/entity"
	"torus-snake/game/types"
)

// Collision classifies what the head ran into on a tick
type Collision int

const (
	NoCollision Collision = iota
	SelfCollision
	FoodCollision
)

func (c Collision) String() string {
	switch c {
	case SelfCollision:
		return "self"
	case FoodCollision:
		return "food"
	default:
		return "none"
	}
}

// CollisionManager resolves a tick after the snake has advanced. There are no
// walls: movement wraps, so only the body and the apple can be hit.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Resolve must run after Advance, once the tail has been dropped. The cell the
// tail vacated this tick is therefore free; any other body cell is fatal.
// Self-collision takes precedence over eating.
func (cm *CollisionManager) Resolve(snake *entity.Snake, apple *entity.Apple) Collision {
	if snake.HitsSelf() {
		return SelfCollision
	}
	if cm.IsFoodCollision(snake.Head(), apple.Position) {
		return FoodCollision
	}
	return NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is free for an apple
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	return cm.grid.Contains(pos) && !snake.Occupies(pos)
}
