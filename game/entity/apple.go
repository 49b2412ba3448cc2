package entity

import "torus-snake/game/types"

// AppleColor is the default apple color
var AppleColor = types.Color{R: 255, G: 0, B: 0}

// Apple is the single food item on the grid
type Apple struct {
	Position types.Point
	Color    types.Color
}

func NewApple(pos types.Point) *Apple {
	return &Apple{Position: pos, Color: AppleColor}
}
