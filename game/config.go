package game

import (
	"time"

	"torus-snake/game/types"

	"github.com/pkg/errors"
)

const (
	DefaultWidth  = 32 // 640 px at 20 px per cell
	DefaultHeight = 24 // 480 px at 20 px per cell
	DefaultSpeed  = 20 // ticks per second
)

// Config holds the immutable parameters of a game
type Config struct {
	Width  int
	Height int
	// Seed for the random source; 0 picks a time-based seed.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Validate rejects grids on which the snake would overlap itself by merely
// moving or on which no apple can ever be placed.
func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return errors.Errorf("grid must be at least 2x2 cells, got %dx%d", c.Width, c.Height)
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}

func (c Config) seed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
