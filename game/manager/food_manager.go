package manager

import (
	"torus-snake/game/types"

	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"
)

// MaxPlacementAttempts bounds rejection sampling before falling back to a
// linear scan of free cells.
const MaxPlacementAttempts = 1000

// ErrGridFull is returned when every cell is excluded and no apple fits.
var ErrGridFull = errors.New("no free cell left for the apple")

// RandomSource supplies uniform integers in [0, n).
type RandomSource interface {
	Intn(n int) int
}

type FoodManager struct {
	grid types.Grid
	rng  RandomSource
}

func NewFoodManager(grid types.Grid, rng RandomSource) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Place draws a uniformly random cell that is not in excluded.
func (fm *FoodManager) Place(excluded mapset.Set[types.Point]) (types.Point, error) {
	if excluded.Size() >= fm.grid.Cells() {
		return types.Point{}, ErrGridFull
	}

	for i := 0; i < MaxPlacementAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !excluded.Has(food) {
			return food, nil
		}
	}

	return fm.scan(excluded)
}

// scan walks the grid in row-major order from a random offset and returns the
// first free cell.
func (fm *FoodManager) scan(excluded mapset.Set[types.Point]) (types.Point, error) {
	cells := fm.grid.Cells()
	start := fm.rng.Intn(cells)
	for i := 0; i < cells; i++ {
		p := fm.grid.At((start + i) % cells)
		if !excluded.Has(p) {
			return p, nil
		}
	}
	return types.Point{}, ErrGridFull
}
