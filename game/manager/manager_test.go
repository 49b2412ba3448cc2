package manager

import (
	"testing"

	"torus-snake/game/entity"
	"torus-snake/game/types"

	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/rand"
)

// scriptedSource replays a fixed sequence of values, then repeats the last.
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[len(s.values)-1]
	if s.calls < len(s.values) {
		v = s.values[s.calls]
	}
	s.calls++
	return v % n
}

func pointSet(points ...types.Point) mapset.Set[types.Point] {
	set := mapset.New[types.Point]()
	for _, p := range points {
		set.Put(p)
	}
	return set
}

func TestPlaceRejectsExcludedCells(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	// First draw lands on (5,5), which is excluded; second draw is (6,5).
	src := &scriptedSource{values: []int{5, 5, 6, 5}}
	fm := NewFoodManager(grid, src)

	got, err := fm.Place(pointSet(types.Point{5, 5}))
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if got != (types.Point{6, 5}) {
		t.Errorf("Place = %v, want {6 5}", got)
	}
	if src.calls != 4 {
		t.Errorf("drew %d values, want 4", src.calls)
	}
}

func TestPlaceNeverReturnsExcluded(t *testing.T) {
	grid := types.Grid{Width: 8, Height: 6}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(7)))

	excluded := mapset.New[types.Point]()
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height-1; y++ {
			excluded.Put(types.Point{X: x, Y: y})
		}
	}

	for i := 0; i < 200; i++ {
		p, err := fm.Place(excluded)
		if err != nil {
			t.Fatalf("Place: %v", err)
		}
		if excluded.Has(p) || !grid.Contains(p) {
			t.Fatalf("Place returned %v", p)
		}
	}
}

func TestPlaceFallsBackToScan(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	// The source always answers 0, so sampling keeps hitting (0,0) and the
	// budget runs out; the scan then starts at index 0 and walks forward.
	src := &scriptedSource{values: []int{0}}
	fm := NewFoodManager(grid, src)

	got, err := fm.Place(pointSet(types.Point{0, 0}, types.Point{1, 0}))
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if got != (types.Point{2, 0}) {
		t.Errorf("Place = %v, want {2 0}", got)
	}
	if src.calls != 2*MaxPlacementAttempts+1 {
		t.Errorf("drew %d values, want %d", src.calls, 2*MaxPlacementAttempts+1)
	}
}

func TestPlaceReportsFullGrid(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 2}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)))

	full := mapset.New[types.Point]()
	for i := 0; i < grid.Cells(); i++ {
		full.Put(grid.At(i))
	}

	_, err := fm.Place(full)
	if !errors.Is(err, ErrGridFull) {
		t.Errorf("err = %v, want ErrGridFull", err)
	}
}

func TestResolve(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	cm := NewCollisionManager(grid)

	tests := []struct {
		name  string
		body  []types.Point
		dir   types.Direction
		apple types.Point
		want  Collision
	}{
		{"empty cell", []types.Point{{5, 5}, {4, 5}}, types.Right, types.Point{0, 0}, NoCollision},
		{"apple", []types.Point{{5, 5}, {4, 5}, {3, 5}}, types.Right, types.Point{6, 5}, FoodCollision},
		{"vacated tail", []types.Point{{1, 0}, {0, 0}, {0, 1}, {1, 1}}, types.Down, types.Point{9, 9}, NoCollision},
		{"body", []types.Point{{2, 1}, {2, 2}, {1, 2}, {1, 1}, {1, 0}}, types.Left, types.Point{9, 9}, SelfCollision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snake := entity.NewSnakeFromBody(grid, tt.body, tt.dir)
			snake.Advance()
			if got := cm.Resolve(snake, entity.NewApple(tt.apple)); got != tt.want {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateSpawnPosition(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	cm := NewCollisionManager(grid)
	snake := entity.NewSnakeFromBody(grid, []types.Point{{5, 5}, {4, 5}}, types.Right)

	if cm.ValidateSpawnPosition(types.Point{4, 5}, snake) {
		t.Error("body cell accepted as spawn position")
	}
	if cm.ValidateSpawnPosition(types.Point{10, 0}, snake) {
		t.Error("out-of-grid cell accepted as spawn position")
	}
	if !cm.ValidateSpawnPosition(types.Point{0, 0}, snake) {
		t.Error("free cell rejected")
	}
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()

	sm.RecordTick(1)
	sm.RecordApple()
	sm.RecordTick(2)
	sm.RecordTick(3)
	sm.RecordReset()
	sm.RecordTick(1)

	got := sm.Stats()
	want := SessionStats{Ticks: 4, ApplesEaten: 1, Resets: 1, Length: 1, LongestRun: 3}
	if got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}
}
