package ai

import (
	"os"
	"path/filepath"
	"testing"

	"torus-snake/game"
	"torus-snake/game/entity"
	"torus-snake/game/types"

	"golang.org/x/exp/rand"
)

func TestObserve(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}

	tests := []struct {
		name      string
		body      []types.Point
		dir       types.Direction
		apple     types.Point
		wantAhead int
		wantSide  int
		wantDang  [numActions]bool
	}{
		{
			name:      "apple straight ahead",
			body:      []types.Point{{5, 5}, {4, 5}},
			dir:       types.Right,
			apple:     types.Point{8, 5},
			wantAhead: 1,
		},
		{
			name:     "apple to the right while heading up",
			body:     []types.Point{{5, 5}, {5, 6}},
			dir:      types.Up,
			apple:    types.Point{7, 5},
			wantSide: 1,
		},
		{
			name:      "apple behind across the edge",
			body:      []types.Point{{1, 5}},
			dir:       types.Right,
			apple:     types.Point{8, 5},
			wantAhead: -1,
		},
		{
			// Body curls around so the cell to the left (up) is occupied.
			name:      "danger on the left",
			body:      []types.Point{{5, 5}, {4, 5}, {4, 4}, {5, 4}, {6, 4}},
			dir:       types.Right,
			apple:     types.Point{5, 5},
			wantAhead: 0,
			wantDang:  [numActions]bool{true, false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Observe(entity.NewSnakeFromBody(grid, tt.body, tt.dir), tt.apple)
			if s.FoodAhead != tt.wantAhead || s.FoodSide != tt.wantSide {
				t.Errorf("food = (%d,%d), want (%d,%d)", s.FoodAhead, s.FoodSide, tt.wantAhead, tt.wantSide)
			}
			if s.Danger != tt.wantDang {
				t.Errorf("danger = %v, want %v", s.Danger, tt.wantDang)
			}
		})
	}
}

func TestObserveTailIsSafe(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	// 2x2 loop: turning right (down) enters the tail cell, which vacates.
	snake := entity.NewSnakeFromBody(grid, []types.Point{{1, 0}, {0, 0}, {0, 1}, {1, 1}}, types.Right)

	if s := Observe(snake, types.Point{9, 9}); s.Danger[TurnRight] {
		t.Error("vacating tail reported as danger")
	}

	snake.Grow()
	if s := Observe(snake, types.Point{9, 9}); !s.Danger[TurnRight] {
		t.Error("tail of a growing snake reported as safe")
	}
}

func TestActionToDirection(t *testing.T) {
	if d := ActionToDirection(types.Up, TurnLeft); d != types.Left {
		t.Errorf("up+left = %v", d)
	}
	if d := ActionToDirection(types.Up, TurnRight); d != types.Right {
		t.Errorf("up+right = %v", d)
	}
	if d := ActionToDirection(types.Down, Straight); d != types.Down {
		t.Errorf("down+straight = %v", d)
	}
}

func TestAgentUpdate(t *testing.T) {
	agent := NewAgent(0.5, 0.9, rand.New(rand.NewSource(1)))

	agent.Update("s", Straight, 10, "t", numActions)
	if got := agent.QTable["s"][Straight]; got != 5 {
		t.Errorf("Q(s, straight) = %v, want 5", got)
	}

	agent.Epsilon = 0
	if a := agent.GetAction("s", numActions); a != Straight {
		t.Errorf("greedy action = %d, want straight", a)
	}
}

func TestAgentEpsilonDecay(t *testing.T) {
	agent := NewAgent(0.1, 0.9, rand.New(rand.NewSource(1)))
	start := agent.Epsilon

	agent.IncrementEpisode()
	if agent.Epsilon >= start {
		t.Errorf("epsilon did not decay: %v", agent.Epsilon)
	}

	for i := 0; i < 10000; i++ {
		agent.IncrementEpisode()
	}
	if agent.Epsilon != agent.MinEpsilon {
		t.Errorf("epsilon = %v, want floor %v", agent.Epsilon, agent.MinEpsilon)
	}
}

func TestSaveLoadQTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents", "qtable.json")

	agent := NewAgent(0.1, 0.9, rand.New(rand.NewSource(1)))
	agent.Update("s", TurnLeft, 1, "t", numActions)
	agent.IncrementEpisode()
	if err := agent.SaveQTable(path); err != nil {
		t.Fatalf("SaveQTable: %v", err)
	}

	loaded := NewAgent(0.1, 0.9, rand.New(rand.NewSource(2)))
	if err := loaded.LoadQTable(path); err != nil {
		t.Fatalf("LoadQTable: %v", err)
	}
	if loaded.TrainingEpisode != 1 || loaded.QTable["s"][TurnLeft] != agent.QTable["s"][TurnLeft] {
		t.Errorf("loaded state differs: %+v", loaded.QTable)
	}

	if err := loaded.LoadQTable(filepath.Join(t.TempDir(), "missing.json")); err != nil {
		t.Errorf("missing file: %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := loaded.LoadQTable(bad); err == nil {
		t.Error("corrupt file loaded without error")
	}
}

func TestAutopilotPlays(t *testing.T) {
	g, err := game.NewGame(game.Config{Width: 12, Height: 10}, game.WithRandom(rand.New(rand.NewSource(5))))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	pilot := NewAutopilot(NewAgent(0.2, 0.9, rand.New(rand.NewSource(6))))

	for i := 0; i < 3000; i++ {
		intent := pilot.Decide(g)
		if !intent.Valid() {
			t.Fatalf("tick %d: invalid intent %v", i, intent)
		}
		outcome, err := g.Step(intent)
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		pilot.Learn(g, outcome)
	}

	if len(pilot.Agent().QTable) == 0 {
		t.Error("autopilot learned nothing")
	}
	if g.Stats().ApplesEaten == 0 {
		t.Error("autopilot never reached an apple")
	}
}

func TestTrain(t *testing.T) {
	g, err := game.NewGame(game.Config{Width: 10, Height: 10}, game.WithRandom(rand.New(rand.NewSource(8))))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	pilot := NewAutopilot(NewAgent(0.2, 0.9, rand.New(rand.NewSource(4))))

	report, err := Train(g, pilot, 40, 200)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if report.Episodes != 40 {
		t.Errorf("episodes = %d, want 40", report.Episodes)
	}
	if report.Ticks == 0 || report.Ticks > 40*200 {
		t.Errorf("ticks = %d out of range", report.Ticks)
	}
	if report.BestLength < 1 {
		t.Errorf("best length = %d", report.BestLength)
	}
	if pilot.Agent().TrainingEpisode == 0 && report.Ticks < 40*200 {
		t.Error("collisions did not close any agent episode")
	}
}
