package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"torus-snake/ai"
	"torus-snake/game"

	"golang.org/x/exp/rand"
)

func main() {
	episodes := flag.Int("episodes", 1000, "Number of training episodes")
	maxTicks := flag.Int("max-ticks", 2000, "Tick limit per episode")
	width := flag.Int("width", game.DefaultWidth, "Grid width in cells")
	height := flag.Int("height", game.DefaultHeight, "Grid height in cells")
	qtable := flag.String("qtable", "data/qtable.json", "Q-table file to extend")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	g, err := game.NewGame(game.Config{Width: *width, Height: *height, Seed: *seed})
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-train: %v\n", err)
		os.Exit(1)
	}

	agent := ai.NewAgent(0.1, 0.9, rand.New(rand.NewSource(*seed+1)))
	if err := agent.LoadQTable(*qtable); err != nil {
		fmt.Fprintf(os.Stderr, "snake-train: %v\n", err)
		os.Exit(1)
	}

	report, err := ai.Train(g, ai.NewAutopilot(agent), *episodes, *maxTicks)
	if saveErr := agent.SaveQTable(*qtable); saveErr != nil {
		fmt.Fprintf(os.Stderr, "snake-train: %v\n", saveErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-train: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("episodes: %d  ticks: %d  best length: %d  apples/episode: %.2f  epsilon: %.3f\n",
		report.Episodes, report.Ticks, report.BestLength, report.AverageApple, agent.Epsilon)
}
