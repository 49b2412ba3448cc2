package ai

import (
	"log"

	"torus-snake/game"

	"github.com/pkg/errors"
)

// TrainingReport summarizes a headless training run.
type TrainingReport struct {
	Episodes     int
	Ticks        int
	BestLength   int
	ApplesEaten  int
	AverageApple float64 // apples per episode
}

// Train plays episodes without rendering. An episode ends on a collision or
// after maxTicks ticks. Progress is logged every 50 episodes.
func Train(g *game.Game, pilot *Autopilot, episodes, maxTicks int) (TrainingReport, error) {
	var report TrainingReport

	for episode := 0; episode < episodes; episode++ {
		if err := g.Reset(); err != nil {
			return report, errors.Wrap(err, "reset episode")
		}

		apples := 0
		for tick := 0; tick < maxTicks; tick++ {
			length := len(g.SnakePositions())
			if length > report.BestLength {
				report.BestLength = length
			}

			intent := pilot.Decide(g)
			outcome, err := g.Step(intent)
			pilot.Learn(g, outcome)
			report.Ticks++
			if err != nil {
				return report, errors.Wrapf(err, "episode %d", episode)
			}

			if outcome == game.AteApple {
				apples++
			}
			if outcome == game.Collided {
				break
			}
		}

		report.Episodes++
		report.ApplesEaten += apples
		if (episode+1)%50 == 0 {
			log.Printf("training: episode %d, best length %d, epsilon %.3f",
				episode+1, report.BestLength, pilot.Agent().Epsilon)
		}
	}

	if report.Episodes > 0 {
		report.AverageApple = float64(report.ApplesEaten) / float64(report.Episodes)
	}
	return report, nil
}
