package ai

import (
	"torus-snake/game"
	"torus-snake/game/types"
)

const (
	rewardApple     = 10.0
	rewardCollision = -10.0
	rewardCloser    = 0.1
	rewardFarther   = -0.1
)

// Autopilot is an input source that steers the snake with Q-learning. It
// produces one intent per tick and learns from the outcome of that tick.
type Autopilot struct {
	agent *Agent

	lastState  State
	lastAction int
	lastDist   int
	pending    bool
}

func NewAutopilot(agent *Agent) *Autopilot {
	return &Autopilot{agent: agent}
}

func (p *Autopilot) Agent() *Agent {
	return p.agent
}

// Decide chooses the intent for the next tick.
func (p *Autopilot) Decide(g *game.Game) types.Direction {
	snake := g.Snake()
	state := Observe(snake, g.ApplePosition())
	action := p.agent.GetAction(state.Key(), numActions)

	p.lastState = state
	p.lastAction = action
	p.lastDist = manhattanDistance(g.Grid, snake.Head(), g.ApplePosition())
	p.pending = true

	return ActionToDirection(snake.Direction(), action)
}

// Learn feeds the outcome of the tick that followed Decide back into the
// Q-table. A collision closes the episode.
func (p *Autopilot) Learn(g *game.Game, outcome game.Outcome) {
	if !p.pending {
		return
	}
	p.pending = false

	snake := g.Snake()
	var reward float64
	switch outcome {
	case game.AteApple:
		reward = rewardApple
	case game.Collided:
		reward = rewardCollision
	default:
		if manhattanDistance(g.Grid, snake.Head(), g.ApplePosition()) < p.lastDist {
			reward = rewardCloser
		} else {
			reward = rewardFarther
		}
	}

	next := Observe(snake, g.ApplePosition())
	p.agent.Update(p.lastState.Key(), p.lastAction, reward, next.Key(), numActions)

	if outcome == game.Collided {
		p.agent.IncrementEpisode()
	}
}
