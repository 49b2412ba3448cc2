package ai

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// QTable stores the Q-values of each state-action pair.
type QTable map[string][]float64

// Random is the subset of golang.org/x/exp/rand the agent draws from.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// Agent is a tabular Q-learning agent with epsilon-greedy exploration.
type Agent struct {
	QTable          QTable
	LearningRate    float64
	Discount        float64
	Epsilon         float64
	InitialEpsilon  float64
	MinEpsilon      float64
	EpsilonDecay    float64
	TrainingEpisode int
	rng             Random
}

// NewAgent creates an agent that starts with high exploration.
func NewAgent(learningRate, discount float64, rng Random) *Agent {
	return &Agent{
		QTable:         make(QTable),
		LearningRate:   learningRate,
		Discount:       discount,
		Epsilon:        0.9,
		InitialEpsilon: 0.9,
		MinEpsilon:     0.01,
		EpsilonDecay:   0.995,
		rng:            rng,
	}
}

// GetAction picks an action for state with an epsilon-greedy policy.
func (a *Agent) GetAction(state string, numActions int) int {
	if a.rng.Float64() < a.Epsilon {
		return a.rng.Intn(numActions)
	}
	return a.getBestAction(state, numActions)
}

// IncrementEpisode closes a training episode and decays epsilon.
func (a *Agent) IncrementEpisode() {
	a.TrainingEpisode++
	a.Epsilon = a.InitialEpsilon * math.Pow(a.EpsilonDecay, float64(a.TrainingEpisode))
	if a.Epsilon < a.MinEpsilon {
		a.Epsilon = a.MinEpsilon
	}
}

// Update applies Q(s,a) += α [r + γ max Q(s',·) - Q(s,a)].
func (a *Agent) Update(state string, action int, reward float64, nextState string, numActions int) {
	a.ensure(state, numActions)
	a.ensure(nextState, numActions)

	currentQ := a.QTable[state][action]
	maxNextQ := a.getMaxQValue(nextState)
	a.QTable[state][action] = currentQ + a.LearningRate*(reward+a.Discount*maxNextQ-currentQ)
}

func (a *Agent) ensure(state string, numActions int) {
	if _, exists := a.QTable[state]; !exists {
		a.QTable[state] = make([]float64, numActions)
	}
}

func (a *Agent) getBestAction(state string, numActions int) int {
	a.ensure(state, numActions)

	bestAction := 0
	maxQ := math.Inf(-1)
	for action, qValue := range a.QTable[state] {
		if qValue > maxQ {
			maxQ = qValue
			bestAction = action
		}
	}
	return bestAction
}

func (a *Agent) getMaxQValue(state string) float64 {
	values, exists := a.QTable[state]
	if !exists || len(values) == 0 {
		return 0
	}

	maxQ := math.Inf(-1)
	for _, qValue := range values {
		if qValue > maxQ {
			maxQ = qValue
		}
	}
	return maxQ
}

// AgentState is the on-disk form of the agent.
type AgentState struct {
	QTable          QTable  `json:"qtable"`
	Epsilon         float64 `json:"epsilon"`
	TrainingEpisode int     `json:"training_episode"`
}

// SaveQTable writes the agent state to filename, creating its directory.
func (a *Agent) SaveQTable(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return errors.Wrap(err, "create q-table directory")
	}

	data, err := json.MarshalIndent(AgentState{
		QTable:          a.QTable,
		Epsilon:         a.Epsilon,
		TrainingEpisode: a.TrainingEpisode,
	}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal q-table")
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrapf(err, "write q-table %s", filename)
	}
	return nil
}

// LoadQTable restores the agent state. A missing file leaves the agent
// untouched.
func (a *Agent) LoadQTable(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read q-table %s", filename)
	}

	var state AgentState
	if err := json.Unmarshal(data, &state); err != nil {
		return errors.Wrapf(err, "decode q-table %s", filename)
	}

	if state.QTable != nil {
		a.QTable = state.QTable
		a.Epsilon = state.Epsilon
		a.TrainingEpisode = state.TrainingEpisode
	}
	return nil
}
