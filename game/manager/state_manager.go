package manager

// SessionStats is a snapshot of the in-memory counters of one session. Nothing
// here outlives the process.
type SessionStats struct {
	Ticks       int
	ApplesEaten int
	Resets      int
	Length      int
	LongestRun  int
}

// StateManager tracks session telemetry for the HUD and the logs
type StateManager struct {
	stats SessionStats
}

func NewStateManager() *StateManager {
	return &StateManager{
		stats: SessionStats{Length: 1, LongestRun: 1},
	}
}

// RecordTick registers a completed tick and the body length after it.
func (sm *StateManager) RecordTick(length int) {
	sm.stats.Ticks++
	sm.UpdateLength(length)
}

func (sm *StateManager) RecordApple() {
	sm.stats.ApplesEaten++
}

// RecordReset registers a run ending; the fresh snake has length one.
func (sm *StateManager) RecordReset() {
	sm.stats.Resets++
	sm.stats.Length = 1
}

func (sm *StateManager) UpdateLength(length int) {
	sm.stats.Length = length
	if length > sm.stats.LongestRun {
		sm.stats.LongestRun = length
	}
}

func (sm *StateManager) Stats() SessionStats {
	return sm.stats
}
