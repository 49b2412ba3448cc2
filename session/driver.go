package session

import (
	"fmt"
	"log"
	"time"

	"torus-snake/game"
	"torus-snake/game/types"

	"github.com/pkg/errors"
)

// MaxCatchUpTicks bounds how many ticks a single Update may run after a stall
// (window drag, debugger pause), so the snake does not teleport.
const MaxCatchUpTicks = 5

// Pilot produces intents instead of the keyboard and learns from outcomes.
type Pilot interface {
	Decide(g *game.Game) types.Direction
	Learn(g *game.Game, outcome game.Outcome)
}

// Cues receives the notable events of a tick.
type Cues interface {
	AppleEaten()
	Crashed()
}

// Config carries the dependencies of a Driver
type Config struct {
	TickInterval time.Duration
	Pilot        Pilot // nil for keyboard play
	Cues         Cues  // nil for silence
}

// Driver paces a Game at a fixed tick rate. The frame loop feeds it the
// current time and decoded intents; it never reads a clock itself.
type Driver struct {
	game     *game.Game
	cfg      Config
	intent   types.Direction
	lastTick time.Time
	started  bool
	paused   bool
}

func NewDriver(g *game.Game, cfg Config) (*Driver, error) {
	if cfg.TickInterval <= 0 {
		return nil, errors.Errorf("tick interval must be positive, got %v", cfg.TickInterval)
	}
	return &Driver{game: g, cfg: cfg}, nil
}

func (d *Driver) Game() *game.Game {
	return d.game
}

// Queue stores a decoded keyboard intent for the next tick. Only the latest
// one counts.
func (d *Driver) Queue(dir types.Direction) {
	if dir.Valid() {
		d.intent = dir
	}
}

func (d *Driver) TogglePause() {
	d.paused = !d.paused
}

func (d *Driver) Paused() bool {
	return d.paused
}

func (d *Driver) Autopilot() bool {
	return d.cfg.Pilot != nil
}

// Status formats the session telemetry for a HUD line.
func (d *Driver) Status() string {
	stats := d.game.Stats()
	line := fmt.Sprintf("Length: %d   Longest: %d   Apples: %d   Resets: %d",
		stats.Length, stats.LongestRun, stats.ApplesEaten, stats.Resets)
	if d.Autopilot() {
		line += "   [autopilot]"
	}
	if d.paused {
		line += "   [paused]"
	}
	return line
}

// Command is one decoded player input from a frontend
type Command struct {
	Turn        types.Direction
	NewGame     bool
	TogglePause bool
	Quit        bool
}

// Apply routes a decoded command. It reports whether the player asked to quit.
func (d *Driver) Apply(cmd Command) (bool, error) {
	if cmd.Quit {
		return true, nil
	}
	if cmd.TogglePause {
		d.TogglePause()
	}
	if cmd.NewGame {
		if err := d.NewGame(); err != nil {
			return false, err
		}
	}
	d.Queue(cmd.Turn)
	return false, nil
}

// NewGame resets the game on behalf of the player.
func (d *Driver) NewGame() error {
	d.intent = types.None
	if err := d.game.Reset(); err != nil {
		return errors.Wrap(err, "new game")
	}
	log.Printf("session %s: new game requested", d.game.UUID)
	return nil
}

// Update runs every tick that is due at now and returns how many ran. The
// first call only anchors the clock.
func (d *Driver) Update(now time.Time) (int, error) {
	if !d.started {
		d.started = true
		d.lastTick = now
		return 0, nil
	}
	if d.paused {
		d.lastTick = now
		return 0, nil
	}

	ticks := 0
	for now.Sub(d.lastTick) >= d.cfg.TickInterval {
		if ticks == MaxCatchUpTicks {
			d.lastTick = now
			break
		}
		d.lastTick = d.lastTick.Add(d.cfg.TickInterval)
		if err := d.tick(); err != nil {
			return ticks, err
		}
		ticks++
	}
	return ticks, nil
}

func (d *Driver) tick() error {
	intent := d.intent
	d.intent = types.None
	if d.cfg.Pilot != nil {
		intent = d.cfg.Pilot.Decide(d.game)
	}

	length := len(d.game.SnakePositions())
	outcome, err := d.game.Step(intent)
	if d.cfg.Pilot != nil {
		d.cfg.Pilot.Learn(d.game, outcome)
	}
	if err != nil {
		return errors.Wrapf(err, "session %s", d.game.UUID)
	}

	switch outcome {
	case game.AteApple:
		if d.cfg.Cues != nil {
			d.cfg.Cues.AppleEaten()
		}
	case game.Collided:
		log.Printf("session %s: run ended at length %d", d.game.UUID, length)
		if d.cfg.Cues != nil {
			d.cfg.Cues.Crashed()
		}
	}
	return nil
}
