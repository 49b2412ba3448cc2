// Package app wires the flags shared by the desktop and terminal shells into
// a ready-to-run session.
package app

import (
	"flag"
	"log"
	"time"

	"torus-snake/ai"
	"torus-snake/audio"
	"torus-snake/game"
	"torus-snake/session"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Flags holds the command-line options of a shell
type Flags struct {
	Width     int
	Height    int
	Speed     int
	Seed      uint64
	Autopilot bool
	QTable    string
	Mute      bool
	Debug     bool
}

// RegisterFlags declares the shared flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.IntVar(&f.Width, "width", game.DefaultWidth, "Grid width in cells")
	fs.IntVar(&f.Height, "height", game.DefaultHeight, "Grid height in cells")
	fs.IntVar(&f.Speed, "speed", game.DefaultSpeed, "Ticks per second")
	fs.Uint64Var(&f.Seed, "seed", 0, "Random seed (0 = time based)")
	fs.BoolVar(&f.Autopilot, "autopilot", false, "Let the Q-learning agent steer")
	fs.StringVar(&f.QTable, "qtable", "data/qtable.json", "Q-table file used by the autopilot")
	fs.BoolVar(&f.Mute, "mute", false, "Disable sound")
	fs.BoolVar(&f.Debug, "debug", false, "Write logs to logs/snake.log")
	return f
}

// GameConfig converts the flags into a game configuration.
func (f *Flags) GameConfig() game.Config {
	return game.Config{Width: f.Width, Height: f.Height, Seed: f.Seed}
}

// TickInterval is the fixed duration of one tick.
func (f *Flags) TickInterval() (time.Duration, error) {
	if f.Speed <= 0 {
		return 0, errors.Errorf("speed must be positive, got %d", f.Speed)
	}
	return time.Second / time.Duration(f.Speed), nil
}

// Session is a built driver plus the resources it owns
type Session struct {
	Driver *session.Driver
	pilot  *ai.Autopilot
	player *audio.Player
	qtable string
}

// Build creates the game, the optional autopilot and audio, and the driver.
func (f *Flags) Build() (*Session, error) {
	interval, err := f.TickInterval()
	if err != nil {
		return nil, err
	}

	g, err := game.NewGame(f.GameConfig())
	if err != nil {
		return nil, err
	}
	log.Printf("session %s: %dx%d grid at %d ticks/s", g.UUID, f.Width, f.Height, f.Speed)

	s := &Session{qtable: f.QTable}
	cfg := session.Config{TickInterval: interval}

	if f.Autopilot {
		seed := f.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		agent := ai.NewAgent(0.1, 0.9, rand.New(rand.NewSource(seed+1)))
		if err := agent.LoadQTable(f.QTable); err != nil {
			log.Printf("autopilot: starting with an empty table: %v", err)
		}
		s.pilot = ai.NewAutopilot(agent)
		cfg.Pilot = s.pilot
	}

	if !f.Mute {
		player, err := audio.NewPlayer()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		}
		s.player = player
		cfg.Cues = player
	}

	s.Driver, err = session.NewDriver(g, cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Close saves the autopilot table and releases audio.
func (s *Session) Close() {
	if s.pilot != nil {
		if err := s.pilot.Agent().SaveQTable(s.qtable); err != nil {
			log.Printf("autopilot: %v", err)
		}
	}
	if s.player != nil {
		s.player.Close()
	}
}
