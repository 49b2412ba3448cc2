package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a short sine beep
type Tone struct {
	Frequency float64
	Duration  time.Duration
}

var (
	AppleTone = Tone{Frequency: 880, Duration: 60 * time.Millisecond}
	CrashTone = Tone{Frequency: 220, Duration: 250 * time.Millisecond}
)

// Player plays event cues through the speaker. A Player whose speaker failed
// to initialize stays silent, so callers never need to check.
type Player struct {
	ready bool
}

// NewPlayer initializes the speaker. Failure is not fatal: the error is
// returned for logging and the Player is usable but mute.
func NewPlayer() (*Player, error) {
	p := &Player{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, errors.Wrap(err, "init speaker")
	}
	p.ready = true
	return p, nil
}

func (p *Player) AppleEaten() {
	p.play(AppleTone)
}

func (p *Player) Crashed() {
	p.play(CrashTone)
}

func (p *Player) play(t Tone) {
	if !p.ready {
		return
	}
	s, err := t.Streamer()
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	speaker.Play(s)
}

// Streamer renders the tone at the player sample rate.
func (t Tone) Streamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Frequency)
	if err != nil {
		return nil, errors.Wrapf(err, "sine tone %.0f Hz", t.Frequency)
	}
	return beep.Take(sampleRate.N(t.Duration), sine), nil
}

func (p *Player) Close() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}
