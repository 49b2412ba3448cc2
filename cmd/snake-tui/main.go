package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"torus-snake/app"
	"torus-snake/game/manager"
	"torus-snake/session"
	"torus-snake/tui"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	flags := app.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if logFile := app.SetupLogging(flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(flags); err != nil {
		if errors.Is(err, manager.ErrGridFull) {
			fmt.Println("The snake filled the board.")
			return
		}
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *app.Flags) error {
	s, err := flags.Build()
	if err != nil {
		return err
	}
	defer s.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	return loop(screen, s.Driver)
}

// loop owns the game: only this goroutine touches the driver. Terminal events
// arrive over a channel from the polling goroutine.
func loop(screen tcell.Screen, d *session.Driver) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	renderer := tui.NewRenderer(screen)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				quit, err := d.Apply(tui.DecodeKey(ev))
				if err != nil {
					log.Printf("input: %v", err)
				}
				if quit {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			if _, err := d.Update(now); err != nil {
				return err
			}
			renderer.Draw(d)
		}
	}
}
