package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"torus-snake/app"
	"torus-snake/game/manager"
	"torus-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

const cellPixels = 20

func main() {
	flags := app.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if logFile := app.SetupLogging(flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	s, err := flags.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	// Room for the grid, the padding and the HUD strip.
	rl.InitWindow(int32(flags.Width*cellPixels+20), int32(flags.Height*cellPixels+60), "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	for !rl.WindowShouldClose() {
		quit, err := s.Driver.Apply(ui.ReadCommand())
		if err != nil {
			log.Printf("input: %v", err)
		}
		if quit {
			break
		}

		if _, err := s.Driver.Update(time.Now()); err != nil {
			log.Printf("%v", err)
			if errors.Is(err, manager.ErrGridFull) {
				fmt.Println("The snake filled the board.")
			} else {
				fmt.Fprintf(os.Stderr, "Game stopped: %v\n", err)
			}
			break
		}

		renderer.Draw(s.Driver)
	}
}
