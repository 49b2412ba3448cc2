package ui

import (
	"torus-snake/game/types"
	"torus-snake/session"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var turnKeys = []struct {
	keys []int32
	dir  types.Direction
}{
	{[]int32{rl.KeyUp, rl.KeyW}, types.Up},
	{[]int32{rl.KeyDown, rl.KeyS}, types.Down},
	{[]int32{rl.KeyLeft, rl.KeyA}, types.Left},
	{[]int32{rl.KeyRight, rl.KeyD}, types.Right},
}

// ReadCommand polls the keys pressed since the last frame. When several
// arrows arrive in one frame the last one in table order wins, like the
// pending-turn buffer does across frames.
func ReadCommand() session.Command {
	var cmd session.Command
	for _, tk := range turnKeys {
		for _, k := range tk.keys {
			if rl.IsKeyPressed(k) {
				cmd.Turn = tk.dir
			}
		}
	}
	cmd.NewGame = rl.IsKeyPressed(rl.KeyR)
	cmd.TogglePause = rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeySpace)
	cmd.Quit = rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape)
	return cmd
}
