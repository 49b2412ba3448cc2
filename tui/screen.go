package tui

import (
	"torus-snake/game/types"
	"torus-snake/session"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell takes two terminal columns so cells look square.
const cellColumns = 2

var (
	cellRune   = '█'
	borderRune = '·'
	headStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	hudStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer draws the game onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Fits reports whether the grid, its frame and the HUD line fit the terminal.
func (r *Renderer) Fits(grid types.Grid) bool {
	w, h := r.screen.Size()
	return grid.Width*cellColumns+2 <= w && grid.Height+3 <= h
}

// Draw renders one frame.
func (r *Renderer) Draw(d *session.Driver) {
	g := d.Game()
	r.screen.Clear()

	if !r.Fits(g.Grid) {
		r.drawText(0, 0, "terminal too small", hudStyle)
		r.screen.Show()
		return
	}

	r.drawFrame(g.Grid)

	snake := g.Snake()
	body := g.SnakePositions()
	for _, p := range body[1:] {
		r.drawCell(p, snake.Color)
	}
	r.drawCellStyle(body[0], headStyle)

	apple := g.Apple()
	r.drawCell(apple.Position, apple.Color)

	r.drawText(0, g.Grid.Height+2, d.Status(), hudStyle)
	r.screen.Show()
}

// drawCell is the single primitive both the snake and the apple go through.
func (r *Renderer) drawCell(p types.Point, c types.Color) {
	color := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	r.drawCellStyle(p, tcell.StyleDefault.Foreground(color))
}

func (r *Renderer) drawCellStyle(p types.Point, style tcell.Style) {
	x := 1 + p.X*cellColumns
	y := 1 + p.Y
	for i := 0; i < cellColumns; i++ {
		r.screen.SetContent(x+i, y, cellRune, nil, style)
	}
}

func (r *Renderer) drawFrame(grid types.Grid) {
	style := tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	right := grid.Width*cellColumns + 1
	bottom := grid.Height + 1
	for x := 0; x <= right; x++ {
		r.screen.SetContent(x, 0, borderRune, nil, style)
		r.screen.SetContent(x, bottom, borderRune, nil, style)
	}
	for y := 0; y <= bottom; y++ {
		r.screen.SetContent(0, y, borderRune, nil, style)
		r.screen.SetContent(right, y, borderRune, nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// DecodeKey maps a key event to a player command. Unknown keys decode to the
// zero Command.
func DecodeKey(ev *tcell.EventKey) session.Command {
	var cmd session.Command
	switch ev.Key() {
	case tcell.KeyUp:
		cmd.Turn = types.Up
	case tcell.KeyDown:
		cmd.Turn = types.Down
	case tcell.KeyLeft:
		cmd.Turn = types.Left
	case tcell.KeyRight:
		cmd.Turn = types.Right
	case tcell.KeyEscape, tcell.KeyCtrlC:
		cmd.Quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			cmd.Turn = types.Up
		case 's', 'j':
			cmd.Turn = types.Down
		case 'a', 'h':
			cmd.Turn = types.Left
		case 'd', 'l':
			cmd.Turn = types.Right
		case 'r':
			cmd.NewGame = true
		case 'p', ' ':
			cmd.TogglePause = true
		case 'q':
			cmd.Quit = true
		}
	}
	return cmd
}
