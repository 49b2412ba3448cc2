package ui

import (
	"torus-snake/game/types"
	"torus-snake/session"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	hudHeight     = 30 // Strip below the grid for the stats line
)

var (
	backgroundColor = rl.Black
	borderColor     = rl.Color{R: 93, G: 216, B: 228, A: 255}
	headMarkerColor = rl.Yellow
)

// Layout places the grid inside the window
type Layout struct {
	CellSize int32
	OffsetX  int32
	OffsetY  int32
}

// ComputeLayout picks the largest square cell that fits the grid and the HUD
// strip into the window and centers the grid horizontally.
func ComputeLayout(screenWidth, screenHeight int32, grid types.Grid) Layout {
	availableWidth := screenWidth - borderPadding*2
	availableHeight := screenHeight - borderPadding*2 - hudHeight

	cellW := availableWidth / int32(grid.Width)
	cellH := availableHeight / int32(grid.Height)
	cellSize := min(cellW, cellH)
	if cellSize < 1 {
		cellSize = 1
	}

	return Layout{
		CellSize: cellSize,
		OffsetX:  (screenWidth - cellSize*int32(grid.Width)) / 2,
		OffsetY:  borderPadding,
	}
}

// CellRect returns the pixel rectangle of a cell.
func (l Layout) CellRect(p types.Point) (x, y, w, h int32) {
	return l.OffsetX + int32(p.X)*l.CellSize, l.OffsetY + int32(p.Y)*l.CellSize, l.CellSize, l.CellSize
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       Layout
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Draw renders one frame from the driver's game.
func (r *Renderer) Draw(d *session.Driver) {
	g := d.Game()
	r.UpdateDimensions()
	r.layout = ComputeLayout(r.screenWidth, r.screenHeight, g.Grid)

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	gridW := r.layout.CellSize * int32(g.Grid.Width)
	gridH := r.layout.CellSize * int32(g.Grid.Height)
	rl.DrawRectangleLines(r.layout.OffsetX-1, r.layout.OffsetY-1, gridW+2, gridH+2, rl.DarkGray)

	snake := g.Snake()
	for _, p := range g.SnakePositions() {
		r.drawCell(p, snake.Color)
	}
	r.drawHeadMarker(g.SnakePositions()[0], g.Direction())

	apple := g.Apple()
	r.drawCell(apple.Position, apple.Color)

	r.drawHUD(d, r.layout.OffsetY+gridH+borderPadding)

	rl.EndDrawing()
}

// drawCell is the single primitive both the snake and the apple go through.
func (r *Renderer) drawCell(p types.Point, c types.Color) {
	x, y, w, h := r.layout.CellRect(p)
	rl.DrawRectangle(x, y, w, h, rl.Color{R: c.R, G: c.G, B: c.B, A: 255})
	rl.DrawRectangleLines(x, y, w, h, borderColor)
}

// drawHeadMarker draws a triangle pointing along the heading.
func (r *Renderer) drawHeadMarker(head types.Point, dir types.Direction) {
	x, y, size, _ := r.layout.CellRect(head)
	half := size / 2
	if half < 2 {
		return
	}

	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a = rl.Vector2{X: float32(x + size), Y: float32(y + half)}
		b = rl.Vector2{X: float32(x + half), Y: float32(y)}
		c = rl.Vector2{X: float32(x + half), Y: float32(y + size)}
	case types.Left:
		a = rl.Vector2{X: float32(x), Y: float32(y + half)}
		b = rl.Vector2{X: float32(x + half), Y: float32(y + size)}
		c = rl.Vector2{X: float32(x + half), Y: float32(y)}
	case types.Down:
		a = rl.Vector2{X: float32(x + half), Y: float32(y + size)}
		b = rl.Vector2{X: float32(x + size), Y: float32(y + half)}
		c = rl.Vector2{X: float32(x), Y: float32(y + half)}
	default:
		a = rl.Vector2{X: float32(x + half), Y: float32(y)}
		b = rl.Vector2{X: float32(x), Y: float32(y + half)}
		c = rl.Vector2{X: float32(x + size), Y: float32(y + half)}
	}
	rl.DrawTriangle(a, b, c, headMarkerColor)
}

func (r *Renderer) drawHUD(d *session.Driver, y int32) {
	fontSize := int32(20)
	rl.DrawText(d.Status(), r.layout.OffsetX, y, fontSize, rl.White)
}
