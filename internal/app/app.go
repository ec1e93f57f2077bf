//go:build ebiten

package app

import (
	"image"
	"image/color"
	"time"

	"lifestep/internal/life"
	"lifestep/internal/render"
	"lifestep/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	buttonWidth  = 200
	buttonHeight = 50
	buttonMargin = 10
)

// Game adapts the world to the ebiten.Game interface. A generation advances
// only when the button is clicked or N is pressed.
type Game struct {
	world   *life.World
	painter *render.Painter
	button  *ui.Button
	status  *ui.Status

	cellColor color.Color
	backColor color.Color
	lineColor color.Color

	scale      int
	seed       int64
	generation int
}

// New constructs a Game for the provided world.
func New(world *life.World, scale int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	screenW := world.Width() * scale
	screenH := world.Height() * scale
	rect := image.Rect(
		(screenW-buttonWidth)/2,
		screenH-buttonHeight-buttonMargin,
		(screenW+buttonWidth)/2,
		screenH-buttonMargin,
	)
	return &Game{
		world:     world,
		painter:   render.NewPainter(world.Width(), world.Height()),
		button:    ui.NewButton("Next Generation", rect, color.RGBA{G: 255, A: 255}, color.Black),
		status:    ui.NewStatus(color.RGBA{R: 128, G: 128, B: 128, A: 255}),
		cellColor: color.Black,
		backColor: color.White,
		lineColor: color.RGBA{R: 128, G: 128, B: 128, A: 255},
		scale:     scale,
		seed:      seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.generation = 0
}

// Update handles per-frame input and advances the world on a trigger.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.button.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.world.Step()
		g.generation++
	}
	return nil
}

// Draw renders the current world state, grid lines, button and status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.cellColor, g.backColor, g.scale)
	g.painter.GridLines(screen, g.scale, g.lineColor)
	g.button.Draw(screen)
	g.status.Draw(screen, g.generation, g.world.Population())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Width() * g.scale, g.world.Height() * g.scale
}
