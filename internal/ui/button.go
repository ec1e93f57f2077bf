//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Button is a clickable labeled rectangle.
type Button struct {
	label string
	rect  image.Rectangle

	fill  color.Color
	ink   color.Color
	pixel *ebiten.Image
}

// NewButton constructs a button covering rect.
func NewButton(label string, rect image.Rectangle, fill, ink color.Color) *Button {
	b := &Button{label: label, rect: rect, fill: fill, ink: ink}
	b.pixel = ebiten.NewImage(1, 1)
	b.pixel.Fill(color.White)
	return b
}

// Clicked reports whether the left mouse button was pressed inside the
// button this frame. inpututil fires once per press, so one click yields
// one trigger.
func (b *Button) Clicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	return image.Pt(mx, my).In(b.rect)
}

// Draw paints the button and its centered label.
func (b *Button) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.rect.Dx()), float64(b.rect.Dy()))
	op.GeoM.Translate(float64(b.rect.Min.X), float64(b.rect.Min.Y))
	op.ColorScale.ScaleWithColor(b.fill)
	screen.DrawImage(b.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.label)
	x := b.rect.Min.X + (b.rect.Dx()-bounds.Dx())/2
	y := b.rect.Min.Y + (b.rect.Dy()+face.Metrics().Ascent.Ceil())/2
	text.Draw(screen, b.label, face, x, y, b.ink)
}
