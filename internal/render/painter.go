//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter blits cell buffers onto the screen at a fixed integer scale.
type Painter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	pixel *ebiten.Image
}

// NewPainter allocates a painter for a w x h cell grid.
func NewPainter(w, h int) *Painter {
	p := &Painter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
	}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Blit draws the cell buffer scaled onto screen, using on for live cells
// and off for dead ones.
func (p *Painter) Blit(screen *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if scale <= 0 {
		scale = 1
	}
	fillCellsRGBA(p.buf, cells, on, off)
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}

// GridLines draws 1-px cell boundaries over the scaled grid area.
func (p *Painter) GridLines(screen *ebiten.Image, scale int, c color.Color) {
	if scale <= 1 {
		return
	}
	width := float64(p.w * scale)
	height := float64(p.h * scale)
	for x := 0; x <= p.w; x++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, height)
		op.GeoM.Translate(float64(x*scale), 0)
		op.ColorScale.ScaleWithColor(c)
		screen.DrawImage(p.pixel, op)
	}
	for y := 0; y <= p.h; y++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(width, 1)
		op.GeoM.Translate(0, float64(y*scale))
		op.ColorScale.ScaleWithColor(c)
		screen.DrawImage(p.pixel, op)
	}
}
