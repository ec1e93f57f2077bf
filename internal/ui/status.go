//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status draws a one-line generation/population readout.
type Status struct {
	ink color.Color
}

// NewStatus constructs a status line with the given text color.
func NewStatus(ink color.Color) *Status {
	return &Status{ink: ink}
}

// Draw paints the readout near the top-left corner.
func (s *Status) Draw(screen *ebiten.Image, generation, population int) {
	line := fmt.Sprintf("Gen %d  Pop %d", generation, population)
	text.Draw(screen, line, basicfont.Face7x13, 4, 14, s.ink)
}
