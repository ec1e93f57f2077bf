//go:build !ebiten

package ui

import (
	"image"
	"image/color"
)

// Button is a no-op placeholder used when the ebiten build tag is absent.
type Button struct{}

// NewButton constructs a stub button.
func NewButton(string, image.Rectangle, color.Color, color.Color) *Button {
	return &Button{}
}

// Clicked always reports false in headless builds.
func (b *Button) Clicked() bool { return false }

// Draw is a no-op placeholder.
func (b *Button) Draw(any) {}

// Status is a no-op placeholder for headless builds.
type Status struct{}

// NewStatus constructs a stub status line.
func NewStatus(color.Color) *Status { return &Status{} }

// Draw is a no-op in headless builds.
func (s *Status) Draw(any, int, int) {}
