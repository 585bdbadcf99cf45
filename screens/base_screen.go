package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// BaseScreen provides a fixed logical resolution and no-op behavior
type BaseScreen struct {
	width  int
	height int
}

// NewBaseScreen creates a base screen with the given logical size
func NewBaseScreen(width, height int) *BaseScreen {
	return &BaseScreen{width: width, height: height}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {}

// Layout keeps the logical resolution whatever the window size
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.width, s.height
}
