package systems

import "ebiten-invaders/ecs"

// Renderer is the double-buffered drawing target the game world draws each
// frame into. Nothing reaches the window until Present.
type Renderer interface {
	ecs.Surface
	// Clear blanks the back buffer
	Clear()
	// DrawText prints a line of text with its top left corner at (x, y)
	DrawText(text string, x, y int)
	// Present makes the back buffer visible
	Present()
}
