package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-invaders/ecs"
)

// BufferedRenderer draws frames offscreen. The game world draws into the back
// buffer during Update; Present makes it the front buffer that Blit copies to
// the window during Draw.
type BufferedRenderer struct {
	back       *ebiten.Image
	front      *ebiten.Image
	background color.Color
}

// NewBufferedRenderer creates a renderer with two width x height buffers
func NewBufferedRenderer(width, height int) *BufferedRenderer {
	r := &BufferedRenderer{
		back:       ebiten.NewImage(width, height),
		front:      ebiten.NewImage(width, height),
		background: color.Black,
	}
	r.front.Fill(r.background)
	return r
}

// Clear fills the back buffer with the background color
func (r *BufferedRenderer) Clear() {
	r.back.Fill(r.background)
}

// DrawSprite draws an image sprite with its top-left corner at (x, y).
// Sprites not loaded by a SpriteStore have nothing to draw.
func (r *BufferedRenderer) DrawSprite(sprite ecs.Sprite, x, y int) {
	is, ok := sprite.(*ImageSprite)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	r.back.DrawImage(is.Image(), op)
}

// DrawText prints white text with its top-left corner at (x, y)
func (r *BufferedRenderer) DrawText(text string, x, y int) {
	ebitenutil.DebugPrintAt(r.back, text, x, y)
}

// Present swaps the buffers
func (r *BufferedRenderer) Present() {
	r.back, r.front = r.front, r.back
}

// Blit copies the last presented frame onto the screen
func (r *BufferedRenderer) Blit(screen *ebiten.Image) {
	screen.DrawImage(r.front, nil)
}
