package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-invaders/config"
	"ebiten-invaders/systems"
)

const (
	debugWidth      = 600
	debugHeight     = 400
	debugLineHeight = 16
	debugStartY     = 30
)

// DebugScreen shows the game message log in a modal window, newest first
type DebugScreen struct {
	*BaseScreen
	messages     *systems.MessageLog
	scrollOffset int
	modal        *ebiten.Image
	line         *ebiten.Image
}

// NewDebugScreen creates a debug overlay over the given log
func NewDebugScreen(messages *systems.MessageLog) *DebugScreen {
	return &DebugScreen{
		BaseScreen: NewBaseScreen(config.WindowWidth, config.WindowHeight),
		messages:   messages,
		modal:      ebiten.NewImage(debugWidth, debugHeight),
		line:       ebiten.NewImage(debugWidth, debugLineHeight),
	}
}

// Update scrolls with the arrow keys; Escape closes the overlay
func (s *DebugScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && s.scrollOffset < len(s.messages.Messages)-1 {
		s.scrollOffset++
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}
	return nil
}

// Draw renders the overlay centered on the screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := (bounds.Dx() - debugWidth) / 2
	y := (bounds.Dy() - debugHeight) / 2

	s.modal.Fill(color.Black)
	vector.StrokeRect(s.modal, 1, 1, debugWidth-2, debugHeight-2, 2, color.White, false)

	title := "DEBUG LOG"
	ebitenutil.DebugPrintAt(s.modal, title, (debugWidth-len(title)*config.GlyphWidth)/2, 4)

	maxLines := (debugHeight - debugStartY - debugLineHeight) / debugLineHeight
	recent := s.messages.RecentMessages(len(s.messages.Messages))
	start := s.scrollOffset
	if start > len(recent)-maxLines {
		start = max(len(recent)-maxLines, 0)
	}

	for i := 0; i < maxLines && start+i < len(recent); i++ {
		msg := recent[start+i]
		s.line.Clear()
		ebitenutil.DebugPrintAt(s.line, msg.Text, 10, 0)

		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleWithColor(msg.GetColor())
		op.GeoM.Translate(0, float64(debugStartY+i*debugLineHeight))
		s.modal.DrawImage(s.line, op)
	}

	ebitenutil.DebugPrintAt(s.modal, "Up/Down: Scroll  Esc/F1: Close", 10, debugHeight-20)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(s.modal, op)
}
