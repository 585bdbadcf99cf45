package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-invaders/config"
	"ebiten-invaders/render"
	"ebiten-invaders/systems"
)

// Keys mapped to each held action
var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	fireKeys  = []ebiten.Key{ebiten.KeySpace}
)

// PlayScreen feeds the keyboard into the game world and runs one frame per
// tick. F1 toggles the message log overlay; the game keeps running under it.
type PlayScreen struct {
	*BaseScreen
	world    *systems.GameWorld
	renderer *render.BufferedRenderer
	messages *systems.MessageLog
	overlay  *ScreenStack
	released []ebiten.Key
}

// NewPlayScreen creates the gameplay screen
func NewPlayScreen(world *systems.GameWorld, renderer *render.BufferedRenderer, messages *systems.MessageLog) *PlayScreen {
	return &PlayScreen{
		BaseScreen: NewBaseScreen(config.WindowWidth, config.WindowHeight),
		world:      world,
		renderer:   renderer,
		messages:   messages,
		overlay:    NewScreenStack(),
	}
}

// Update handles input and advances the game by one frame. Escape quits
// unless the overlay is open, in which case it closes the overlay.
func (s *PlayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.toggleOverlay()
	} else if s.overlay.Len() > 0 {
		if err := s.overlay.Update(); err != nil {
			return err
		}
	} else if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if s.overlay.Len() > 0 {
		s.releaseKeys()
	} else {
		s.readKeys()
	}

	s.world.Frame()
	return nil
}

func (s *PlayScreen) toggleOverlay() {
	if s.overlay.Len() > 0 {
		s.overlay.Pop()
		return
	}
	s.overlay.Push(NewDebugScreen(s.messages))
}

// readKeys passes held keys to the world. A key counts as typed when it is
// released, so a key still held when a round ends is absorbed on release.
func (s *PlayScreen) readKeys() {
	s.world.SetMoveLeft(anyPressed(leftKeys))
	s.world.SetMoveRight(anyPressed(rightKeys))
	s.world.SetFiring(anyPressed(fireKeys))

	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])
	for _, key := range s.released {
		if key == ebiten.KeyEscape || key == ebiten.KeyF1 {
			continue
		}
		s.world.KeyTyped()
	}
}

// releaseKeys keeps the ship idle while the overlay has the keyboard
func (s *PlayScreen) releaseKeys() {
	s.world.SetMoveLeft(false)
	s.world.SetMoveRight(false)
	s.world.SetFiring(false)
}

// Draw shows the last frame and any overlay on top of it
func (s *PlayScreen) Draw(screen *ebiten.Image) {
	s.renderer.Blit(screen)
	s.overlay.Draw(screen)
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
