package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"ebiten-invaders/config"
	"ebiten-invaders/ecs"
	"ebiten-invaders/render"
	"ebiten-invaders/screens"
	"ebiten-invaders/spawners"
	"ebiten-invaders/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	screens     *screens.ScreenStack
	eventLogger *systems.EventLogger
	width       int
	height      int
}

// NewGame wires the game world to ebiten
func NewGame(cfg *config.Config, log *zap.Logger) *Game {
	sprites := render.NewSpriteStore(cfg.Sprites, log)
	sprites.Preload(cfg.Ship.Sprite, cfg.Aliens.Sprite, cfg.Weapon.Sprite)

	renderer := render.NewBufferedRenderer(cfg.Window.Width, cfg.Window.Height)

	events := ecs.NewEventManager()
	messages := systems.NewMessageLog()
	messages.Add("Arrows or A/D move, Space fires, Esc quits")
	eventLogger := systems.NewEventLogger(log, messages)
	eventLogger.Initialize(events)

	world := systems.NewGameWorld(
		cfg,
		spawners.NewEntitySpawner(sprites, cfg),
		renderer,
		systems.NewSystemClock(),
		events,
		log,
	)

	stack := screens.NewScreenStack()
	stack.Push(screens.NewPlayScreen(world, renderer, messages))

	return &Game{
		screens:     stack,
		eventLogger: eventLogger,
		width:       cfg.Window.Width,
		height:      cfg.Window.Height,
	}
}

// Update updates the game state
func (g *Game) Update() error {
	return g.screens.Update()
}

// Draw draws the game screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.screens.Draw(screen)
}

// Layout keeps the configured logical resolution
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close detaches the event logger once the game loop has ended
func (g *Game) Close() {
	g.eventLogger.Close()
}
