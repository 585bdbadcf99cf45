package systems

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ebiten-invaders/config"
	"ebiten-invaders/ecs"
	"ebiten-invaders/entities"
	"ebiten-invaders/spawners"
)

// Messages shown while the game waits for a key press
const (
	DeathMessage  = "Whoops, looks like you died, try again?"
	WinMessage    = "Congrats, you killed em all!"
	PromptMessage = "Press any key"
)

// Vertical positions of the pause screen text
const (
	messageY = 250
	promptY  = 300
)

// GameState represents the current state of the game
type GameState int

const (
	// StatePaused freezes movement and waits for a key press
	StatePaused GameState = iota
	// StateRunning simulates every frame
	StateRunning
)

func (s GameState) String() string {
	if s == StateRunning {
		return "running"
	}
	return "paused"
}

// GameWorld drives the frame loop: it owns the entities of the round, applies
// player input, and reacts to the events entities report through ecs.EventSink.
// It is not safe for concurrent use; input setters must be called from the
// same goroutine as Frame.
type GameWorld struct {
	world    *ecs.World
	spawner  *spawners.EntitySpawner
	renderer Renderer
	clock    Clock
	events   *ecs.EventManager
	log      *zap.Logger

	ship       *entities.Ship
	alienCount int
	roundID    uuid.UUID

	// True while gameplay is held until a key is typed
	waitingForKeyPress bool
	// Typed keys seen while waiting; the round starts when it reaches one
	pressCount int
	// Text shown while waiting
	message string
	input   InputState

	screenWidth    int
	moveSpeed      float64
	firingInterval time.Duration
	speedUp        float64

	lastFrame time.Duration
	lastFire  time.Duration
	hasFired  bool
}

// NewGameWorld creates a game world showing a frozen first round, waiting for
// the first key press.
func NewGameWorld(
	cfg *config.Config,
	spawner *spawners.EntitySpawner,
	renderer Renderer,
	clock Clock,
	events *ecs.EventManager,
	log *zap.Logger,
) *GameWorld {
	w := &GameWorld{
		world:              ecs.NewWorld(),
		spawner:            spawner,
		renderer:           renderer,
		clock:              clock,
		events:             events,
		log:                log,
		waitingForKeyPress: true,
		pressCount:         1,
		screenWidth:        cfg.Window.Width,
		moveSpeed:          cfg.Ship.MoveSpeed,
		firingInterval:     cfg.Weapon.FiringInterval,
		speedUp:            cfg.Aliens.SpeedUp,
	}
	w.initEntities()
	w.lastFrame = clock.Now()
	return w
}

// initEntities places the ship and the alien fleet
func (w *GameWorld) initEntities() {
	w.ship = w.spawner.CreateShip(w)
	w.world.Add(w.ship)

	fleet := w.spawner.CreateAlienFleet(w)
	for _, alien := range fleet {
		w.world.Add(alien)
	}
	w.alienCount = len(fleet)
}

// StartRound clears the field and sets up a fresh round, then runs it
func (w *GameWorld) StartRound() {
	w.world.Clear()
	w.initEntities()

	w.input.Reset()
	w.hasFired = false
	w.lastFire = 0
	w.roundID = uuid.New()
	w.waitingForKeyPress = false

	w.events.Emit(RoundStartedEvent{RoundID: w.roundID, Aliens: w.alienCount})
}

// KeyTyped is the "any key" signal, sent when a key is released. While
// waiting, the first typed key after launch starts the game; after a round
// ends one typed key is absorbed first, usually the release of a key that was
// held when the round ended.
func (w *GameWorld) KeyTyped() {
	if !w.waitingForKeyPress {
		return
	}
	if w.pressCount == 1 {
		w.pressCount = 0
		w.StartRound()
		return
	}
	w.pressCount++
	w.log.Debug("key absorbed while waiting", zap.Int("presses", w.pressCount))
}

// SetMoveLeft records the left key; ignored while waiting for a key press
func (w *GameWorld) SetMoveLeft(pressed bool) {
	if !w.waitingForKeyPress {
		w.input.Left = pressed
	}
}

// SetMoveRight records the right key; ignored while waiting for a key press
func (w *GameWorld) SetMoveRight(pressed bool) {
	if !w.waitingForKeyPress {
		w.input.Right = pressed
	}
}

// SetFiring records the fire key; ignored while waiting for a key press
func (w *GameWorld) SetFiring(pressed bool) {
	if !w.waitingForKeyPress {
		w.input.Fire = pressed
	}
}

// Frame runs one iteration of the game loop
func (w *GameWorld) Frame() {
	now := w.clock.Now()
	delta := now - w.lastFrame
	w.lastFrame = now

	w.renderer.Clear()

	if !w.waitingForKeyPress {
		w.world.Move(delta)
	}
	w.world.Draw(w.renderer)

	w.world.ResolveCollisions()
	w.world.ApplyRemovals()
	if w.world.RunLogicPass() {
		w.log.Debug("logic pass", zap.Int("aliens", w.alienCount))
	}

	if w.waitingForKeyPress {
		w.drawPrompt()
	}
	w.renderer.Present()

	w.steer()
	if w.input.Fire {
		w.tryToFire(now)
	}
}

// steer sets the ship's velocity from the held keys
func (w *GameWorld) steer() {
	w.ship.SetHorizontalVelocity(float64(w.input.Direction()) * w.moveSpeed)
}

// tryToFire spawns a shot unless the last one was fired too recently
func (w *GameWorld) tryToFire(now time.Duration) {
	if w.hasFired && now-w.lastFire < w.firingInterval {
		return
	}

	w.lastFire = now
	w.hasFired = true
	shot := w.spawner.CreateShot(w, w.ship)
	w.world.Add(shot)

	w.events.Emit(ShotFiredEvent{RoundID: w.roundID, ShotID: shot.ID(), X: shot.X(), Y: shot.Y()})
}

func (w *GameWorld) drawPrompt() {
	if w.message != "" {
		w.renderer.DrawText(w.message, w.centerX(w.message), messageY)
	}
	w.renderer.DrawText(PromptMessage, w.centerX(PromptMessage), promptY)
}

func (w *GameWorld) centerX(text string) int {
	return (w.screenWidth - len(text)*config.GlyphWidth) / 2
}

// pause ends the round with a message. Held keys are released so nothing
// carries over into the waiting screen.
func (w *GameWorld) pause(message string) bool {
	if w.waitingForKeyPress {
		return false
	}
	w.message = message
	w.waitingForKeyPress = true
	w.input.Reset()
	return true
}

// RequestRemoval implements ecs.EventSink
func (w *GameWorld) RequestRemoval(actor ecs.Actor) {
	w.world.RequestRemoval(actor)
}

// RequestLogicPass implements ecs.EventSink
func (w *GameWorld) RequestLogicPass() {
	w.world.RequestLogicPass()
}

// NotifyPlayerDied implements ecs.EventSink
func (w *GameWorld) NotifyPlayerDied() {
	if w.pause(DeathMessage) {
		w.events.Emit(PlayerDiedEvent{RoundID: w.roundID, Remaining: w.alienCount})
	}
}

// NotifyPlayerWon implements ecs.EventSink
func (w *GameWorld) NotifyPlayerWon() {
	if w.pause(WinMessage) {
		w.events.Emit(PlayerWonEvent{RoundID: w.roundID})
	}
}

// NotifyAlienKilled implements ecs.EventSink. The player wins when the count
// reaches zero; otherwise every remaining alien speeds up.
func (w *GameWorld) NotifyAlienKilled() {
	w.alienCount--
	w.events.Emit(AlienKilledEvent{RoundID: w.roundID, Remaining: w.alienCount})

	if w.alienCount == 0 {
		w.NotifyPlayerWon()
		return
	}
	w.world.Accelerate(w.speedUp)
}

// State returns whether the game is running or waiting for a key press
func (w *GameWorld) State() GameState {
	if w.waitingForKeyPress {
		return StatePaused
	}
	return StateRunning
}

// Message returns the end-of-round text, empty before the first round
func (w *GameWorld) Message() string {
	return w.message
}

// AlienCount returns the number of aliens still alive
func (w *GameWorld) AlienCount() int {
	return w.alienCount
}

// Ship returns the player's ship
func (w *GameWorld) Ship() *entities.Ship {
	return w.ship
}

// Actors returns the live entities in update order
func (w *GameWorld) Actors() []ecs.Actor {
	return w.world.Actors()
}

// Input returns the held-key flags as last recorded
func (w *GameWorld) Input() InputState {
	return w.input
}

// RoundID identifies the current round; zero before the first one starts
func (w *GameWorld) RoundID() uuid.UUID {
	return w.roundID
}
