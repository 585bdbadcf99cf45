package entities

import (
	"time"

	"ebiten-invaders/ecs"
)

// Ship is the player's entity. Its horizontal velocity is set from input
// each frame by the game world.
type Ship struct {
	*ecs.Entity
	sink ecs.EventSink
	minX float64
	maxX float64
}

// NewShip creates a ship at (x, y) that stays within [minX, maxX]
func NewShip(sink ecs.EventSink, sprite ecs.Sprite, x, y, minX, maxX float64) *Ship {
	return &Ship{
		Entity: ecs.NewEntity(ecs.KindShip, sprite, x, y),
		sink:   sink,
		minX:   minX,
		maxX:   maxX,
	}
}

// Move refuses to carry the ship past either side of the screen
func (s *Ship) Move(delta time.Duration) {
	dx := s.HorizontalVelocity()
	if dx < 0 && s.X() < s.minX {
		return
	}
	if dx > 0 && s.X() > s.maxX {
		return
	}
	s.Entity.Move(delta)
}

// CollidedWith kills the player when an alien reaches the ship
func (s *Ship) CollidedWith(other ecs.Actor) {
	if other.Kind() == ecs.KindAlien {
		s.sink.NotifyPlayerDied()
	}
}
