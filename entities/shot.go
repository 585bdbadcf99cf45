package entities

import (
	"time"

	"ebiten-invaders/ecs"
)

// Shot flies straight up from the ship and kills at most one alien.
type Shot struct {
	*ecs.Entity
	sink     ecs.EventSink
	despawnY float64
	spent    bool
}

// NewShot creates a shot at (x, y) with vertical speed in pixels/sec
func NewShot(sink ecs.EventSink, sprite ecs.Sprite, x, y, speed, despawnY float64) *Shot {
	s := &Shot{
		Entity:   ecs.NewEntity(ecs.KindShot, sprite, x, y),
		sink:     sink,
		despawnY: despawnY,
	}
	s.SetVerticalVelocity(speed)
	return s
}

// Move advances the shot and removes it once it leaves the top of the screen
func (s *Shot) Move(delta time.Duration) {
	s.Entity.Move(delta)

	if s.Y() < s.despawnY {
		s.sink.RequestRemoval(s)
	}
}

// CollidedWith removes the shot once it has been spent on an alien. The alien
// decides whether the hit counts.
func (s *Shot) CollidedWith(other ecs.Actor) {
	if other.Kind() == ecs.KindAlien && s.spent {
		s.sink.RequestRemoval(s)
	}
}

// Expend marks the shot as used; only the first call returns true
func (s *Shot) Expend() bool {
	if s.spent {
		return false
	}
	s.spent = true
	return true
}

// Spent reports whether the shot has already hit something
func (s *Shot) Spent() bool {
	return s.spent
}
