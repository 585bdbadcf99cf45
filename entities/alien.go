package entities

import (
	"time"

	"ebiten-invaders/ecs"
)

// AlienBounds holds the limits that drive the fleet's sweep.
type AlienBounds struct {
	MinX      float64 // turn around when heading left past this
	MaxX      float64 // turn around when heading right past this
	StepDown  float64 // pixels dropped on each turn
	InvasionY float64 // dropping below this line kills the player
}

// Alien sweeps sideways; the whole fleet turns and drops together when any
// one of them reaches a side.
type Alien struct {
	*ecs.Entity
	sink   ecs.EventSink
	bounds AlienBounds
	dead   bool
}

// NewAlien creates an alien at (x, y) moving at speed pixels/sec
func NewAlien(sink ecs.EventSink, sprite ecs.Sprite, x, y, speed float64, bounds AlienBounds) *Alien {
	a := &Alien{
		Entity: ecs.NewEntity(ecs.KindAlien, sprite, x, y),
		sink:   sink,
		bounds: bounds,
	}
	a.SetHorizontalVelocity(speed)
	return a
}

// Move requests a logic pass when this alien reaches a side, then moves
func (a *Alien) Move(delta time.Duration) {
	dx := a.HorizontalVelocity()
	if dx < 0 && a.X() < a.bounds.MinX {
		a.sink.RequestLogicPass()
	}
	if dx > 0 && a.X() > a.bounds.MaxX {
		a.sink.RequestLogicPass()
	}
	a.Entity.Move(delta)
}

// DoLogic turns the alien around and drops it one row
func (a *Alien) DoLogic() {
	a.SetHorizontalVelocity(-a.HorizontalVelocity())
	a.SetY(a.Y() + a.bounds.StepDown)

	if a.Y() > a.bounds.InvasionY {
		a.sink.NotifyPlayerDied()
	}
}

// CollidedWith handles being hit by a shot. Only the first hit counts: a dead
// alien, or a shot that already killed something, is ignored.
func (a *Alien) CollidedWith(other ecs.Actor) {
	if a.dead || other.Kind() != ecs.KindShot {
		return
	}
	if shot, ok := other.(ecs.Expendable); ok && !shot.Expend() {
		return
	}

	a.dead = true
	a.sink.RequestRemoval(a)
	a.sink.RequestRemoval(other)
	a.sink.NotifyAlienKilled()
}

// Accelerate speeds the alien up, keeping its direction
func (a *Alien) Accelerate(factor float64) {
	a.ScaleSpeed(factor)
}

// Dead reports whether the alien has been hit
func (a *Alien) Dead() bool {
	return a.dead
}
