package systems

import (
	"github.com/google/uuid"

	"ebiten-invaders/ecs"
)

// Event type constants
const (
	EventRoundStarted ecs.EventType = "round_started"
	EventShotFired    ecs.EventType = "shot_fired"
	EventAlienKilled  ecs.EventType = "alien_killed"
	EventPlayerDied   ecs.EventType = "player_died"
	EventPlayerWon    ecs.EventType = "player_won"
)

// RoundStartedEvent is emitted when a key press starts a fresh round
type RoundStartedEvent struct {
	RoundID uuid.UUID
	Aliens  int // Size of the fleet
}

// Type returns the event type
func (e RoundStartedEvent) Type() ecs.EventType {
	return EventRoundStarted
}

// ShotFiredEvent is emitted when the ship fires
type ShotFiredEvent struct {
	RoundID uuid.UUID
	ShotID  ecs.EntityID
	X, Y    float64 // Spawn position
}

// Type returns the event type
func (e ShotFiredEvent) Type() ecs.EventType {
	return EventShotFired
}

// AlienKilledEvent is emitted each time a shot destroys an alien
type AlienKilledEvent struct {
	RoundID   uuid.UUID
	Remaining int
}

// Type returns the event type
func (e AlienKilledEvent) Type() ecs.EventType {
	return EventAlienKilled
}

// PlayerDiedEvent is emitted when an alien reaches the ship or the bottom
type PlayerDiedEvent struct {
	RoundID   uuid.UUID
	Remaining int
}

// Type returns the event type
func (e PlayerDiedEvent) Type() ecs.EventType {
	return EventPlayerDied
}

// PlayerWonEvent is emitted when the last alien is destroyed
type PlayerWonEvent struct {
	RoundID uuid.UUID
}

// Type returns the event type
func (e PlayerWonEvent) Type() ecs.EventType {
	return EventPlayerWon
}
