package systems

import (
	"fmt"

	"go.uber.org/zap"

	"ebiten-invaders/ecs"
)

// EventLogger mirrors game events into the structured log and the in-game
// message log.
type EventLogger struct {
	log      *zap.Logger
	messages *MessageLog
	events   *ecs.EventManager
	subs     map[ecs.EventType]ecs.Subscription
}

// NewEventLogger creates a new event logger
func NewEventLogger(log *zap.Logger, messages *MessageLog) *EventLogger {
	return &EventLogger{log: log, messages: messages}
}

// Initialize sets up event listeners
func (l *EventLogger) Initialize(events *ecs.EventManager) {
	if l.events != nil {
		return
	}
	l.events = events
	l.subs = make(map[ecs.EventType]ecs.Subscription)

	l.subscribe(EventRoundStarted, func(event ecs.Event) {
		e := event.(RoundStartedEvent)
		l.log.Info("round started", zap.Stringer("round", e.RoundID), zap.Int("aliens", e.Aliens))
		l.messages.AddTyped(MessageTypeSystem, fmt.Sprintf("Round %s: %d aliens incoming", shortID(e), e.Aliens))
	})

	l.subscribe(EventShotFired, func(event ecs.Event) {
		e := event.(ShotFiredEvent)
		l.log.Debug("shot fired",
			zap.Stringer("round", e.RoundID),
			zap.Uint64("shot", uint64(e.ShotID)),
			zap.Float64("x", e.X),
			zap.Float64("y", e.Y))
	})

	l.subscribe(EventAlienKilled, func(event ecs.Event) {
		e := event.(AlienKilledEvent)
		l.log.Debug("alien killed", zap.Stringer("round", e.RoundID), zap.Int("remaining", e.Remaining))
		l.messages.AddTyped(MessageTypeCombat, fmt.Sprintf("Alien destroyed, %d left", e.Remaining))
	})

	l.subscribe(EventPlayerDied, func(event ecs.Event) {
		e := event.(PlayerDiedEvent)
		l.log.Info("player died", zap.Stringer("round", e.RoundID), zap.Int("remaining", e.Remaining))
		l.messages.AddAlert(fmt.Sprintf("Ship lost with %d aliens remaining", e.Remaining))
	})

	l.subscribe(EventPlayerWon, func(event ecs.Event) {
		e := event.(PlayerWonEvent)
		l.log.Info("player won", zap.Stringer("round", e.RoundID))
		l.messages.AddAlert("Fleet destroyed!")
	})
}

func (l *EventLogger) subscribe(eventType ecs.EventType, handler ecs.EventHandler) {
	l.subs[eventType] = l.events.Subscribe(eventType, handler)
}

// Close removes every handler registered by Initialize
func (l *EventLogger) Close() {
	if l.events == nil {
		return
	}
	for eventType, sub := range l.subs {
		l.events.Unsubscribe(eventType, sub)
	}
	l.events = nil
	l.subs = nil
}

func shortID(e RoundStartedEvent) string {
	return e.RoundID.String()[:8]
}
