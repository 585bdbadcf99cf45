package systems

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"ebiten-invaders/ecs"
)

func newObservedLogger() (*EventLogger, *MessageLog, *observer.ObservedLogs, *ecs.EventManager) {
	core, logs := observer.New(zapcore.DebugLevel)
	messages := NewMessageLog()
	events := ecs.NewEventManager()
	l := NewEventLogger(zap.New(core), messages)
	l.Initialize(events)
	return l, messages, logs, events
}

func TestEventLogger_RoundLifecycle(t *testing.T) {
	_, messages, logs, events := newObservedLogger()
	round := uuid.New()

	events.Emit(RoundStartedEvent{RoundID: round, Aliens: 60})
	events.Emit(ShotFiredEvent{RoundID: round, ShotID: 7, X: 380, Y: 520})
	events.Emit(AlienKilledEvent{RoundID: round, Remaining: 59})
	events.Emit(PlayerDiedEvent{RoundID: round, Remaining: 59})

	started := logs.FilterMessage("round started").All()
	if len(started) != 1 {
		t.Fatalf("round started entries = %d, want 1", len(started))
	}
	if got := started[0].ContextMap()["round"]; got != round.String() {
		t.Errorf("round field = %v, want %v", got, round)
	}
	if logs.FilterMessage("shot fired").Len() != 1 {
		t.Error("shot not logged")
	}
	died := logs.FilterMessage("player died").All()
	if len(died) != 1 || died[0].Level != zapcore.InfoLevel {
		t.Errorf("player died entries = %v", died)
	}

	// Shots stay out of the on-screen log.
	if len(messages.Messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(messages.Messages))
	}
	if !strings.Contains(messages.Messages[0].Text, round.String()[:8]) {
		t.Errorf("start message %q lacks the round id", messages.Messages[0].Text)
	}
	if messages.Messages[1].Type != MessageTypeCombat {
		t.Errorf("kill message type = %v, want combat", messages.Messages[1].Type)
	}
	if messages.Messages[2].Type != MessageTypeAlert {
		t.Errorf("death message type = %v, want alert", messages.Messages[2].Type)
	}
}

func TestEventLogger_InitializeOnce(t *testing.T) {
	l, messages, _, events := newObservedLogger()
	l.Initialize(events)

	events.Emit(PlayerWonEvent{RoundID: uuid.New()})

	if len(messages.Messages) != 1 {
		t.Errorf("messages = %d, want 1", len(messages.Messages))
	}
}

func TestEventLogger_CloseUnsubscribes(t *testing.T) {
	l, messages, logs, events := newObservedLogger()

	l.Close()
	l.Close()
	events.Emit(RoundStartedEvent{RoundID: uuid.New(), Aliens: 60})
	events.Emit(PlayerDiedEvent{RoundID: uuid.New()})

	if len(messages.Messages) != 0 {
		t.Errorf("messages = %d after Close, want 0", len(messages.Messages))
	}
	if logs.Len() != 0 {
		t.Errorf("log entries = %d after Close, want 0", logs.Len())
	}

	// A closed logger can be attached again.
	l.Initialize(events)
	events.Emit(PlayerWonEvent{RoundID: uuid.New()})
	if len(messages.Messages) != 1 {
		t.Errorf("messages = %d after re-Initialize, want 1", len(messages.Messages))
	}
}
