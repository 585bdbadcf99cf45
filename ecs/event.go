package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// Subscription identifies one registered handler so it can be removed later.
type Subscription uint64

type subscriber struct {
	id      Subscription
	handler EventHandler
}

// EventManager dispatches events synchronously, in subscription order.
type EventManager struct {
	subscribers map[EventType][]subscriber
	nextID      Subscription
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscriber),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) Subscription {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscriber{id: em.nextID, handler: handler})
	return em.nextID
}

// Unsubscribe removes a handler registered for eventType
func (em *EventManager) Unsubscribe(eventType EventType, sub Subscription) {
	subs, exists := em.subscribers[eventType]
	if !exists {
		return
	}

	kept := subs[:0]
	for _, s := range subs {
		if s.id != sub {
			kept = append(kept, s)
		}
	}

	if len(kept) == 0 {
		delete(em.subscribers, eventType)
	} else {
		em.subscribers[eventType] = kept
	}
}

// Emit dispatches an event to all subscribed handlers
func (em *EventManager) Emit(event Event) {
	for _, s := range em.subscribers[event.Type()] {
		s.handler(event)
	}
}
