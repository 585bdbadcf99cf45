package ecs

//go:generate go tool mockgen -destination=./mocks/event_sink_mock.go -package=mocks . EventSink

// EventSink is the only handle an entity holds on the world that owns it.
type EventSink interface {
	// RequestRemoval marks an actor for removal at the end of the collision pass.
	RequestRemoval(actor Actor)
	// RequestLogicPass asks for every actor's DoLogic to run this frame.
	RequestLogicPass()
	NotifyPlayerDied()
	NotifyPlayerWon()
	NotifyAlienKilled()
}
