package ecs

import "time"

// World owns the actors of a round. Insertion order is update, draw and
// collision order. Removals requested during a frame are held in a side set
// and applied at one point, so the actor slice is never mutated mid-scan.
type World struct {
	actors []Actor
	// Actors waiting to be purged, keyed so a double request is a no-op
	removals map[EntityID]struct{}
	// Latched by RequestLogicPass, consumed by RunLogicPass
	logicRequired bool
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		actors:   make([]Actor, 0, 64),
		removals: make(map[EntityID]struct{}),
	}
}

// Add appends an actor to the world
func (w *World) Add(actor Actor) {
	w.actors = append(w.actors, actor)
}

// Clear drops every actor and any pending removal or logic request
func (w *World) Clear() {
	clear(w.actors)
	w.actors = w.actors[:0]
	clear(w.removals)
	w.logicRequired = false
}

// Actors returns the live actors in insertion order. The slice must not be
// modified by the caller.
func (w *World) Actors() []Actor {
	return w.actors
}

// Len returns the number of live actors
func (w *World) Len() int {
	return len(w.actors)
}

// Move advances every actor by the elapsed time
func (w *World) Move(delta time.Duration) {
	for i := 0; i < len(w.actors); i++ {
		w.actors[i].Move(delta)
	}
}

// Draw renders every actor onto the surface
func (w *World) Draw(surface Surface) {
	for i := 0; i < len(w.actors); i++ {
		w.actors[i].Draw(surface)
	}
}

// ResolveCollisions tests every unordered pair once and notifies both sides,
// lower index first.
func (w *World) ResolveCollisions() {
	for p := 0; p < len(w.actors); p++ {
		for s := p + 1; s < len(w.actors); s++ {
			me, him := w.actors[p], w.actors[s]
			if me.CollidesWith(him) {
				me.CollidedWith(him)
				him.CollidedWith(me)
			}
		}
	}
}

// RequestRemoval marks an actor for removal by the next ApplyRemovals
func (w *World) RequestRemoval(actor Actor) {
	w.removals[actor.ID()] = struct{}{}
}

// PendingRemoval reports whether the actor is marked for removal
func (w *World) PendingRemoval(actor Actor) bool {
	_, ok := w.removals[actor.ID()]
	return ok
}

// PendingRemovals returns how many actors are marked for removal
func (w *World) PendingRemovals() int {
	return len(w.removals)
}

// ApplyRemovals purges marked actors and empties the removal set. It returns
// the number of actors removed.
func (w *World) ApplyRemovals() int {
	if len(w.removals) == 0 {
		return 0
	}

	kept := w.actors[:0]
	for _, actor := range w.actors {
		if _, gone := w.removals[actor.ID()]; !gone {
			kept = append(kept, actor)
		}
	}
	removed := len(w.actors) - len(kept)
	clear(w.actors[len(kept):])
	w.actors = kept
	clear(w.removals)
	return removed
}

// RequestLogicPass latches a logic pass for the next RunLogicPass
func (w *World) RequestLogicPass() {
	w.logicRequired = true
}

// RunLogicPass calls DoLogic on every actor if a pass was requested. The
// latch is cleared before the callbacks run: a request made from inside
// DoLogic is kept for the next frame instead of being lost or re-run now.
func (w *World) RunLogicPass() bool {
	if !w.logicRequired {
		return false
	}
	w.logicRequired = false

	for i := 0; i < len(w.actors); i++ {
		w.actors[i].DoLogic()
	}
	return true
}

// Accelerate forwards a speed-up to every actor; variants decide whether it
// applies to them.
func (w *World) Accelerate(factor float64) {
	for _, actor := range w.actors {
		actor.Accelerate(factor)
	}
}
