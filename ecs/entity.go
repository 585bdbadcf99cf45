package ecs

import (
	"image"
	"math"
	"sync/atomic"
	"time"
)

// EntityID is a unique identifier for an entity
type EntityID uint64

var nextEntityID uint64 = 0

// NewEntityID generates a new unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Kind tags the variant of an actor so collision reactions can tell ships,
// aliens and shots apart without inspecting concrete types.
type Kind int

const (
	KindShip Kind = iota
	KindAlien
	KindShot
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAlien:
		return "alien"
	case KindShot:
		return "shot"
	default:
		return "unknown"
	}
}

// Actor is any simulated object owned by the World.
type Actor interface {
	ID() EntityID
	Kind() Kind
	X() float64
	Y() float64
	HorizontalVelocity() float64
	SetHorizontalVelocity(dx float64)
	Bounds() image.Rectangle

	// Move advances the position by velocity scaled by the elapsed time.
	Move(delta time.Duration)
	// Draw renders the sprite at the rounded position.
	Draw(surface Surface)
	// CollidesWith reports whether the bounding boxes intersect.
	CollidesWith(other Actor) bool
	// CollidedWith reacts to a collision. Removal is deferred, so it may be
	// called again for an actor already marked for removal in the same frame.
	CollidedWith(other Actor)
	// DoLogic runs only during a requested logic pass.
	DoLogic()
	// Accelerate scales the horizontal speed; a no-op for most variants.
	Accelerate(factor float64)
}

// Expendable is implemented by actors that are used up by their first hit.
type Expendable interface {
	// Expend returns true exactly once.
	Expend() bool
}

// Entity is the shared state and default behavior embedded by every variant.
type Entity struct {
	id     EntityID
	kind   Kind
	x, y   float64
	dx, dy float64
	sprite Sprite
}

// NewEntity creates an entity of the given kind at (x, y)
func NewEntity(kind Kind, sprite Sprite, x, y float64) *Entity {
	return &Entity{
		id:     NewEntityID(),
		kind:   kind,
		x:      x,
		y:      y,
		sprite: sprite,
	}
}

func (e *Entity) ID() EntityID { return e.id }

func (e *Entity) Kind() Kind { return e.kind }

func (e *Entity) X() float64 { return e.x }

func (e *Entity) Y() float64 { return e.y }

func (e *Entity) HorizontalVelocity() float64 { return e.dx }

func (e *Entity) SetHorizontalVelocity(dx float64) { e.dx = dx }

func (e *Entity) VerticalVelocity() float64 { return e.dy }

func (e *Entity) SetVerticalVelocity(dy float64) { e.dy = dy }

// SetY moves the entity vertically without going through velocity; used by
// step-down logic.
func (e *Entity) SetY(y float64) { e.y = y }

// Move advances position by velocity * seconds elapsed
func (e *Entity) Move(delta time.Duration) {
	secs := delta.Seconds()
	e.x += e.dx * secs
	e.y += e.dy * secs
}

// Draw renders the sprite at the integer position
func (e *Entity) Draw(surface Surface) {
	surface.DrawSprite(e.sprite, int(e.x), int(e.y))
}

// Bounds is computed from the current position on every call, so it is never
// stale within a frame.
func (e *Entity) Bounds() image.Rectangle {
	x, y := int(e.x), int(e.y)
	return image.Rect(x, y, x+e.sprite.Width(), y+e.sprite.Height())
}

// CollidesWith tests bounding rectangle intersection
func (e *Entity) CollidesWith(other Actor) bool {
	return e.Bounds().Overlaps(other.Bounds())
}

// CollidedWith does nothing by default
func (e *Entity) CollidedWith(other Actor) {}

// DoLogic does nothing by default
func (e *Entity) DoLogic() {}

// Accelerate does nothing by default
func (e *Entity) Accelerate(factor float64) {}

// ScaleSpeed multiplies the horizontal speed magnitude, keeping its sign.
// Variants that accelerate call it from their Accelerate override.
func (e *Entity) ScaleSpeed(factor float64) {
	e.dx = math.Copysign(math.Abs(e.dx)*factor, e.dx)
}
