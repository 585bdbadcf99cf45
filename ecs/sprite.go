package ecs

// Sprite is a stateless image handle. Many entities may share one sprite;
// the position lives on the entity.
type Sprite interface {
	Width() int
	Height() int
}

// Surface is the drawing target entities render onto each frame.
type Surface interface {
	DrawSprite(sprite Sprite, x, y int)
}
