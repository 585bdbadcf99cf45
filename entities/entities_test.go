package entities

type boxSprite struct{ w, h int }

func (s boxSprite) Width() int  { return s.w }
func (s boxSprite) Height() int { return s.h }

var (
	shipSprite  = boxSprite{30, 20}
	alienSprite = boxSprite{30, 20}
	shotSprite  = boxSprite{5, 10}
)

var testBounds = AlienBounds{MinX: 10, MaxX: 750, StepDown: 10, InvasionY: 570}
