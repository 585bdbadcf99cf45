package entities

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"ebiten-invaders/ecs/mocks"
)

func TestShip_MovesWithVelocity(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)

	s := NewShip(sink, shipSprite, 370, 550, 10, 750)
	s.SetHorizontalVelocity(-300)
	s.Move(100 * time.Millisecond)

	if s.X() != 340 || s.Y() != 550 {
		t.Errorf("Position = (%v, %v), want (340, 550)", s.X(), s.Y())
	}
}

func TestShip_StopsAtEdges(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		dx   float64
		want float64
	}{
		{"left edge blocks left", 5, -300, 5},
		{"left edge allows right", 5, 300, 35},
		{"right edge blocks right", 760, 300, 760},
		{"right edge allows left", 760, -300, 730},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := NewShip(mocks.NewMockEventSink(ctrl), shipSprite, tt.x, 550, 10, 750)
			s.SetHorizontalVelocity(tt.dx)

			s.Move(100 * time.Millisecond)

			if s.X() != tt.want {
				t.Errorf("X = %v, want %v", s.X(), tt.want)
			}
		})
	}
}

func TestShip_AlienCollisionKillsPlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().NotifyPlayerDied().Times(1)

	s := NewShip(sink, shipSprite, 370, 550, 10, 750)
	a := NewAlien(sink, alienSprite, 375, 555, -75, testBounds)

	s.CollidedWith(a)
}

func TestShip_IgnoresShots(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)

	s := NewShip(sink, shipSprite, 370, 550, 10, 750)
	shot := NewShot(sink, shotSprite, 380, 540, -300, -100)

	s.CollidedWith(shot)
}
