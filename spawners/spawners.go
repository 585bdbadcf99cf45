package spawners

import (
	"ebiten-invaders/config"
	"ebiten-invaders/ecs"
	"ebiten-invaders/entities"
)

// SpriteSource hands out shared sprites by asset path
type SpriteSource interface {
	Get(path string) ecs.Sprite
}

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	sprites SpriteSource
	ship    config.ShipConfig
	weapon  config.WeaponConfig
	aliens  config.AliensConfig
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(sprites SpriteSource, cfg *config.Config) *EntitySpawner {
	return &EntitySpawner{
		sprites: sprites,
		ship:    cfg.Ship,
		weapon:  cfg.Weapon,
		aliens:  cfg.Aliens,
	}
}

// CreateShip creates the player ship at its start position
func (s *EntitySpawner) CreateShip(sink ecs.EventSink) *entities.Ship {
	return entities.NewShip(
		sink,
		s.sprites.Get(s.ship.Sprite),
		s.ship.StartX, s.ship.StartY,
		s.ship.MinX, s.ship.MaxX,
	)
}

// CreateAlienFleet creates the alien grid, row by row from the top left
func (s *EntitySpawner) CreateAlienFleet(sink ecs.EventSink) []*entities.Alien {
	cfg := s.aliens
	sprite := s.sprites.Get(cfg.Sprite)
	bounds := entities.AlienBounds{
		MinX:      cfg.MinX,
		MaxX:      cfg.MaxX,
		StepDown:  cfg.StepDown,
		InvasionY: cfg.InvasionY,
	}

	fleet := make([]*entities.Alien, 0, cfg.Rows*cfg.Columns)
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Columns; col++ {
			x := cfg.OriginX + float64(col)*cfg.PitchX
			y := cfg.OriginY + float64(row)*cfg.PitchY
			fleet = append(fleet, entities.NewAlien(sink, sprite, x, y, cfg.Speed, bounds))
		}
	}
	return fleet
}

// CreateShot creates a shot just above the given ship
func (s *EntitySpawner) CreateShot(sink ecs.EventSink, ship ecs.Actor) *entities.Shot {
	return entities.NewShot(
		sink,
		s.sprites.Get(s.weapon.Sprite),
		ship.X()+s.weapon.OffsetX,
		ship.Y()+s.weapon.OffsetY,
		s.weapon.ShotSpeed,
		s.weapon.DespawnY,
	)
}
