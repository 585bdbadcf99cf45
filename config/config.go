package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultPath is where the game looks for its config when no path is given.
const DefaultPath = "config/invaders.toml"

// ErrInvalid is wrapped by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Config holds every tunable setting of the game, one section per TOML table.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Ship    ShipConfig    `toml:"ship"`
	Weapon  WeaponConfig  `toml:"weapon"`
	Aliens  AliensConfig  `toml:"aliens"`
	Sprites SpritesConfig `toml:"sprites"`
	Logging LoggingConfig `toml:"logging"`
}

// WindowConfig sizes and paces the game window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	TPS    int    `toml:"tps"`
}

// ShipConfig places the player ship and bounds its movement.
type ShipConfig struct {
	StartX    float64 `toml:"start_x"`
	StartY    float64 `toml:"start_y"`
	MoveSpeed float64 `toml:"move_speed"` // pixels/sec
	MinX      float64 `toml:"min_x"`
	MaxX      float64 `toml:"max_x"`
	Sprite    string  `toml:"sprite"`
}

// WeaponConfig controls shot spawning, speed and fire rate.
type WeaponConfig struct {
	FiringInterval time.Duration `toml:"firing_interval"`
	ShotSpeed      float64       `toml:"shot_speed"` // pixels/sec, negative is up
	OffsetX        float64       `toml:"offset_x"`
	OffsetY        float64       `toml:"offset_y"`
	DespawnY       float64       `toml:"despawn_y"`
	Sprite         string        `toml:"sprite"`
}

// AliensConfig lays out the alien fleet and drives its sweep.
type AliensConfig struct {
	Rows      int     `toml:"rows"`
	Columns   int     `toml:"columns"`
	OriginX   float64 `toml:"origin_x"`
	OriginY   float64 `toml:"origin_y"`
	PitchX    float64 `toml:"pitch_x"`
	PitchY    float64 `toml:"pitch_y"`
	Speed     float64 `toml:"speed"`   // initial horizontal velocity, pixels/sec
	SpeedUp   float64 `toml:"speedup"` // multiplier applied per kill
	StepDown  float64 `toml:"step_down"`
	MinX      float64 `toml:"min_x"`
	MaxX      float64 `toml:"max_x"`
	InvasionY float64 `toml:"invasion_y"`
	Sprite    string  `toml:"sprite"`
}

// SpritesConfig sizes the stand-in image used when a sprite file can't be loaded.
type SpritesConfig struct {
	PlaceholderWidth  int `toml:"placeholder_width"`
	PlaceholderHeight int `toml:"placeholder_height"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads the TOML file at path on top of Defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadOrDefault behaves like Load but returns Defaults when the file does not
// exist. found reports whether a file was read.
func LoadOrDefault(path string) (cfg *Config, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err = parse(path, data)
	return cfg, err == nil, err
}

func parse(path string, data []byte) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the game loop can't run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Window.TPS)
	case c.Ship.MoveSpeed <= 0:
		return fmt.Errorf("%w: ship move_speed %v", ErrInvalid, c.Ship.MoveSpeed)
	case c.Weapon.FiringInterval < 0:
		return fmt.Errorf("%w: weapon firing_interval %v", ErrInvalid, c.Weapon.FiringInterval)
	case c.Aliens.Rows <= 0 || c.Aliens.Columns <= 0:
		return fmt.Errorf("%w: alien grid %dx%d", ErrInvalid, c.Aliens.Rows, c.Aliens.Columns)
	case c.Aliens.SpeedUp < 1:
		return fmt.Errorf("%w: aliens speedup %v", ErrInvalid, c.Aliens.SpeedUp)
	case c.Sprites.PlaceholderWidth <= 0 || c.Sprites.PlaceholderHeight <= 0:
		return fmt.Errorf("%w: sprite placeholder %dx%d", ErrInvalid,
			c.Sprites.PlaceholderWidth, c.Sprites.PlaceholderHeight)
	}
	return nil
}

// Defaults returns the classic layout: 800x600, 5x12 aliens, 300 px/s ship.
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Space Invaders",
			TPS:    TicksPerSecond,
		},
		Ship: ShipConfig{
			StartX:    370,
			StartY:    550,
			MoveSpeed: 300,
			MinX:      10,
			MaxX:      750,
			Sprite:    "sprites/ship.gif",
		},
		Weapon: WeaponConfig{
			FiringInterval: 500 * time.Millisecond,
			ShotSpeed:      -300,
			OffsetX:        10,
			OffsetY:        -30,
			DespawnY:       -100,
			Sprite:         "sprites/shot.gif",
		},
		Aliens: AliensConfig{
			Rows:      5,
			Columns:   12,
			OriginX:   100,
			OriginY:   50,
			PitchX:    50,
			PitchY:    30,
			Speed:     -75,
			SpeedUp:   1.02,
			StepDown:  10,
			MinX:      10,
			MaxX:      750,
			InvasionY: 570,
			Sprite:    "sprites/alien.gif",
		},
		Sprites: SpritesConfig{
			PlaceholderWidth:  30,
			PlaceholderHeight: 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
