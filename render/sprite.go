package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"ebiten-invaders/config"
	"ebiten-invaders/ecs"
)

// ImageSprite is an ecs.Sprite backed by an ebiten image
type ImageSprite struct {
	img *ebiten.Image
}

// NewImageSprite wraps an ebiten image
func NewImageSprite(img *ebiten.Image) *ImageSprite {
	return &ImageSprite{img: img}
}

func (s *ImageSprite) Width() int { return s.img.Bounds().Dx() }

func (s *ImageSprite) Height() int { return s.img.Bounds().Dy() }

// Image returns the underlying ebiten image
func (s *ImageSprite) Image() *ebiten.Image { return s.img }

// SpriteStore loads sprite images from disk and caches them by path
type SpriteStore struct {
	sprites           map[string]*ImageSprite
	placeholderWidth  int
	placeholderHeight int
	log               *zap.Logger
}

// NewSpriteStore creates an empty store. Missing assets are replaced with a
// solid block of the configured placeholder size.
func NewSpriteStore(cfg config.SpritesConfig, log *zap.Logger) *SpriteStore {
	return &SpriteStore{
		sprites:           make(map[string]*ImageSprite),
		placeholderWidth:  cfg.PlaceholderWidth,
		placeholderHeight: cfg.PlaceholderHeight,
		log:               log,
	}
}

// Load decodes the image at path and caches it
func (s *SpriteStore) Load(path string) (*ImageSprite, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	sprite := NewImageSprite(ebiten.NewImageFromImage(img))
	s.sprites[path] = sprite
	return sprite, nil
}

// Get returns the sprite for path, loading it on first use. A sprite that
// cannot be loaded is replaced by a placeholder so the game stays playable.
func (s *SpriteStore) Get(path string) ecs.Sprite {
	if sprite, ok := s.sprites[path]; ok {
		return sprite
	}

	sprite, err := s.Load(path)
	if err != nil {
		s.log.Warn("using placeholder sprite", zap.String("path", path), zap.Error(err))
		sprite = s.placeholder()
		s.sprites[path] = sprite
	}
	return sprite
}

// Preload warms the cache for the given paths
func (s *SpriteStore) Preload(paths ...string) {
	for _, path := range paths {
		s.Get(path)
	}
}

func (s *SpriteStore) placeholder() *ImageSprite {
	img := ebiten.NewImage(s.placeholderWidth, s.placeholderHeight)
	img.Fill(color.RGBA{255, 0, 255, 255})
	return NewImageSprite(img)
}

// decodeFile reads a gif or png from disk
func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}
	return img, nil
}
