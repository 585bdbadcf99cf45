package config

// Screen layout configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 800
	WindowHeight = 600

	// Ticks per second; each tick runs one game loop frame
	TicksPerSecond = 100

	// Width in pixels of one debug-font glyph, used to center text
	GlyphWidth = 6
)
