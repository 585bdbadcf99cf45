package systems

import (
	"image/color"
)

// MessageType defines different types of messages that can appear in the log
type MessageType int

const (
	// MessageTypeNormal is for routine messages (light gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeCombat is for kills (red)
	MessageTypeCombat
	// MessageTypeAlert is for the end of a round (bright yellow)
	MessageTypeAlert
	// MessageTypeSystem is for round bookkeeping (purple)
	MessageTypeSystem
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeCombat:
		return color.RGBA{255, 100, 100, 255} // Red
	case MessageTypeAlert:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	case MessageTypeSystem:
		return color.RGBA{186, 85, 211, 255} // Medium Orchid
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray
	}
}
