package systems

// InputState holds the held-key flags written by the platform and read once
// per frame by the game world.
type InputState struct {
	Left  bool
	Right bool
	Fire  bool
}

// Reset releases every key
func (s *InputState) Reset() {
	*s = InputState{}
}

// Direction resolves the horizontal steering: -1, 0 or +1. Both keys held
// cancel out.
func (s InputState) Direction() int {
	switch {
	case s.Left && !s.Right:
		return -1
	case s.Right && !s.Left:
		return 1
	default:
		return 0
	}
}
