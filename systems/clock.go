package systems

import "time"

// Clock reports monotonic time since an arbitrary origin
type Clock interface {
	Now() time.Duration
}

// SystemClock measures wall time since it was created
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}
