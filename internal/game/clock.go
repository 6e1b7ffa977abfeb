package game

import "time"

// Clock provides the engine's time source so tests can substitute one.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
