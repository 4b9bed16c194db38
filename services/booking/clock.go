package booking

import "time"

// Clock abstracts "now" so slot cutoff behavior is deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock implementation.
func SystemClock() Clock { return systemClock{} }
