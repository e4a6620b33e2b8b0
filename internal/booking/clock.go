package booking

import "time"

// Clock abstracts "now" so slot generation and default booking dates are
// testable with a fixed time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }
