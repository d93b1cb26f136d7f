package clock

import "time"

// Clock is injected where tests need to move time by hand
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
