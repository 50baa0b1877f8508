package domain

import "time"

// Clock abstracts wall time so expiry and Dutch pricing are testable without
// real waits.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
