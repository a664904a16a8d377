package retry

import (
	"math"
	"time"
)

// Backoff computes the delay inserted before a retry attempt.
type Backoff interface {
	// Delay returns the duration to wait before the given attempt.
	// Attempt 0 is the initial call and gets no delay; attempt n (n >= 1)
	// is the n-th retry.
	Delay(attempt uint) time.Duration
}

// ExpBackoff implements exponential backoff. The delay before retry n is
// Factor * 2^(n-1) seconds, clamped to Max. The initial attempt gets no
// delay.
//
// With Factor 1.0 and Max 10s the delays are: 1s, 2s, 4s, 8s, 10s, 10s, ...
type ExpBackoff struct {
	// Factor is the base delay in seconds for the first retry.
	Factor float64
	// Max caps the delay regardless of attempt count.
	Max time.Duration
}

// Delay computes min(Factor * 2^(attempt-1), Max) for attempt >= 1, and
// zero for attempt 0.
func (b ExpBackoff) Delay(attempt uint) time.Duration {
	if attempt == 0 {
		return 0
	}

	secs := b.Factor * math.Pow(2, float64(attempt-1))

	d := time.Duration(secs * float64(time.Second))
	if d < 0 {
		return 0
	}

	if d > b.Max {
		return b.Max
	}

	return d
}

// NoBackoff retries immediately. Useful in tests.
type NoBackoff struct{}

// Delay always returns zero.
func (NoBackoff) Delay(uint) time.Duration { return 0 }
