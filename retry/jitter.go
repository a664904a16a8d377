package retry

import (
	"math/rand"
	"time"
)

// Jitter randomizes backoff delays to spread out retries from many clients.
// The value is the random fraction of the delay:
//   - negative: no jitter, use the exact delay
//   - 0.5: half deterministic, half random
//   - 1.0: fully random between 0 and the delay
type Jitter float64

// EqualJitter keeps half the delay and randomizes the other half:
// delay/2 + random(0, delay/2).
const EqualJitter Jitter = 0.5

// FullJitter randomizes the whole delay: random(0, delay).
const FullJitter Jitter = 1.0

// WithoutJitter uses the exact computed delay. This is the default for
// this module so that retry timing stays deterministic.
const WithoutJitter Jitter = -1.0

// apply returns the jittered delay.
func (j Jitter) apply(d time.Duration) time.Duration {
	if j <= 0.0 || d <= 0 {
		return d
	}

	//nolint:gosec // math/rand is sufficient for jitter
	r := rand.Float64() * float64(d)

	if j < 1.0 {
		r = float64(j)*r + float64(1.0-j)*float64(d)
	}

	return time.Duration(r)
}
