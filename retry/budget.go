package retry

import (
	"sync"
	"time"
)

// windowBuckets is the number of one-second buckets in the sliding window
// used for rate tracking.
const windowBuckets = 60

// Budget limits the rate of retries relative to initial calls, preventing
// retry storms from amplifying load on an already struggling service.
//
// Initial calls are always admitted. A retry is refused when the initial
// call rate exceeds Rate (so the budget only engages under real traffic)
// and the ratio of retries to initial calls exceeds Ratio.
//
//	budget := &retry.Budget{
//	    Rate:  10.0, // engage above 10 initial calls/sec
//	    Ratio: 0.1,  // allow retries up to 10% of call volume
//	}
//
// A Budget is safe for concurrent use and is usually shared by all retry
// runners of one client.
type Budget struct {
	// Rate is the initial call rate (calls/sec) below which retries are
	// always admitted.
	Rate float64
	// Ratio is the maximum admitted ratio of retries to initial calls.
	Ratio float64

	mu      sync.Mutex
	initial *rateWindow
	retried *rateWindow
}

// sendOK records the call and reports whether it may proceed. A nil budget
// admits everything.
func (b *Budget) sendOK(isRetry bool) bool {
	if b == nil {
		return true
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initial == nil {
		b.initial = newRateWindow()
		b.retried = newRateWindow()
	}

	now := time.Now()

	if !isRetry {
		b.initial.add(now, 1)

		return true
	}

	initialRate := b.initial.rate(now)
	retriedRate := b.retried.rate(now)

	if initialRate > b.Rate && retriedRate/initialRate > b.Ratio {
		return false
	}

	b.retried.add(now, 1)

	return true
}

// rateWindow counts events over a sliding window of one-second buckets
// arranged as a ring. Buckets that have aged out of the window are zeroed
// lazily as time advances.
type rateWindow struct {
	counts  []int
	lastSec int64
}

func newRateWindow() *rateWindow {
	return &rateWindow{counts: make([]int, windowBuckets)}
}

// advance zeroes the buckets between the last observed second and now.
func (w *rateWindow) advance(now time.Time) {
	sec := now.Unix()

	if w.lastSec == 0 {
		w.lastSec = sec

		return
	}

	steps := sec - w.lastSec
	if steps <= 0 {
		return
	}

	if steps > int64(len(w.counts)) {
		steps = int64(len(w.counts))
	}

	cursor := w.lastSec
	for i := int64(0); i < steps; i++ {
		cursor++
		w.counts[cursor%int64(len(w.counts))] = 0
	}

	w.lastSec = sec
}

func (w *rateWindow) add(now time.Time, n int) {
	w.advance(now)
	w.counts[now.Unix()%int64(len(w.counts))] += n
}

// rate returns the average events per second over the window.
func (w *rateWindow) rate(now time.Time) float64 {
	w.advance(now)

	var total int
	for _, c := range w.counts {
		total += c
	}

	return float64(total) / float64(len(w.counts))
}
